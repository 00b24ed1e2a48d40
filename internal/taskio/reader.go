package taskio

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/packerr"
)

const maxLineSize = 1 << 20

var (
	headerPattern = regexp.MustCompile(`^\s*(\d+|\d*\.\d+)\s*:\s*(.*?)\s*$`)
	thingPattern  = regexp.MustCompile(`^\((\d+),(\d+|\d*\.\d+),€(\d+|\d*\.\d+)\)$`)
)

// Reader reads tasks line by line. Blank lines are skipped.
type Reader struct {
	scanner *bufio.Scanner
	line    int

	peeked  bool
	hasNext bool
	next    string
	err     error
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{scanner: scanner}
}

// HasNext reports whether another task line remains.
func (r *Reader) HasNext() bool {
	r.peek()
	return r.hasNext
}

// Next parses the next task. It returns io.EOF once every task has been read.
func (r *Reader) Next() (model.Task, error) {
	r.peek()
	if !r.hasNext {
		if r.err != nil {
			return model.Task{}, packerr.System(r.err)
		}
		return model.Task{}, io.EOF
	}
	r.peeked = false
	return parseLine(r.next, r.line)
}

// ReadAll reads every remaining task.
func (r *Reader) ReadAll() ([]model.Task, error) {
	var tasks []model.Task
	for {
		task, err := r.Next()
		if err == io.EOF {
			return tasks, nil
		}
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
}

func (r *Reader) peek() {
	if r.peeked {
		return
	}
	r.peeked = true
	for r.scanner.Scan() {
		r.line++
		text := r.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		r.next = text
		r.hasNext = true
		return
	}
	r.err = r.scanner.Err()
	r.hasNext = false
}

func parseLine(text string, line int) (model.Task, error) {
	m := headerPattern.FindStringSubmatch(text)
	if m == nil {
		return model.Task{}, packerr.IncorrectInputf("check the input format: line %d: expected \"<max weight> : <things>\"", line)
	}
	maxWeight, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return model.Task{}, packerr.IncorrectInputf("check the input format: line %d: bad max weight %q", line, m[1])
	}

	fields := strings.Fields(m[2])
	if len(fields) == 0 {
		return model.Task{}, packerr.IncorrectInputf("check the input format: line %d: no things to pack", line)
	}

	things := make([]model.Thing, 0, len(fields))
	for _, f := range fields {
		thing, ok := parseThing(f)
		if !ok {
			return model.Task{}, packerr.IncorrectInputf("check the input format: line %d: malformed thing %q", line, f)
		}
		things = append(things, thing)
	}
	return model.Task{MaxWeight: maxWeight, Things: things}, nil
}

func parseThing(s string) (model.Thing, bool) {
	m := thingPattern.FindStringSubmatch(s)
	if m == nil {
		return model.Thing{}, false
	}
	index, err := strconv.Atoi(m[1])
	if err != nil {
		return model.Thing{}, false
	}
	weight, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return model.Thing{}, false
	}
	cost, err := strconv.ParseFloat(m[3], 64)
	if err != nil {
		return model.Thing{}, false
	}
	return model.Thing{Index: index, Weight: weight, Cost: cost}, true
}
