package packer

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/packer/internal/config"
	"github.com/vk/packer/internal/model"
	"github.com/vk/packer/internal/packerr"
	"github.com/vk/packer/internal/solver"
)

func TestPackFile_Success(t *testing.T) {
	t.Parallel()

	out, err := PackFile(context.Background(), filepath.Join("testdata", "success_test_case.txt"))

	require.NoError(t, err)
	assert.Equal(t, "4\n-\n2,7\n8,9\n", out)
}

func TestPackFile_BranchAndBound(t *testing.T) {
	t.Parallel()

	p := New(WithSolver(solver.BranchAndBound{}), WithWorkers(1))
	out, err := p.PackFile(context.Background(), filepath.Join("testdata", "success_test_case.txt"))

	require.NoError(t, err)
	assert.Equal(t, "4\n-\n2,7\n8,9\n", out)
}

func TestPackFile_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := PackFile(context.Background(), "broken_path")

	require.Error(t, err)
	assert.ErrorIs(t, err, packerr.ErrFileNotFound)
}

func TestPackReader_ValidationErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name: "too many things",
			input: "81 : (1,53.38,€45) (2,88.62,€98) (3,88.62,€98) (4,53.38,€45) (5,88.62,€98) " +
				"(6,88.62,€98) (7,53.38,€45) (8,88.62,€98) (9,88.62,€98) (10,53.38,€45) (11,88.62,€98) " +
				"(12,88.62,€98) (13,53.38,€45) (14,88.62,€98) (15,88.62,€98) (16,88.62,€98)",
			errMsg: "task 1: task might have up to 15 things to pack from, given: 16",
		},
		{
			name:   "big package weight",
			input:  "200 : (1,53.38,€45)",
			errMsg: "task 1: max weight that a package can take is ≤ 100, given: 200",
		},
		{
			name:   "big thing weight",
			input:  "20 : (1,153.38,€45)",
			errMsg: "task 1: max weight that a thing can have is ≤ 100, given: 153.38",
		},
		{
			name:   "big thing cost",
			input:  "20 : (1,53.38,€145)",
			errMsg: "task 1: max cost that a thing can have is ≤ 100, given: 145",
		},
		{
			name:   "second task is invalid",
			input:  "20 : (1,5,€5)\n20 : (1,53.38,€145)",
			errMsg: "task 2: max cost that a thing can have is ≤ 100, given: 145",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := New().PackReader(context.Background(), strings.NewReader(tc.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, packerr.ErrValidation)
			assert.EqualError(t, err, tc.errMsg)
		})
	}
}

func TestPackReader_IncorrectInput(t *testing.T) {
	t.Parallel()

	_, err := New().PackReader(context.Background(), strings.NewReader("81 ; (1,53.38,€45)"))

	require.Error(t, err)
	assert.ErrorIs(t, err, packerr.ErrIncorrectInput)
}

func TestPack_CustomLimits(t *testing.T) {
	t.Parallel()

	limits := config.Limits{MaxPackageWeight: 1000, MaxThings: 18, MaxThingWeight: 500, MaxThingCost: 500}
	p := New(WithLimits(limits))
	task := model.Task{MaxWeight: 900}
	for i := 0; i < 18; i++ {
		task.Things = append(task.Things, model.Thing{Index: i + 1, Weight: 100, Cost: float64(i)})
	}

	pkgs, err := p.Pack(context.Background(), []model.Task{task})

	require.NoError(t, err)
	require.Len(t, pkgs, 1)
	// Eight things of weight 100 fit strictly below 900: the eight costliest.
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18}, pkgs[0].Indexes())
	assert.Equal(t, limits, p.Limits())
}

func TestPack_InvalidLimits(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name        string
		limits      config.Limits
		expectedErr string
	}{
		{
			name:        "max things above ceiling",
			limits:      config.Limits{MaxPackageWeight: 100, MaxThings: 40, MaxThingWeight: 100, MaxThingCost: 100},
			expectedErr: "max_things must be between 1 and 24, got 40",
		},
		{
			name:        "zero package weight",
			limits:      config.Limits{MaxThings: 15, MaxThingWeight: 100, MaxThingCost: 100},
			expectedErr: "invalid limits",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			task := model.Task{MaxWeight: 100}
			for i := 0; i < 33; i++ {
				task.Things = append(task.Things, model.Thing{Index: i + 1, Weight: 1, Cost: 1})
			}

			// --- Act ---
			pkgs, err := New(WithLimits(tc.limits)).Pack(context.Background(), []model.Task{task})

			// --- Assert ---
			require.ErrorIs(t, err, packerr.ErrSystem)
			assert.ErrorContains(t, err, tc.expectedErr)
			assert.Nil(t, pkgs)
		})
	}
}

func TestPack_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Pack(ctx, []model.Task{{MaxWeight: 10, Things: []model.Thing{{Index: 1, Weight: 1, Cost: 1}}}})

	require.Error(t, err)
	assert.ErrorIs(t, err, packerr.ErrSystem)
	assert.ErrorIs(t, err, context.Canceled)
}
