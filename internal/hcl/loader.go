package hcl

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/packer/internal/config"
	"github.com/vk/packer/internal/ctxlog"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

var _ config.Loader = (*Loader)(nil)

// fileRoot is a struct used to decode the top level of a configuration file.
// There is no remain field, so unknown blocks and attributes are rejected.
type fileRoot struct {
	Limits *limitsBlock `hcl:"limits,block"`
	Solver string       `hcl:"solver,optional"`
}

// limitsBlock keeps the raw body so each attribute can be converted through
// cty individually and unset ones keep their defaults.
type limitsBlock struct {
	Body hcl.Body `hcl:",remain"`
}

// Load reads and parses the HCL file at path.
func (l *Loader) Load(ctx context.Context, path string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path", path)

	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return l.Parse(ctx, src, path)
}

// Parse decodes HCL source. filename is only used in diagnostics.
func (l *Loader) Parse(ctx context.Context, src []byte, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}

	var root fileRoot
	if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	model := config.NewModel()
	model.Solver = root.Solver

	if root.Limits != nil {
		if err := l.decodeLimits(ctx, root.Limits.Body, &model.Limits); err != nil {
			return nil, fmt.Errorf("failed to decode limits in %s: %w", filename, err)
		}
	}

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", filename, err)
	}

	logger.Debug("HCL loading complete.",
		"max_package_weight", model.Limits.MaxPackageWeight,
		"max_things", model.Limits.MaxThings,
		"max_thing_weight", model.Limits.MaxThingWeight,
		"max_thing_cost", model.Limits.MaxThingCost,
		"solver", model.Solver,
	)
	return model, nil
}

// decodeLimits evaluates every attribute of the limits block into its
// matching field.
func (l *Loader) decodeLimits(ctx context.Context, body hcl.Body, limits *config.Limits) error {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return diags
	}

	targets := map[string]any{
		"max_package_weight": &limits.MaxPackageWeight,
		"max_things":         &limits.MaxThings,
		"max_thing_weight":   &limits.MaxThingWeight,
		"max_thing_cost":     &limits.MaxThingCost,
	}

	// Sorted so the first reported error is stable.
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		attr := attrs[name]
		target, ok := targets[name]
		if !ok {
			return fmt.Errorf("%s: unsupported attribute %q", attr.Range, name)
		}
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		if err := decode(ctx, val, target); err != nil {
			return fmt.Errorf("%s: attribute %q: %w", attr.Range, name, err)
		}
	}
	return nil
}
