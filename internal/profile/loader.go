package profile

import (
	"context"
	"fmt"
	"math/big"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/fsloadgo/internal/ctxlog"
	"github.com/vk/fsloadgo/internal/fsutil"
	"github.com/vk/fsloadgo/internal/vars"
)

// Workload is the loaded form of a `workload` block: every attribute bound
// to a delayed-binding descriptor. The execution engine resolves the
// descriptors at run time through the vars accessors.
type Workload struct {
	Name  string
	Attrs map[string]*vars.AttrValue
}

// Model is the aggregate of all loaded profile files.
type Model struct {
	Workloads []*Workload
}

// Loader parses profile files and applies them against a Registry.
type Loader struct {
	reg *vars.Registry
}

// NewLoader returns a Loader bound to the given registry.
func NewLoader(reg *vars.Registry) *Loader {
	return &Loader{reg: reg}
}

// Load discovers every .hcl profile under path (a file or directory),
// parses them, and applies their statements in file order: sets first,
// then random definitions, then workload bindings. This matches the
// configuration-phase ordering contract - all structural mutation happens
// here, before any worker reads.
func (l *Loader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile from path", "path", path)

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find profile files in %s: %w", path, err)
	}
	if len(files) == 0 {
		logger.Warn("No .hcl profile files found in path", "path", path)
		return &Model{}, nil
	}

	model := &Model{}
	parser := hclparse.NewParser()
	for _, file := range files {
		if err := l.loadFile(ctx, parser, file, model); err != nil {
			return nil, err
		}
	}

	logger.Info("Profile loaded.",
		"files", len(files), "workloads", len(model.Workloads))
	return model, nil
}

func (l *Loader) loadFile(ctx context.Context, parser *hclparse.Parser, path string, model *Model) error {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse profile %s: %w", path, diags)
	}

	var parsed fileSchema
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode profile %s: %w", path, diags)
	}

	for _, set := range parsed.Sets {
		if err := l.applySet(ctx, set); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, rnd := range parsed.Randoms {
		if err := l.applyRandom(ctx, rnd); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	for _, wl := range parsed.Workloads {
		loaded, err := l.bindWorkload(ctx, wl)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		model.Workloads = append(model.Workloads, loaded)
	}

	return nil
}

// applySet evaluates each attribute of a `set` block and dispatches to the
// matching assignment operation. Attributes apply in name order so a
// profile behaves the same on every load.
func (l *Loader) applySet(ctx context.Context, block *setBlock) error {
	logger := ctxlog.FromContext(ctx)

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("invalid set block: %w", diags)
	}

	for _, name := range sortedNames(attrs) {
		val, diags := attrs[name].Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("set %s: %w", name, diags)
		}

		switch {
		case val.Type() == cty.Bool:
			_ = l.reg.AssignBool(name, val.True())

		case val.Type() == cty.Number:
			if u, ok := wholeNumber(val); ok {
				_ = l.reg.AssignInt(name, u)
			} else {
				f, _ := val.AsBigFloat().Float64()
				_ = l.reg.AssignDouble(name, f)
			}

		case val.Type() == cty.String:
			_ = l.reg.AssignString(name, val.AsString())

		default:
			return fmt.Errorf("set %s: unsupported value type %s",
				name, val.Type().FriendlyName())
		}
		logger.Debug("Applied set statement.", "name", name)
	}

	return nil
}

// sortedNames returns the attribute names of a body in lexical order.
func sortedNames(attrs hcl.Attributes) []string {
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// wholeNumber extracts a cty number as uint64 when it is a non-negative
// integer.
func wholeNumber(val cty.Value) (uint64, bool) {
	bf := val.AsBigFloat()
	if !bf.IsInt() || bf.Sign() < 0 {
		return 0, false
	}
	u, acc := bf.Uint64()
	if acc != big.Exact {
		return 0, false
	}
	return u, true
}
