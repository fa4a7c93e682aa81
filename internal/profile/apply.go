package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/fsloadgo/internal/ctxlog"
	"github.com/vk/fsloadgo/internal/randdist"
	"github.com/vk/fsloadgo/internal/vars"
)

// applyRandom defines a random variable and configures its generator from
// the block's attributes. Numeric parameters bind as attribute
// descriptors, so `mean = "$iosize"` keeps tracking later `set` commands
// and `seed` can even be another distribution.
func (l *Loader) applyRandom(ctx context.Context, block *randomBlock) error {
	logger := ctxlog.FromContext(ctx)

	v := l.reg.DefineRandVar(block.Name)
	if v == nil {
		return fmt.Errorf("random %q: definition rejected", block.Name)
	}

	gen, ok := v.Gen().(*randdist.Generator)
	if !ok {
		return fmt.Errorf("random %q: unexpected generator implementation", block.Name)
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return fmt.Errorf("random %q: %w", block.Name, diags)
	}

	for _, name := range sortedNames(attrs) {
		expr := attrs[name].Expr

		switch name {
		case "type":
			label, err := stringValue(expr)
			if err != nil {
				return fmt.Errorf("random %q: type: %w", block.Name, err)
			}
			dist, err := parseDist(label)
			if err != nil {
				return fmt.Errorf("random %q: %w", block.Name, err)
			}
			gen.SetDist(dist)

		case "source":
			label, err := stringValue(expr)
			if err != nil {
				return fmt.Errorf("random %q: source: %w", block.Name, err)
			}
			src, err := parseSource(label)
			if err != nil {
				return fmt.Errorf("random %q: %w", block.Name, err)
			}
			gen.SetSource(src)

		case "table":
			rows, err := tableValue(expr)
			if err != nil {
				return fmt.Errorf("random %q: table: %w", block.Name, err)
			}
			gen.SetTable(rows)

		case "seed", "min", "mean", "gamma", "round":
			avd, err := l.bindAttr(expr)
			if err != nil {
				return fmt.Errorf("random %q: %s: %w", block.Name, name, err)
			}
			switch name {
			case "seed":
				gen.SetSeed(avd)
			case "min":
				gen.SetMin(avd)
			case "mean":
				gen.SetMean(avd)
			case "gamma":
				gen.SetGamma(avd)
			case "round":
				gen.SetRound(avd)
			}

		default:
			return fmt.Errorf("random %q: unknown parameter %q", block.Name, name)
		}
	}

	logger.Debug("Defined random variable.",
		"name", block.Name, "type", gen.DistName(), "source", gen.SourceName())
	return nil
}

// bindWorkload binds every attribute of a workload block into a
// delayed-binding descriptor.
func (l *Loader) bindWorkload(ctx context.Context, block *workloadBlock) (*Workload, error) {
	logger := ctxlog.FromContext(ctx)

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("workload %q: %w", block.Name, diags)
	}

	wl := &Workload{
		Name:  block.Name,
		Attrs: make(map[string]*vars.AttrValue, len(attrs)),
	}
	for _, name := range sortedNames(attrs) {
		avd, err := l.bindAttr(attrs[name].Expr)
		if err != nil {
			return nil, fmt.Errorf("workload %q: %s: %w", block.Name, name, err)
		}
		wl.Attrs[name] = avd
	}

	logger.Debug("Bound workload attributes.",
		"workload", block.Name, "attributes", len(wl.Attrs))
	return wl, nil
}

// bindAttr compiles one attribute expression into an AttrValue. Variable
// references - a bare traversal like `nfiles` or a `"$nfiles"` string -
// bind through RefAttr for late resolution; constants bind as literals.
func (l *Loader) bindAttr(expr hcl.Expression) (*vars.AttrValue, error) {
	if traversals := expr.Variables(); len(traversals) > 0 {
		name := traversals[0].RootName()
		avd := l.reg.RefAttr("$" + name)
		if avd == nil {
			return nil, fmt.Errorf("cannot bind reference to $%s", name)
		}
		return avd, nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid expression: %w", diags)
	}

	switch {
	case val.Type() == cty.Bool:
		return l.literal(vars.NewBool(l.reg.Arena(), val.True()))

	case val.Type() == cty.Number:
		if u, ok := wholeNumber(val); ok {
			return l.literal(vars.NewInt(l.reg.Arena(), u))
		}
		f, _ := val.AsBigFloat().Float64()
		return l.literal(vars.NewDouble(l.reg.Arena(), f))

	case val.Type() == cty.String:
		s := val.AsString()
		if strings.HasPrefix(s, "$") {
			avd := l.reg.RefAttr(s)
			if avd == nil {
				return nil, fmt.Errorf("cannot bind reference to %s", s)
			}
			return avd, nil
		}
		return l.literal(vars.NewString(l.reg.Arena(), s))

	default:
		return nil, fmt.Errorf("unsupported value type %s", val.Type().FriendlyName())
	}
}

// literal normalizes a possibly-failed literal construction into an error.
func (l *Loader) literal(avd *vars.AttrValue) (*vars.AttrValue, error) {
	if avd == nil {
		return nil, fmt.Errorf("literal allocation failed")
	}
	return avd, nil
}

func stringValue(expr hcl.Expression) (string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid expression: %w", diags)
	}
	if val.Type() != cty.String {
		return "", fmt.Errorf("expected string, got %s", val.Type().FriendlyName())
	}
	return val.AsString(), nil
}

// tableValue decodes a probability table expression. HCL evaluates the
// `[ { min = ..., max = ..., weight = ... }, ... ]` literal as a tuple of
// objects, so the rows are decoded one element at a time rather than as a
// single list value.
func tableValue(expr hcl.Expression) ([]randdist.TableEntry, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("invalid expression: %w", diags)
	}
	if !val.CanIterateElements() {
		return nil, fmt.Errorf("invalid probability table: expected a list of rows, got %s",
			val.Type().FriendlyName())
	}

	var entries []randdist.TableEntry
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()

		var row tableRow
		if err := gocty.FromCtyValue(elem, &row); err != nil {
			return nil, fmt.Errorf("invalid probability table row %d: %w",
				len(entries)+1, err)
		}
		entries = append(entries, randdist.TableEntry{
			Min:    row.Min,
			Max:    row.Max,
			Weight: row.Weight,
		})
	}
	return entries, nil
}

func parseDist(label string) (randdist.Dist, error) {
	switch label {
	case "uniform":
		return randdist.DistUniform, nil
	case "gamma":
		return randdist.DistGamma, nil
	case "tabular":
		return randdist.DistTabular, nil
	default:
		return randdist.DistUninitialized, fmt.Errorf("unknown distribution type %q", label)
	}
}

func parseSource(label string) (randdist.Source, error) {
	switch label {
	case "rand48":
		return randdist.SourcePseudo, nil
	case "urandom":
		return randdist.SourceEntropy, nil
	default:
		return randdist.SourceEntropy, fmt.Errorf("unknown randomness source %q", label)
	}
}
