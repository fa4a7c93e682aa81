package app

import (
	"context"
	"fmt"

	"github.com/vk/fsloadgo/internal/ctxlog"
	"github.com/vk/fsloadgo/internal/profile"
	"github.com/vk/fsloadgo/internal/vars"
)

// Run executes the configuration phase: load every profile under the
// configured path, apply its statements against the registry, and write
// the resolved variable table to the output. The execution engine would
// take over from here; for the CLI the report is the product.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model, err := a.loader.Load(ctx, a.config.ProfilePath)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	a.report(model)
	a.logger.Debug("App.Run method finished.")
	return nil
}

// report renders the variable table and workload bindings to the output
// writer.
func (a *App) report(model *profile.Model) {
	fmt.Fprintln(a.outW, "Variables:")
	for _, v := range a.registry.Globals() {
		name := "$" + v.Name()
		if v.Kind() == vars.KindRandom {
			fmt.Fprintf(a.outW, "  %s = %s (type=%s, src=%s, mean=%s, round=%s)\n",
				name,
				a.registry.VarToString(name),
				a.registry.RandVarToString(name, vars.ParamType),
				a.registry.RandVarToString(name, vars.ParamSrc),
				a.registry.RandVarToString(name, vars.ParamMean),
				a.registry.RandVarToString(name, vars.ParamRound))
			continue
		}
		fmt.Fprintf(a.outW, "  %s = %s\n", name, a.registry.VarToString(name))
	}

	for _, wl := range model.Workloads {
		fmt.Fprintf(a.outW, "Workload %q: %d bound attributes\n",
			wl.Name, len(wl.Attrs))
	}
}
