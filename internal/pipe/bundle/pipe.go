package bundle

import (
	"fmt"
	"path/filepath"

	"github.com/makedist/makedist/pkg/bundle"
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/pipe"
	"github.com/makedist/makedist/pkg/stage"
)

// Pipe invokes the external bundler for every selected target and applies
// the post-bundle fixups.
type Pipe struct{}

func (Pipe) String() string { return "bundling platforms" }

func (Pipe) Run(ctx *context.Context) error {
	if !ctx.Mode.Bundle() {
		return pipe.Skip(fmt.Sprintf("run mode %q excludes bundling", ctx.Mode))
	}

	cfg := ctx.Config

	for _, target := range ctx.Targets {
		bundleDir := filepath.Join(cfg.Dist.Dir, ctx.Meta.Name+"-"+target.ID)
		ctx.Logger.Infof("bundling %s", target.ID)

		args := bundle.RunnerArgs{
			Command:      cfg.Bundle.Command,
			ScriptPrefix: cfg.Bundle.ScriptPrefix,
			PlatformID:   target.ID,
		}

		// A failed bundler run is logged and the run continues: the later
		// phases fail visibly if the bundle directory is missing.
		out, err := bundle.Run(ctx.StdCtx, args)
		ctx.Logger.Debug(out)
		if err != nil {
			ctx.Logger.Warnf("bundler failed for %s: %v", target.ID, err)
		}

		if err := bundle.OverlayRootFiles(cfg.Stage.Source, bundleDir, stage.RootFiles); err != nil {
			return err
		}
		if err := bundle.RemoveVersionMarker(bundleDir); err != nil {
			return err
		}

		ctx.Artifacts.Bundles = append(ctx.Artifacts.Bundles, bundleDir)
		ctx.Logger.Infof("bundled %s", bundleDir)
	}

	return nil
}
