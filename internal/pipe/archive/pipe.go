package archive

import (
	"fmt"
	"path/filepath"

	"github.com/makedist/makedist/pkg/archive"
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/pipe"
	"github.com/makedist/makedist/pkg/platform"
)

// Pipe packages every selected target's bundle directory into its archive
// format: a DMG disk image for the macOS target, a zip elsewhere.
type Pipe struct{}

func (Pipe) String() string { return "packaging archives" }

func (Pipe) Run(ctx *context.Context) error {
	if !ctx.Mode.Archive() {
		return pipe.Skip(fmt.Sprintf("run mode %q excludes archiving", ctx.Mode))
	}

	cfg := ctx.Config

	for _, target := range ctx.Targets {
		bundleDir := filepath.Join(cfg.Dist.Dir, ctx.Meta.Name+"-"+target.ID)

		// Fail fast on a mis-named bundle directory before any subprocess
		// runs; a wrong prefix means the artifact would carry a wrong name.
		if err := archive.CheckBundleDir(bundleDir, ctx.Meta.Name); err != nil {
			return err
		}

		name := archive.ArtifactName(ctx.Meta.Name, ctx.Meta.Version, target)

		var outputPath string
		switch target.Kind {
		case platform.KindDiskImage:
			outputPath = filepath.Join(cfg.Dist.Dir, name+".dmg")
			ctx.Logger.Infof("imaging %s to %s", bundleDir, outputPath)
			if err := archive.CreateDMG(cfg.Archive.DMGTool, cfg.Archive.DMGSpec, outputPath); err != nil {
				return err
			}
		default:
			outputPath = filepath.Join(cfg.Dist.Dir, name+".zip")
			layout := "wrapped"
			if target.Unwrapped {
				layout = "unwrapped"
			}
			ctx.Logger.Infof("zipping %s to %s (%s)", bundleDir, outputPath, layout)
			if err := archive.CreateZip(bundleDir, outputPath, target.Unwrapped); err != nil {
				return err
			}
		}

		ctx.Artifacts.Archives = append(ctx.Artifacts.Archives, outputPath)
	}

	return nil
}
