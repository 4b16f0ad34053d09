package archive

import (
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/platform"
	"github.com/makedist/makedist/pkg/validate"
)

// CheckPipe validates archive configuration. The disk-image settings are
// only required when a disk-image target is selected.
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating archive configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Archive

	for _, target := range ctx.Targets {
		if target.Kind != platform.KindDiskImage {
			continue
		}
		if err := validate.RequiredString(cfg.DMGTool, "archive.dmg_tool"); err != nil {
			return err
		}
		if err := validate.RequiredString(cfg.DMGSpec, "archive.dmg_spec"); err != nil {
			return err
		}
		break
	}

	ctx.Logger.Debug("Archive configuration validated successfully")
	return nil
}
