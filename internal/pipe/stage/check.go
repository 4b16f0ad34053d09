package stage

import (
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/validate"
)

// CheckPipe validates staging configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating staging configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config

	if err := validate.RequiredString(cfg.Project.Manifest, "project.manifest"); err != nil {
		return err
	}
	if err := validate.RequiredString(cfg.Stage.Source, "stage.source"); err != nil {
		return err
	}
	if err := validate.RequiredString(cfg.Stage.Dir, "stage.dir"); err != nil {
		return err
	}
	if err := validate.RequiredString(cfg.Dist.Dir, "dist.dir"); err != nil {
		return err
	}

	ctx.Logger.Debug("Staging configuration validated successfully")
	return nil
}
