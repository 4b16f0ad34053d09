package publish

import (
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/env"
	"github.com/makedist/makedist/pkg/pipe"
	"github.com/makedist/makedist/pkg/validate"
)

// CheckPipe validates release configuration. It only applies when
// publishing was requested.
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating release configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	if !ctx.Publish {
		return pipe.Skip("publishing not requested")
	}

	cfg := ctx.Config.Release.GitHub

	if err := validate.RequiredString(cfg.Owner, "release.github.owner"); err != nil {
		return err
	}
	if err := validate.RequiredString(cfg.Repo, "release.github.repo"); err != nil {
		return err
	}
	if err := env.CheckResolved(cfg.Owner, "release.github.owner"); err != nil {
		return err
	}
	if err := env.CheckResolved(cfg.Repo, "release.github.repo"); err != nil {
		return err
	}

	ctx.Logger.Debug("Release configuration validated successfully")
	return nil
}
