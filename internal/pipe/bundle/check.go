package bundle

import (
	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/validate"
)

// CheckPipe validates bundler configuration
type CheckPipe struct{}

func (CheckPipe) String() string { return "validating bundler configuration" }

func (CheckPipe) Run(ctx *context.Context) error {
	cfg := ctx.Config.Bundle

	if err := validate.RequiredString(cfg.Command, "bundle.command"); err != nil {
		return err
	}
	if err := validate.RequiredString(cfg.ScriptPrefix, "bundle.script_prefix"); err != nil {
		return err
	}

	ctx.Logger.Debug("Bundler configuration validated successfully")
	return nil
}
