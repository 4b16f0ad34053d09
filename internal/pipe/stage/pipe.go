package stage

import (
	"fmt"
	"os"

	"github.com/makedist/makedist/pkg/context"
	"github.com/makedist/makedist/pkg/stage"
)

// Pipe copies the working files into the staging tree and makes sure the
// distribution root exists. It runs in every mode, including stage-only.
type Pipe struct{}

func (Pipe) String() string { return "staging working files" }

func (Pipe) Run(ctx *context.Context) error {
	cfg := ctx.Config

	if err := os.MkdirAll(cfg.Stage.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create staging root %s: %w", cfg.Stage.Dir, err)
	}
	if err := os.MkdirAll(cfg.Dist.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create distribution root %s: %w", cfg.Dist.Dir, err)
	}

	ctx.Logger.Infof("installing to: %s", cfg.Stage.Dir)
	if err := stage.Install(cfg.Stage.Source, cfg.Stage.Dir, stage.Files); err != nil {
		return err
	}

	return nil
}
