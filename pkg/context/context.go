// Package context carries the shared state threaded through all pipes.
package context

import (
	"context"

	"github.com/makedist/makedist/pkg/config"
	"github.com/makedist/makedist/pkg/manifest"
	"github.com/makedist/makedist/pkg/platform"
	"github.com/sirupsen/logrus"
)

// Artifacts accumulates what the run has produced so far. Bundles and
// Archives are appended in target order by the bundle and archive pipes.
type Artifacts struct {
	Bundles  []string // bundle directories, one per target
	Archives []string // finished archive files, one per target
}

// Context provides shared state for all pipes.
type Context struct {
	StdCtx    context.Context // Standard context for cancellation support
	Config    *config.Config
	Meta      *manifest.Metadata
	Targets   []platform.Target
	Mode      RunMode
	Publish   bool
	Artifacts Artifacts
	Logger    *logrus.Logger
}

// NewContext creates a new context with the given standard context, config,
// and logger. If stdCtx is nil, context.Background() is used.
func NewContext(stdCtx context.Context, cfg *config.Config, logger *logrus.Logger) *Context {
	if stdCtx == nil {
		stdCtx = context.Background()
	}
	return &Context{
		StdCtx:  stdCtx,
		Config:  cfg,
		Targets: platform.All,
		Mode:    BuildAndArchive,
		Logger:  logger,
	}
}

// Done returns the done channel from the standard context for cancellation support
func (c *Context) Done() <-chan struct{} {
	return c.StdCtx.Done()
}

// Err returns the error from the standard context
func (c *Context) Err() error {
	return c.StdCtx.Err()
}
