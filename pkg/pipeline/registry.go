package pipeline

import (
	"github.com/makedist/makedist/internal/pipe/archive"
	"github.com/makedist/makedist/internal/pipe/bundle"
	"github.com/makedist/makedist/internal/pipe/publish"
	"github.com/makedist/makedist/internal/pipe/stage"
)

// ValidationPipes contains all validation pipes, run by check and as the
// first stage of every packaging run.
var ValidationPipes = []Piper{
	stage.CheckPipe{},   // Validate staging config
	bundle.CheckPipe{},  // Validate bundler config
	archive.CheckPipe{}, // Validate archive config
	publish.CheckPipe{}, // Validate release config when publishing
}

// ExecutionPipes contains all execution pipes, run after validation
// succeeds. Order matters: every later pipe consumes what the earlier ones
// produced.
var ExecutionPipes = []Piper{
	stage.Pipe{},   // Copy working files into the staging tree
	bundle.Pipe{},  // Invoke the bundler per target, overlay root files
	archive.Pipe{}, // Package bundle directories into zip/dmg
	publish.Pipe{}, // Upload archives to a GitHub release
}
