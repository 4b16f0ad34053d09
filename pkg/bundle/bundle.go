// Package bundle invokes the external bundler that turns the staged file
// tree into a platform-native application directory, and applies the
// post-bundle fixups (root-file overlay, version-marker removal).
package bundle

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/makedist/makedist/pkg/stage"
)

// RunnerArgs holds what is needed to invoke the bundler for one target.
type RunnerArgs struct {
	Command      string // bundler executable, e.g. "npm"
	ScriptPrefix string // per-target script name prefix, e.g. "package-"
	PlatformID   string // raw platform identifier, e.g. "win32-x64"
}

// BuildArgs constructs the bundler argument list for one target.
func BuildArgs(args RunnerArgs) []string {
	return []string{"run", args.ScriptPrefix + args.PlatformID}
}

// Run executes the bundler for one target and returns its combined
// stdout/stderr. Callers decide whether a failure is fatal; the pipeline
// treats it as best-effort since a missing bundle fails loudly downstream.
func Run(ctx context.Context, args RunnerArgs) (string, error) {
	if _, err := exec.LookPath(args.Command); err != nil {
		return "", fmt.Errorf("%s not found — the bundler tool must be on PATH", args.Command)
	}

	cmd := exec.CommandContext(ctx, args.Command, BuildArgs(args)...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), fmt.Errorf("bundler failed for %s: %w", args.PlatformID, err)
	}
	return string(out), nil
}

// OverlayRootFiles copies each named file from src into the bundle directory,
// overwriting existing copies. The bundler does not carry license files into
// its output, so they are layered in afterwards.
func OverlayRootFiles(src, bundleDir string, files []string) error {
	for _, name := range files {
		if err := stage.CopyFile(filepath.Join(src, name), filepath.Join(bundleDir, name)); err != nil {
			return fmt.Errorf("failed to overlay %s into %s: %w", name, bundleDir, err)
		}
	}
	return nil
}

// RemoveVersionMarker deletes the transient "version" file the bundler
// leaves at the bundle root. Its absence is not an error.
func RemoveVersionMarker(bundleDir string) error {
	err := os.Remove(filepath.Join(bundleDir, "version"))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove version marker in %s: %w", bundleDir, err)
	}
	return nil
}
