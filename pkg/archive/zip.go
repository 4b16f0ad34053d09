// Package archive turns bundle directories into distributable archives by
// shelling out to the zip utility or a disk-image tool.
package archive

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// CreateZip archives bundleDir into outputPath using the zip utility.
// Any pre-existing archive at outputPath is deleted first.
//
// With unwrapped=true the bundle directory's contents become the archive's
// top-level entries; otherwise the directory itself is archived as a single
// nested entry. The subprocess gets an explicit working directory instead of
// a process-wide chdir so relative paths inside the archive come out right.
func CreateZip(bundleDir, outputPath string, unwrapped bool) error {
	if _, err := exec.LookPath("zip"); err != nil {
		return fmt.Errorf("zip not found — this tool is required for archive packaging")
	}

	absOut, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid archive path %s: %w", outputPath, err)
	}
	if err := removeExisting(absOut); err != nil {
		return err
	}

	var cmd *exec.Cmd
	if unwrapped {
		entries, err := os.ReadDir(bundleDir)
		if err != nil {
			return fmt.Errorf("failed to read bundle directory %s: %w", bundleDir, err)
		}
		args := []string{"-q", "-r", absOut}
		for _, entry := range entries {
			args = append(args, entry.Name())
		}
		cmd = exec.Command("zip", args...)
		cmd.Dir = bundleDir
	} else {
		cmd = exec.Command("zip", "-q", "-r", absOut, filepath.Base(bundleDir))
		cmd.Dir = filepath.Dir(bundleDir)
	}

	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to create ZIP archive %s: %s: %w", absOut, string(out), err)
	}
	return nil
}

// removeExisting deletes a stale archive of the same name, if any.
func removeExisting(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove existing archive %s: %w", path, err)
	}
	return nil
}
