package archive

import (
	"fmt"
	"os/exec"
)

// CreateDMG builds a DMG disk image at outputPath from a packaging
// specification file, using the configured disk-image tool (appdmg). The
// spec file names the source bundle and the image layout. Any pre-existing
// image of the same name is deleted first.
func CreateDMG(tool, specPath, outputPath string) error {
	if _, err := exec.LookPath(tool); err != nil {
		return fmt.Errorf("%s not found — this tool is required for DMG packaging", tool)
	}

	if err := removeExisting(outputPath); err != nil {
		return err
	}

	cmd := exec.Command(tool, specPath, outputPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to create DMG image %s: %s: %w", outputPath, string(out), err)
	}
	return nil
}
