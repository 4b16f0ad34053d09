// Package stage copies the working source files into a clean staging tree
// before packaging.
package stage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Install copies every manifest entry from src into dest, overwriting
// existing files. dest must already exist as a directory; creating it is the
// caller's job. Entries naming a directory have their direct child files
// copied into a same-named subdirectory of dest — one level only.
// Install is idempotent: re-running it against an unchanged src yields a
// byte-identical tree.
func Install(src, dest string, entries []string) error {
	info, err := os.Stat(dest)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("staging root does not exist: %s", dest)
	}

	for _, dir := range preparedDirs {
		if err := os.MkdirAll(filepath.Join(dest, dir), 0755); err != nil {
			return fmt.Errorf("failed to prepare staging directory %s: %w", dir, err)
		}
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry)

		info, err := os.Stat(srcPath)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", srcPath, err)
		}

		if !info.IsDir() {
			if err := copyFile(srcPath, filepath.Join(dest, entry)); err != nil {
				return err
			}
			continue
		}

		subdir := filepath.Join(dest, entry)
		if err := os.MkdirAll(subdir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", subdir, err)
		}

		children, err := os.ReadDir(srcPath)
		if err != nil {
			return fmt.Errorf("failed to read directory %s: %w", srcPath, err)
		}
		for _, child := range children {
			if child.IsDir() {
				continue // only one level of directory expansion
			}
			if err := copyFile(filepath.Join(srcPath, child.Name()), filepath.Join(subdir, child.Name())); err != nil {
				return err
			}
		}
	}

	return nil
}

// CopyFile copies a single file byte-for-byte, overwriting dst if present.
func CopyFile(src, dst string) error {
	return copyFile(src, dst)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", dst, err)
	}
	return nil
}
