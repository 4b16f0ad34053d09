// Package platform defines the fixed set of distribution targets and the
// selection logic that narrows it from user-supplied filters.
package platform

import (
	"errors"
	"strings"
)

// ArchiveKind discriminates how a target's bundle directory is packaged.
type ArchiveKind int

const (
	// KindZip packages the bundle directory with the zip utility.
	KindZip ArchiveKind = iota
	// KindDiskImage packages the bundle directory into a DMG disk image.
	KindDiskImage
)

// Target is one OS/architecture distribution target.
type Target struct {
	// ID is the raw platform identifier used for bundler invocation and
	// bundle directory naming, e.g. "darwin-x64".
	ID string
	// Display is the identifier used in archive file names. It differs from
	// ID only for the macOS target ("darwin-x64" -> "macos-x64").
	Display string
	// Kind selects the archive tool for this target.
	Kind ArchiveKind
	// Unwrapped controls the zip layout: true archives the bundle
	// directory's contents at the top level, false archives the directory
	// itself as a single nested entry. Ignored for disk images.
	Unwrapped bool
}

func (t Target) String() string { return t.ID }

// All is the fixed, ordered list of supported targets.
var All = []Target{
	{ID: "darwin-x64", Display: "macos-x64", Kind: KindDiskImage},
	{ID: "linux-ia32", Display: "linux-ia32", Kind: KindZip},
	{ID: "linux-x64", Display: "linux-x64", Kind: KindZip},
	{ID: "win32-ia32", Display: "win32-ia32", Kind: KindZip, Unwrapped: true},
	{ID: "win32-x64", Display: "win32-x64", Kind: KindZip, Unwrapped: true},
}

// ErrNoneSelected indicates that the given filters matched no target.
var ErrNoneSelected = errors.New("no platforms matched the given filters")

// Select returns the targets whose IDs contain at least one of the filter
// substrings, preserving the order of All and including each target at most
// once. With no filters the full list is returned. An empty result is an
// error so a typo in a filter aborts the run instead of silently doing
// nothing.
func Select(filters []string) ([]Target, error) {
	if len(filters) == 0 {
		return All, nil
	}

	var selected []Target
	for _, t := range All {
		for _, f := range filters {
			if strings.Contains(t.ID, f) {
				selected = append(selected, t)
				break
			}
		}
	}

	if len(selected) == 0 {
		return nil, ErrNoneSelected
	}
	return selected, nil
}
