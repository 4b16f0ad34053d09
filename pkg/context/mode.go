package context

// RunMode is the explicit run mode, computed once at flag-parse time rather
// than re-derived at each phase boundary. Staging happens in every mode.
type RunMode int

const (
	// BuildAndArchive runs both the bundle and archive phases. This is the
	// default when no mode flag is given.
	BuildAndArchive RunMode = iota
	// BuildOnly runs staging and bundling but skips archiving.
	BuildOnly
	// ArchiveOnly skips bundling and archives existing bundle directories.
	ArchiveOnly
	// StageOnly stages files and does nothing else. Useful for inspecting
	// argument parsing without side effects.
	StageOnly
)

func (m RunMode) String() string {
	switch m {
	case BuildOnly:
		return "build"
	case ArchiveOnly:
		return "archive"
	case StageOnly:
		return "stage"
	default:
		return "build+archive"
	}
}

// Bundle reports whether the bundle phase should run.
func (m RunMode) Bundle() bool {
	return m == BuildAndArchive || m == BuildOnly
}

// Archive reports whether the archive phase should run.
func (m RunMode) Archive() bool {
	return m == BuildAndArchive || m == ArchiveOnly
}

// ResolveMode maps the three independent CLI flags onto a RunMode.
// The stage-only flag wins over the others; setting both build and archive
// is the same as setting neither.
func ResolveMode(build, archive, none bool) RunMode {
	switch {
	case none:
		return StageOnly
	case build && !archive:
		return BuildOnly
	case archive && !build:
		return ArchiveOnly
	default:
		return BuildAndArchive
	}
}
