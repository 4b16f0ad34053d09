package archive

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/makedist/makedist/pkg/platform"
)

// PrefixError reports a bundle directory whose name does not carry the
// expected product prefix. Archiving a mis-named directory would produce an
// artifact under the wrong name, so this aborts before any subprocess runs.
type PrefixError struct {
	Dir    string
	Prefix string
}

func (e *PrefixError) Error() string {
	return fmt.Sprintf("bundle directory %s does not have the prefix %q", e.Dir, e.Prefix)
}

// ArtifactName computes the archive base name (no extension) for a target:
// <product>-<version>-<display-platform>.
func ArtifactName(product, version string, t platform.Target) string {
	return fmt.Sprintf("%s-%s-%s", product, version, t.Display)
}

// CheckBundleDir validates that the bundle directory's base name starts
// with "<product>-". Returns a *PrefixError on violation.
func CheckBundleDir(dir, product string) error {
	prefix := product + "-"
	if !strings.HasPrefix(filepath.Base(dir), prefix) {
		return &PrefixError{Dir: dir, Prefix: prefix}
	}
	return nil
}
