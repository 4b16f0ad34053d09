package bundle

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArgs(t *testing.T) {
	args := BuildArgs(RunnerArgs{
		Command:      "npm",
		ScriptPrefix: "package-",
		PlatformID:   "win32-x64",
	})
	assert.Equal(t, []string{"run", "package-win32-x64"}, args)
}

func TestOverlayRootFiles(t *testing.T) {
	src := t.TempDir()
	bundleDir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(src, "LICENSE"), []byte("MIT\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "NOTICES.txt"), []byte("notices\n"), 0644))
	// A stale copy in the bundle must be overwritten.
	require.NoError(t, os.WriteFile(filepath.Join(bundleDir, "LICENSE"), []byte("old"), 0644))

	require.NoError(t, OverlayRootFiles(src, bundleDir, []string{"LICENSE", "NOTICES.txt"}))

	got, err := os.ReadFile(filepath.Join(bundleDir, "LICENSE"))
	require.NoError(t, err)
	assert.Equal(t, "MIT\n", string(got))

	got, err = os.ReadFile(filepath.Join(bundleDir, "NOTICES.txt"))
	require.NoError(t, err)
	assert.Equal(t, "notices\n", string(got))
}

func TestOverlayRootFilesMissingSource(t *testing.T) {
	err := OverlayRootFiles(t.TempDir(), t.TempDir(), []string{"LICENSE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to overlay LICENSE")
}

func TestRemoveVersionMarker(t *testing.T) {
	bundleDir := t.TempDir()
	marker := filepath.Join(bundleDir, "version")
	require.NoError(t, os.WriteFile(marker, []byte("1.8.2\n"), 0644))

	require.NoError(t, RemoveVersionMarker(bundleDir))
	_, err := os.Stat(marker)
	assert.True(t, os.IsNotExist(err))

	// Absent marker is fine.
	require.NoError(t, RemoveVersionMarker(bundleDir))
}
