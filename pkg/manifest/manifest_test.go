package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeManifest(t, `{
  "name": "lectrote",
  "productName": "Lectrote",
  "version": "1.5.2",
  "main": "main.js"
}`)

	meta, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Lectrote", meta.Name)
	assert.Equal(t, "1.5.2", meta.Version)
}

func TestLoadMissingFields(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "no productName",
			content: `{"version": "1.0"}`,
			errMsg:  "missing productName",
		},
		{
			name:    "no version",
			content: `{"productName": "App"}`,
			errMsg:  "missing version",
		},
		{
			name:    "empty version",
			content: `{"productName": "App", "version": ""}`,
			errMsg:  "missing version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeManifest(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read manifest")
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeManifest(t, `{"productName": "App", "version": [unclosed`))
	require.Error(t, err)
}
