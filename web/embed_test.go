package web

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssets_Embedded(t *testing.T) {
	assets, err := Assets("")
	require.NoError(t, err)

	for _, name := range []string{"login.html", "dashboard.html", "js/auth.js", "js/dashboard.js", "css/style.css"} {
		_, err := fs.Stat(assets, name)
		assert.NoError(t, err, name)
	}
}

func TestAssets_Directory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "login.html"), []byte("custom"), 0o600))

	assets, err := Assets(dir)
	require.NoError(t, err)

	data, err := fs.ReadFile(assets, "login.html")
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))
}

func TestAssets_InvalidDirectory(t *testing.T) {
	_, err := Assets(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = Assets(file)
	assert.Error(t, err)
}
