package appdir_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbckr/cnam/internal/appdir"
)

func TestConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dir, err := appdir.ConfigDir()
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(dir), "expected absolute path, got %q", dir)
	assert.Equal(t, appdir.Name, filepath.Base(dir))
}

func TestEnsureFile_CreatesFileAndDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subdir", "config.yaml")

	require.NoError(t, appdir.EnsureFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnsureFile_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\n"), 0o600))

	require.NoError(t, appdir.EnsureFile(path))
	require.NoError(t, appdir.EnsureFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "format: json\n", string(data))
}

func TestEnsureFile_RestrictsExistingPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("auth_token: secret\n"), 0o600))
	require.NoError(t, os.Chmod(path, 0o644))

	require.NoError(t, appdir.EnsureFile(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
