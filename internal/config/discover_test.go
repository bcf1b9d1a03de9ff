package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverConfig_WalkUp(t *testing.T) {
	// Create a temp directory structure:
	// root/
	//   .nora/
	//     config.yaml
	//   subdir/
	//     deepdir/

	root := t.TempDir()
	noraDir := filepath.Join(root, ConfigDirName)
	require.NoError(t, os.Mkdir(noraDir, 0755))

	configPath := filepath.Join(noraDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("# test"), 0644))

	deepdir := filepath.Join(root, "subdir", "deepdir")
	require.NoError(t, os.MkdirAll(deepdir, 0755))

	// Change to deep directory
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldWd)

	require.NoError(t, os.Chdir(deepdir))

	// Should find config in parent
	discovered := DiscoverConfig()

	// On macOS, /var is a symlink to /private/var, so resolve symlinks for comparison
	expectedPath, _ := filepath.EvalSymlinks(configPath)
	discoveredPath, _ := filepath.EvalSymlinks(discovered)
	assert.Equal(t, expectedPath, discoveredPath)
}

func TestDiscoverConfig_InCurrentDir(t *testing.T) {
	root := t.TempDir()
	noraDir := filepath.Join(root, ConfigDirName)
	require.NoError(t, os.Mkdir(noraDir, 0755))

	configPath := filepath.Join(noraDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("# test"), 0644))

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldWd)

	require.NoError(t, os.Chdir(root))

	discovered := DiscoverConfig()

	expectedPath, _ := filepath.EvalSymlinks(configPath)
	discoveredPath, _ := filepath.EvalSymlinks(discovered)
	assert.Equal(t, expectedPath, discoveredPath)
}

func TestDiscoverConfig_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	noraDir := filepath.Join(home, ConfigDirName)
	require.NoError(t, os.Mkdir(noraDir, 0755))

	configPath := filepath.Join(noraDir, ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte("# test"), 0644))

	// Work from an unrelated tree with no .nora anywhere on the walk
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldWd)

	require.NoError(t, os.Chdir(t.TempDir()))

	discovered := DiscoverConfig()

	expectedPath, _ := filepath.EvalSymlinks(configPath)
	discoveredPath, _ := filepath.EvalSymlinks(discovered)
	assert.Equal(t, expectedPath, discoveredPath)
}

func TestDiscoverConfig_NotFound(t *testing.T) {
	// Point HOME at an empty directory so the fallback cannot hit a real
	// ~/.nora/config.yaml on the machine running the tests.
	t.Setenv("HOME", t.TempDir())

	oldWd, err := os.Getwd()
	require.NoError(t, err)
	defer os.Chdir(oldWd)

	require.NoError(t, os.Chdir(t.TempDir()))

	assert.Empty(t, DiscoverConfig())
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bare tilde", "~", home},
		{"tilde prefix", "~/" + ConfigDirName, filepath.Join(home, ConfigDirName)},
		{"absolute untouched", "/etc/nora.yaml", "/etc/nora.yaml"},
		{"relative untouched", "nora.yaml", "nora.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandPath(tt.in))
		})
	}
}
