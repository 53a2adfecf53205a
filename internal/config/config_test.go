package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	home := t.TempDir()

	cfg, err := Load(home)
	require.NoError(t, err)

	settings, err := Resolve(cfg, home)
	require.NoError(t, err)

	dir := filepath.Join(home, ".openclaw", "oh-my-openclaw")
	assert.Equal(t, Settings{
		PersonasDir:         filepath.Join(dir, "personas"),
		StatePath:           filepath.Join(dir, "state.toml"),
		TodoDBPath:          filepath.Join(dir, "todos.db"),
		TodoEnforcerEnabled: true,
		SessionTTL:          30 * time.Minute,
		MaxSessions:         100,
	}, settings)
}

func TestLoadReadsConfigFileAndExpandsHome(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
[personas]
dir = "~/my-personas"

[todo_enforcer]
enabled = false

[collector]
session_ttl = "5m"
max_sessions = 7
`)

	cfg, err := Load(home)
	require.NoError(t, err)
	settings, err := Resolve(cfg, home)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "my-personas"), settings.PersonasDir)
	assert.False(t, settings.TodoEnforcerEnabled)
	assert.Equal(t, 5*time.Minute, settings.SessionTTL)
	assert.Equal(t, 7, settings.MaxSessions)
}

func TestLoadEnvironmentOverridesFile(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[todo_enforcer]\nenabled = true\n")
	t.Setenv("OMOC_TODO_ENFORCER_ENABLED", "false")
	t.Setenv("OMOC_WORKSPACE_DIR", "/work/repo")

	cfg, err := Load(home)
	require.NoError(t, err)
	settings, err := Resolve(cfg, home)
	require.NoError(t, err)

	assert.False(t, settings.TodoEnforcerEnabled)
	assert.Equal(t, "/work/repo", settings.WorkspaceDir)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[collector\nsession_ttl = ")

	_, err := Load(home)
	require.ErrorContains(t, err, "read config")
}

func TestResolveRejectsInvalidCollectorLimits(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "[collector]\nmax_sessions = 0\n")

	cfg, err := Load(home)
	require.NoError(t, err)

	_, err = Resolve(cfg, home)
	require.ErrorContains(t, err, "invalid collector.max_sessions")
}

func TestWriteDefaultRespectsExistingFile(t *testing.T) {
	home := t.TempDir()

	written, err := WriteDefault(home, false)
	require.NoError(t, err)
	assert.True(t, written)

	info, err := os.Stat(Path(home))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(configFileMode), info.Mode().Perm())

	cfg, err := Load(home)
	require.NoError(t, err)
	settings, err := Resolve(cfg, home)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, settings.SessionTTL)

	written, err = WriteDefault(home, false)
	require.NoError(t, err)
	assert.False(t, written)
}

func writeConfig(t *testing.T, home, content string) {
	t.Helper()

	path := Path(home)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}
