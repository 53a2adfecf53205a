package file

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidWorkspace(t *testing.T) {
	t.Parallel()

	store := NewStore()
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	testCases := []struct {
		name    string
		dir     string
		wantErr string
	}{
		{name: "empty", dir: "", wantErr: "workspace directory is empty"},
		{name: "whitespace", dir: "   ", wantErr: "workspace directory is empty"},
		{name: "missing", dir: filepath.Join(t.TempDir(), "missing"), wantErr: "stat workspace"},
		{name: "not a directory", dir: file, wantErr: "is not a directory"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.WriteAgentsFile(context.Background(), tc.dir, "content")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreWriteReplacesAgentsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore()

	require.NoError(t, store.WriteAgentsFile(context.Background(), dir, "# Atlas"))
	require.NoError(t, store.WriteAgentsFile(context.Background(), dir, "# Prometheus\n"))

	got, err := store.ReadAgentsFile(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "# Prometheus\n", got)

	info, err := os.Stat(filepath.Join(dir, AgentsFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(agentsFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStoreReadMissingAgentsFile(t *testing.T) {
	t.Parallel()

	_, err := NewStore().ReadAgentsFile(context.Background(), t.TempDir())
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStoreConcurrentWritesLeaveOneWholeFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store := NewStore()
	contents := []string{"# Atlas\n", "# Prometheus\n", "# Oracle\n", "# Explore\n"}

	var wg sync.WaitGroup
	for _, content := range contents {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, store.WriteAgentsFile(context.Background(), dir, content))
		}()
	}
	wg.Wait()

	got, err := store.ReadAgentsFile(context.Background(), dir)
	require.NoError(t, err)
	assert.Contains(t, contents, got)
}

func TestStoreCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStore().WriteAgentsFile(ctx, t.TempDir(), "content")
	require.ErrorIs(t, err, context.Canceled)
}
