package toml

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))

	_, ok, err := repo.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetActivePersona(context.Background(), domain.PersonaPrometheus))

	got, ok, err := repo.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PersonaPrometheus, got)

	require.NoError(t, repo.Reset(context.Background()))

	_, ok, err = repo.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStateRepositoryWritesVersionedFileWithPrivatePermissions(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "nested", "state.toml")
	repo := newTestRepository(t, statePath)

	require.NoError(t, repo.SetActivePersona(context.Background(), domain.PersonaAtlas))

	data, err := os.ReadFile(statePath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")

	var decoded fileSchema
	require.NoError(t, toml.Unmarshal(data, &decoded))
	assert.Equal(t, "atlas", decoded.Persona.Active)
	assert.Equal(t, "2026-03-01T09:00:00Z", decoded.Persona.UpdatedAt)

	info, err := os.Stat(statePath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(stateFileMode), info.Mode().Perm())
}

func TestStateRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(statePath, []byte("version = 2\n"), 0o600))

	repo := newTestRepository(t, statePath)

	_, _, err := repo.ActivePersona(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported state schema version 2")
}

func TestStateRepositorySharesLockAcrossInstances(t *testing.T) {
	t.Parallel()

	statePath := filepath.Join(t.TempDir(), "state.toml")
	first := newTestRepository(t, statePath)
	second := newTestRepository(t, statePath)

	assert.Same(t, first.mu, second.mu)

	var wg sync.WaitGroup
	for _, repo := range []*StateRepository{first, second} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.SetActivePersona(context.Background(), domain.PersonaOracle))
		}()
	}
	wg.Wait()

	got, ok, err := first.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PersonaOracle, got)
}

func TestStateRepositoryHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "state.toml"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, repo.SetActivePersona(ctx, domain.PersonaAtlas), context.Canceled)
}

func TestStateRepositoryRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := NewStateRepository("  ", nil)
	require.ErrorContains(t, err, "state path is empty")
}

func newTestRepository(t *testing.T, statePath string) *StateRepository {
	t.Helper()

	repo, err := NewStateRepository(statePath, fixedClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	return repo
}

type fixedClock struct {
	now time.Time
}

func (f fixedClock) Now() time.Time {
	return f.now
}
