package memory

import (
	"context"
	"testing"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSetAndReset(t *testing.T) {
	t.Parallel()

	store := NewStore()

	_, ok, err := store.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.SetActivePersona(context.Background(), domain.PersonaAtlas))
	got, ok, err := store.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PersonaAtlas, got)

	require.NoError(t, store.Reset(context.Background()))
	_, ok, err = store.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoresAreIndependent(t *testing.T) {
	t.Parallel()

	first := NewStore()
	second := NewStore()

	require.NoError(t, first.SetActivePersona(context.Background(), domain.PersonaPrometheus))

	_, ok, err := second.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
}
