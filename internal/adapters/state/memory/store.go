package memory

import (
	"context"
	"sync"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
)

// Store is an in-process persona override cell. Each Store is independent,
// so tenants or connections that need separate overrides get separate Stores.
type Store struct {
	mu     sync.RWMutex
	active domain.PersonaID
}

var _ ports.PersonaStateStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) ActivePersona(ctx context.Context) (domain.PersonaID, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.active, s.active != "", nil
}

func (s *Store) SetActivePersona(ctx context.Context, id domain.PersonaID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = id
	return nil
}

func (s *Store) Reset(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = ""
	return nil
}
