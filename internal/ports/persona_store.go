package ports

import (
	"context"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
)

// PersonaStateStore holds the manually selected persona override. It is a
// single slot shared by every session served by the process.
type PersonaStateStore interface {
	ActivePersona(ctx context.Context) (domain.PersonaID, bool, error)
	SetActivePersona(ctx context.Context, id domain.PersonaID) error
	Reset(ctx context.Context) error
}

// PersonaPromptReader returns persona prompt text. Read failures are reported
// inside the returned text rather than as errors.
type PersonaPromptReader interface {
	ReadPrompt(id domain.PersonaID) string
}

type PersonaCatalog interface {
	List(ctx context.Context) ([]domain.Persona, error)
	Get(ctx context.Context, id domain.PersonaID) (domain.Persona, error)
}
