package ports

import (
	"context"
	"time"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
)

type TodoStore interface {
	Add(ctx context.Context, todo domain.Todo) error
	SetStatus(ctx context.Context, sessionKey, id string, status domain.TodoStatus, updatedAt time.Time) error
	List(ctx context.Context, sessionKey string) ([]domain.Todo, error)
	Incomplete(ctx context.Context, sessionKey string) ([]domain.Todo, error)
	Clear(ctx context.Context, sessionKey string) error
}
