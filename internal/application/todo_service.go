package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
)

var errEmptyTodoContent = errors.New("todo content is empty")

type TodoService struct {
	store ports.TodoStore
	clock ports.Clock
	newID func() string
}

func NewTodoService(store ports.TodoStore, clock ports.Clock) *TodoService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &TodoService{
		store: store,
		clock: clock,
		newID: uuid.NewString,
	}
}

func (s *TodoService) Add(ctx context.Context, sessionKey, content string) (domain.Todo, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return domain.Todo{}, errEmptyTodoContent
	}

	now := s.clock.Now()
	todo := domain.Todo{
		ID:         s.newID(),
		SessionKey: sessionKey,
		Content:    content,
		Status:     domain.TodoPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.Add(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("add todo: %w", err)
	}

	return todo, nil
}

func (s *TodoService) SetStatus(ctx context.Context, sessionKey, id string, status domain.TodoStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTodoStatus, status)
	}

	if err := s.store.SetStatus(ctx, sessionKey, id, status, s.clock.Now()); err != nil {
		return fmt.Errorf("set todo status: %w", err)
	}

	return nil
}

func (s *TodoService) List(ctx context.Context, sessionKey string) ([]domain.Todo, error) {
	todos, err := s.store.List(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Incomplete(ctx context.Context, sessionKey string) ([]domain.Todo, error) {
	todos, err := s.store.Incomplete(ctx, sessionKey)
	if err != nil {
		return nil, fmt.Errorf("list incomplete todos: %w", err)
	}
	return todos, nil
}

func (s *TodoService) Clear(ctx context.Context, sessionKey string) error {
	if err := s.store.Clear(ctx, sessionKey); err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	return nil
}

// ContinuationDirective renders the reminder injected while todos remain
// open. It returns an empty string when there is nothing left to do.
func ContinuationDirective(todos []domain.Todo) string {
	if len(todos) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("[todo continuation]\n")
	fmt.Fprintf(&b, "You have %d incomplete todo item(s). Continue working until all of them are completed:\n", len(todos))
	for _, todo := range todos {
		fmt.Fprintf(&b, "- [%s] %s\n", todo.Status, todo.Content)
	}
	b.WriteString("Do not stop or ask for confirmation while items remain; mark each one completed as soon as it is done.")

	return b.String()
}
