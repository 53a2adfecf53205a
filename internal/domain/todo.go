package domain

import "time"

type TodoStatus string

const (
	TodoPending    TodoStatus = "pending"
	TodoInProgress TodoStatus = "in_progress"
	TodoCompleted  TodoStatus = "completed"
	TodoCancelled  TodoStatus = "cancelled"
)

func (s TodoStatus) Valid() bool {
	switch s {
	case TodoPending, TodoInProgress, TodoCompleted, TodoCancelled:
		return true
	default:
		return false
	}
}

func (s TodoStatus) Incomplete() bool {
	return s == TodoPending || s == TodoInProgress
}

type Todo struct {
	ID         string     `json:"id"`
	SessionKey string     `json:"session_key"`
	Content    string     `json:"content"`
	Status     TodoStatus `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
