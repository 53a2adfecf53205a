package domain

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityNormal   Priority = "normal"
	PriorityLow      Priority = "low"
)

// Rank orders priorities for injection; lower ranks are emitted first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityNormal:
		return 2
	case PriorityLow:
		return 3
	default:
		return 2
	}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityHigh, PriorityNormal, PriorityLow:
		return true
	default:
		return false
	}
}

type Source string

const (
	SourcePersona      Source = "persona"
	SourceTodoEnforcer Source = "todo-enforcer"
	SourceSystem       Source = "system"
	SourcePlugin       Source = "plugin"
)

type ContextEntry struct {
	ID       string
	Content  string
	Priority Priority
	Source   Source
	OneShot  bool
}
