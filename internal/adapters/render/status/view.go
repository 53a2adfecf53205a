package status

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
)

// Snapshot is what a status view shows. A nil Personas slice hides the
// persona section; an empty SessionKey hides the todo section.
type Snapshot struct {
	Personas   []domain.Persona
	Active     domain.PersonaID
	HasActive  bool
	SessionKey string
	Todos      []domain.Todo
}

type RenderOptions struct {
	BarWidth int
}

const defaultBarWidth = 24

func renderView(snapshot Snapshot, opts RenderOptions, s styles) string {
	lines := []string{s.title.Render("oh-my-openclaw")}
	lines = append(lines, s.header.Render(activeLabel(snapshot)))

	if snapshot.Personas != nil {
		lines = append(lines, s.section.Render(renderPersonas(snapshot, s)))
	}
	if snapshot.SessionKey != "" {
		lines = append(lines, s.section.Render(renderTodos(snapshot, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func activeLabel(snapshot Snapshot) string {
	if !snapshot.HasActive {
		return "active persona: none (follows agent id)"
	}
	return fmt.Sprintf("active persona: %s", snapshot.Active)
}

func renderPersonas(snapshot Snapshot, s styles) string {
	if len(snapshot.Personas) == 0 {
		return s.empty.Render("No personas installed.")
	}

	parts := []string{s.header.Render(fmt.Sprintf("personas: %d", len(snapshot.Personas)))}
	for _, persona := range snapshot.Personas {
		marker := "  "
		title := s.persona.Render(personaTitle(persona))
		if snapshot.HasActive && persona.ID == snapshot.Active {
			marker = s.active.Render("* ")
		}
		line := marker + title
		if persona.Description != "" {
			line += " " + s.detail.Render(persona.Description)
		}
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func personaTitle(persona domain.Persona) string {
	name := strings.TrimSpace(persona.Name)
	if name == "" || name == string(persona.ID) {
		return fmt.Sprintf("%s [%s]", persona.ID, roleLabel(persona.Role))
	}
	return fmt.Sprintf("%s (%s) [%s]", name, persona.ID, roleLabel(persona.Role))
}

func roleLabel(role domain.AgentRole) string {
	if role == "" {
		return string(domain.RoleUnknown)
	}
	return string(role)
}

func renderTodos(snapshot Snapshot, opts RenderOptions, s styles) string {
	header := s.header.Render(fmt.Sprintf("todos for %s", snapshot.SessionKey))
	if len(snapshot.Todos) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, s.empty.Render("No todos."))
	}

	done := 0
	for _, todo := range snapshot.Todos {
		if !todo.Status.Incomplete() {
			done++
		}
	}
	percent := 100 * float64(done) / float64(len(snapshot.Todos))

	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	progress := lipgloss.JoinHorizontal(
		lipgloss.Top,
		renderProgressBar(percent, width, s),
		" ",
		s.detail.Render(fmt.Sprintf("%d/%d done", done, len(snapshot.Todos))),
	)

	parts := []string{header, progress}
	for _, todo := range snapshot.Todos {
		style := s.todoOpen
		if !todo.Status.Incomplete() {
			style = s.todoDone
		}
		parts = append(parts, style.Render(fmt.Sprintf("%s %s  %s", todoMark(todo.Status), todo.Content, shortID(todo.ID))))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func todoMark(status domain.TodoStatus) string {
	switch status {
	case domain.TodoCompleted:
		return "[x]"
	case domain.TodoInProgress:
		return "[~]"
	case domain.TodoCancelled:
		return "[-]"
	default:
		return "[ ]"
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderProgressBar(donePercent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(donePercent) / 100.0))
	if filled > width {
		filled = width
	}

	empty := width - filled
	fillSegment := s.barFill.Render(strings.Repeat("=", filled))
	emptySegment := s.barEmpty.Render(strings.Repeat("-", empty))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		fillSegment,
		emptySegment,
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
