package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/host"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/application"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"
)

type preparedPrompt struct {
	domain.PromptBuildResult
	Composed string `json:"composed"`
}

const (
	todoActionAdd    = "add"
	todoActionUpdate = "update"
	todoActionClear  = "clear"
)

func personaSwitchTool() mcp.Tool {
	return mcp.NewTool("omoc_persona_switch",
		mcp.WithDescription("Make a persona the active override for every session and mirror its prompt into the workspace AGENTS.md."),
		mcp.WithString("persona",
			mcp.Required(),
			mcp.Description("Persona id or alias, for example atlas, prometheus or omoc_oracle"),
		),
		mcp.WithString("workspace_dir",
			mcp.Description("Workspace whose AGENTS.md is replaced (defaults to the configured workspace)"),
		),
	)
}

func personaListTool() mcp.Tool {
	return mcp.NewTool("omoc_persona_list",
		mcp.WithDescription("List available personas and mark the active override."),
	)
}

func personaResetTool() mcp.Tool {
	return mcp.NewTool("omoc_persona_reset",
		mcp.WithDescription("Clear the active persona override so personas follow the agent id again."),
	)
}

func todoWriteTool() mcp.Tool {
	return mcp.NewTool("omoc_todo_write",
		mcp.WithDescription("Add a todo, update a todo's status, or clear a session's todo list."),
		mcp.WithString("session_key",
			mcp.Required(),
			mcp.Description("Session the todo list belongs to"),
		),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("One of: add, update, clear"),
			mcp.Enum(todoActionAdd, todoActionUpdate, todoActionClear),
		),
		mcp.WithString("content",
			mcp.Description("Todo text (action=add)"),
		),
		mcp.WithString("id",
			mcp.Description("Todo id (action=update)"),
		),
		mcp.WithString("status",
			mcp.Description("New status: pending, in_progress, completed or cancelled (action=update)"),
		),
	)
}

func todoReadTool() mcp.Tool {
	return mcp.NewTool("omoc_todo_read",
		mcp.WithDescription("Read a session's todo list."),
		mcp.WithString("session_key",
			mcp.Required(),
			mcp.Description("Session the todo list belongs to"),
		),
		mcp.WithBoolean("incomplete_only",
			mcp.Description("Only return pending and in-progress todos (default: false)"),
		),
	)
}

func keywordsDetectTool() mcp.Tool {
	return mcp.NewTool("omoc_keywords_detect",
		mcp.WithDescription("Classify a prompt into workflow keywords and return their guidance. Text inside code spans is ignored."),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("Prompt text to classify"),
		),
	)
}

func preparePromptTool() mcp.Tool {
	return mcp.NewTool("omoc_prepare_prompt",
		mcp.WithDescription("Run the before_prompt_build pipeline and return the prepend context, system prompt and composed prompt as JSON."),
		mcp.WithString("prompt", mcp.Description("User prompt")),
		mcp.WithString("system_prompt", mcp.Description("Outgoing system prompt, if any")),
		mcp.WithString("agent_id", mcp.Description("Agent id, for example main or omoc_explore")),
		mcp.WithString("session_key", mcp.Description("Session key")),
		mcp.WithString("session_id", mcp.Description("Session id, used when no session key is given")),
		mcp.WithString("workspace_dir", mcp.Description("Workspace directory")),
	)
}

func (t *Tools) HandlePersonaSwitch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := strings.TrimSpace(req.GetString("persona", ""))
	if raw == "" {
		return mcp.NewToolResultError("'persona' is required"), nil
	}

	id, err := t.personas.Switch(ctx, raw, req.GetString("workspace_dir", ""))
	if err != nil {
		if errors.Is(err, domain.ErrPersonaNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown persona %q", raw)), nil
		}
		t.logger.Warn("persona switch failed", zap.String("persona", raw), zap.Error(err))
		return mcp.NewToolResultError(fmt.Sprintf("failed to switch persona: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Active persona: %s", id)), nil
}

func (t *Tools) HandlePersonaList(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	personas, err := t.personas.List(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list personas: %v", err)), nil
	}
	active, hasActive, err := t.personas.Active(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read active persona: %v", err)), nil
	}

	var b strings.Builder
	for _, persona := range personas {
		marker := " "
		if hasActive && persona.ID == active {
			marker = "*"
		}
		fmt.Fprintf(&b, "%s %s (%s, %s): %s\n", marker, persona.ID, persona.Name, persona.Role, persona.Description)
	}
	if !hasActive {
		b.WriteString("No active override; personas follow the agent id.\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (t *Tools) HandlePersonaReset(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.personas.Reset(ctx); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to reset persona: %v", err)), nil
	}
	return mcp.NewToolResultText("Persona override cleared."), nil
}

func (t *Tools) HandleTodoWrite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionKey := strings.TrimSpace(req.GetString("session_key", ""))
	if sessionKey == "" {
		return mcp.NewToolResultError("'session_key' is required"), nil
	}

	switch action := req.GetString("action", ""); action {
	case todoActionAdd:
		todo, err := t.todos.Add(ctx, sessionKey, req.GetString("content", ""))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to add todo: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Added todo %s: %s", todo.ID, todo.Content)), nil
	case todoActionUpdate:
		id := strings.TrimSpace(req.GetString("id", ""))
		if id == "" {
			return mcp.NewToolResultError("'id' is required for update"), nil
		}
		status := domain.TodoStatus(req.GetString("status", ""))
		if err := t.todos.SetStatus(ctx, sessionKey, id, status); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to update todo: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Todo %s is now %s", id, status)), nil
	case todoActionClear:
		if err := t.todos.Clear(ctx, sessionKey); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to clear todos: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Cleared todos for %s", sessionKey)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown action %q; use add, update or clear", action)), nil
	}
}

func (t *Tools) HandleTodoRead(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionKey := strings.TrimSpace(req.GetString("session_key", ""))
	if sessionKey == "" {
		return mcp.NewToolResultError("'session_key' is required"), nil
	}

	var (
		todos []domain.Todo
		err   error
	)
	if boolArg(req, "incomplete_only", false) {
		todos, err = t.todos.Incomplete(ctx, sessionKey)
	} else {
		todos, err = t.todos.List(ctx, sessionKey)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read todos: %v", err)), nil
	}

	if len(todos) == 0 {
		return mcp.NewToolResultText("No todos."), nil
	}

	var b strings.Builder
	for _, todo := range todos {
		fmt.Fprintf(&b, "- %s [%s] %s\n", todo.ID, todo.Status, todo.Content)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (t *Tools) HandleKeywordsDetect(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := req.GetString("text", "")
	if strings.TrimSpace(text) == "" {
		return mcp.NewToolResultError("'text' is required"), nil
	}

	matches := application.DetectKeywords(text)
	if len(matches) == 0 {
		return mcp.NewToolResultText("No keywords detected."), nil
	}

	types := application.KeywordTypes(matches)
	names := make([]string, len(types))
	for i, kind := range types {
		names[i] = string(kind)
	}

	return mcp.NewToolResultText(fmt.Sprintf("Detected: %s\n\n%s", strings.Join(names, ", "), application.GuidanceFor(matches))), nil
}

func (t *Tools) HandlePreparePrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	event := domain.PromptBuildEvent{
		Prompt:       req.GetString("prompt", ""),
		SystemPrompt: req.GetString("system_prompt", ""),
	}
	hc := domain.HookContext{
		AgentID:      req.GetString("agent_id", ""),
		SessionKey:   req.GetString("session_key", ""),
		SessionID:    req.GetString("session_id", ""),
		WorkspaceDir: req.GetString("workspace_dir", ""),
	}

	result := t.runtime.BuildPrompt(ctx, event, hc)
	data, err := json.MarshalIndent(preparedPrompt{
		PromptBuildResult: result,
		Composed:          host.Compose(result, event.Prompt),
	}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}

func boolArg(req mcp.CallToolRequest, key string, defaultVal bool) bool {
	v, ok := req.GetArguments()[key].(bool)
	if !ok {
		return defaultVal
	}
	return v
}
