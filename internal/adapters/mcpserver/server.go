// Package mcpserver exposes personas, todos and the prompt-build pipeline as
// MCP tools over stdio.
//
// Each tool pairs a schema function (personaSwitchTool, todoWriteTool, ...)
// with a Tools.Handle* method that turns request arguments into a service
// call. Failures are reported as tool errors, never as protocol errors.
package mcpserver

import (
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/host"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/application"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"
)

const serverName = "oh-my-openclaw"

type Tools struct {
	personas *application.PersonaService
	todos    *application.TodoService
	runtime  *host.Runtime
	logger   *zap.Logger
}

func NewTools(personas *application.PersonaService, todos *application.TodoService, runtime *host.Runtime, logger *zap.Logger) *Tools {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tools{personas: personas, todos: todos, runtime: runtime, logger: logger}
}

func NewServer(tools *Tools, version string) *server.MCPServer {
	s := server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	s.AddTool(personaSwitchTool(), tools.HandlePersonaSwitch)
	s.AddTool(personaListTool(), tools.HandlePersonaList)
	s.AddTool(personaResetTool(), tools.HandlePersonaReset)
	s.AddTool(todoWriteTool(), tools.HandleTodoWrite)
	s.AddTool(todoReadTool(), tools.HandleTodoRead)
	s.AddTool(keywordsDetectTool(), tools.HandleKeywordsDetect)
	s.AddTool(preparePromptTool(), tools.HandlePreparePrompt)

	return s
}

func Serve(s *server.MCPServer) error {
	return server.ServeStdio(s)
}

const instructions = "oh-my-openclaw manages agent personas, per-session todo lists and prompt context. " +
	"Call omoc_prepare_prompt before sending a prompt to get the persona, guardrail, keyword, todo and queued context fragments. " +
	"Keep omoc_todo_write up to date while working; incomplete todos are re-injected until they are completed or cancelled."
