package domain

import "strings"

const (
	EventBeforePromptBuild = "before_prompt_build"
	EventAgentBootstrap    = "agent:bootstrap"

	DefaultSessionKey = "default"
)

type PromptBuildEvent struct {
	Prompt       string `json:"prompt,omitempty"`
	SystemPrompt string `json:"systemPrompt,omitempty"`
}

type HookContext struct {
	AgentID      string `json:"agentId,omitempty"`
	SessionKey   string `json:"sessionKey,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	WorkspaceDir string `json:"workspaceDir,omitempty"`
}

// ResolveSessionKey picks the first non-blank of session key, session id and
// agent id, falling back to DefaultSessionKey.
func (c HookContext) ResolveSessionKey() string {
	return resolveSessionKey(c.SessionKey, c.SessionID, c.AgentID)
}

type PromptBuildResult struct {
	PrependContext string `json:"prependContext,omitempty"`
	SystemPrompt   string `json:"systemPrompt,omitempty"`
}

func (r *PromptBuildResult) Empty() bool {
	return r == nil || (r.PrependContext == "" && r.SystemPrompt == "")
}

type BootstrapEvent struct {
	AgentID      string `json:"agentId,omitempty"`
	SessionKey   string `json:"sessionKey,omitempty"`
	SessionID    string `json:"sessionId,omitempty"`
	WorkspaceDir string `json:"workspaceDir,omitempty"`
}

func (e BootstrapEvent) ResolveSessionKey() string {
	return resolveSessionKey(e.SessionKey, e.SessionID, e.AgentID)
}

func resolveSessionKey(candidates ...string) string {
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) != "" {
			return candidate
		}
	}
	return DefaultSessionKey
}
