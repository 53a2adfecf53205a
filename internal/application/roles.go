package application

import (
	"strings"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
)

const TodoDirectiveEntryID = "todo-enforcer-directive"

var orchestratorAgents = map[string]struct{}{
	"main":       {},
	"atlas":      {},
	"sisyphus":   {},
	"prometheus": {},
}

var workerAgents = map[string]struct{}{
	"sisyphus-junior": {},
	"hephaestus":      {},
	"worker":          {},
}

// ClassifyAgent maps an agent id to its delegation role. An absent agent id
// is the top-level session and counts as the orchestrator. Lightweight
// read-only agents (oracle, explore, librarian, metis, momus, looker) fall
// through to RoleUnknown.
func ClassifyAgent(agentID string) domain.AgentRole {
	normalized := normalizeAgentID(agentID)
	if normalized == "" {
		return domain.RoleOrchestrator
	}
	if _, ok := orchestratorAgents[normalized]; ok {
		return domain.RoleOrchestrator
	}
	if _, ok := workerAgents[normalized]; ok {
		return domain.RoleWorker
	}
	return domain.RoleUnknown
}

var roleDirectives = map[domain.AgentRole]string{
	domain.RoleOrchestrator: `[todo discipline: orchestrator]
You coordinate this session. Before delegating, write the full todo list.
- Every delegated task must map to exactly one todo item.
- Mark items in_progress when delegated and completed only after verifying the result.
- Never end your turn while todo items remain pending or in_progress.`,
	domain.RoleWorker: `[todo discipline: worker]
You were delegated a focused task.
- Track your own steps as todo items and update them as you go.
- Finish every item you start; report back only when all of them are completed.
- If you are blocked, say exactly what is missing instead of stopping silently.`,
}

// TodoDirectiveFor returns the one-shot directive for the agent's role, if
// the role receives one.
func TodoDirectiveFor(agentID string) (domain.ContextEntry, bool) {
	directive, ok := roleDirectives[ClassifyAgent(agentID)]
	if !ok {
		return domain.ContextEntry{}, false
	}

	return domain.ContextEntry{
		ID:       TodoDirectiveEntryID,
		Content:  directive,
		Priority: domain.PriorityHigh,
		Source:   domain.SourceTodoEnforcer,
		OneShot:  true,
	}, true
}

func normalizeAgentID(agentID string) string {
	normalized := strings.ToLower(strings.TrimSpace(agentID))
	return strings.TrimPrefix(normalized, personaAgentPrefix)
}
