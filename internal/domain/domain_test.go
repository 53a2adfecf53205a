package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriorityRankOrdersInjection(t *testing.T) {
	assert.Less(t, PriorityCritical.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityNormal.Rank())
	assert.Less(t, PriorityNormal.Rank(), PriorityLow.Rank())
	assert.Equal(t, PriorityNormal.Rank(), Priority("urgent").Rank())
}

func TestPriorityValid(t *testing.T) {
	assert.True(t, PriorityLow.Valid())
	assert.False(t, Priority("").Valid())
	assert.False(t, Priority("urgent").Valid())
}

func TestTodoStatus(t *testing.T) {
	tests := []struct {
		status     TodoStatus
		valid      bool
		incomplete bool
	}{
		{status: TodoPending, valid: true, incomplete: true},
		{status: TodoInProgress, valid: true, incomplete: true},
		{status: TodoCompleted, valid: true},
		{status: TodoCancelled, valid: true},
		{status: TodoStatus("done")},
		{status: TodoStatus("")},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.Valid())
			assert.Equal(t, tt.incomplete, tt.status.Incomplete())
		})
	}
}

func TestHookContextResolveSessionKey(t *testing.T) {
	tests := []struct {
		name string
		ctx  HookContext
		want string
	}{
		{name: "session key wins", ctx: HookContext{SessionKey: "k", SessionID: "id", AgentID: "a"}, want: "k"},
		{name: "blank key falls to session id", ctx: HookContext{SessionKey: "  ", SessionID: "id", AgentID: "a"}, want: "id"},
		{name: "agent id last", ctx: HookContext{AgentID: "a"}, want: "a"},
		{name: "default when empty", ctx: HookContext{}, want: DefaultSessionKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ctx.ResolveSessionKey())
		})
	}
}

func TestBootstrapEventResolveSessionKey(t *testing.T) {
	assert.Equal(t, "id", BootstrapEvent{SessionID: "id", AgentID: "a"}.ResolveSessionKey())
	assert.Equal(t, DefaultSessionKey, BootstrapEvent{}.ResolveSessionKey())
}

func TestPromptBuildResultEmpty(t *testing.T) {
	var nilResult *PromptBuildResult
	assert.True(t, nilResult.Empty())
	assert.True(t, (&PromptBuildResult{}).Empty())
	assert.False(t, (&PromptBuildResult{PrependContext: "x"}).Empty())
	assert.False(t, (&PromptBuildResult{SystemPrompt: "x"}).Empty())
}
