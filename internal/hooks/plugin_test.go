package hooks

import (
	"context"
	"errors"
	"testing"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/state/memory"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/application"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRegisterWiresHandlersByPriority(t *testing.T) {
	t.Parallel()

	api := &recordingHost{logger: zap.NewNop()}
	plugin := newTestPlugin(t, memory.NewStore(), nil, false)

	plugin.Register(api)

	priorities := make([]int, 0, len(api.prompt))
	for _, registered := range api.prompt {
		assert.Equal(t, domain.EventBeforePromptBuild, registered.event)
		priorities = append(priorities, registered.priority)
	}
	assert.Equal(t, []int{100, 90, 75, 60, 50}, priorities)
	assert.Equal(t, []string{domain.EventAgentBootstrap}, api.bootstrap)
}

func TestInjectPersonaPrependsPersonaForAgent(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)
	hc := domain.HookContext{AgentID: "explore", SessionKey: "agent:main:subagent:abc"}

	got := plugin.InjectPersona(context.Background(), domain.PromptBuildEvent{Prompt: "find the auth module"}, hc)

	require.NotNil(t, got)
	assert.Equal(t, "prompt:explore", got.PrependContext)
	assert.Empty(t, got.SystemPrompt)
}

func TestInjectPersonaExtendsExistingSystemPrompt(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)
	hc := domain.HookContext{AgentID: "explore", SessionKey: "agent:main:subagent:abc"}
	event := domain.PromptBuildEvent{Prompt: "find it", SystemPrompt: "You are a helpful agent."}

	got := plugin.InjectPersona(context.Background(), event, hc)

	require.NotNil(t, got)
	assert.Empty(t, got.PrependContext)
	assert.Contains(t, got.SystemPrompt, "prompt:explore")
	assert.Contains(t, got.SystemPrompt, "You are a helpful agent.")
}

func TestInjectPersonaPrefersActiveOverride(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	require.NoError(t, state.SetActivePersona(context.Background(), domain.PersonaPrometheus))
	plugin := newTestPlugin(t, state, nil, false)

	got := plugin.InjectPersona(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{AgentID: "explore"})

	require.NotNil(t, got)
	assert.Equal(t, "prompt:prometheus", got.PrependContext)
}

func TestInjectPersonaUnknownAgentInjectsNothing(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)

	assert.Nil(t, plugin.InjectPersona(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{AgentID: "custom"}))
	assert.Nil(t, plugin.InjectPersona(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{}))
}

func TestInjectPersonaStateErrorInjectsNothing(t *testing.T) {
	t.Parallel()

	state := mocks.NewMockPersonaStateStore(t)
	state.EXPECT().ActivePersona(mock.Anything).Return("", false, errors.New("corrupt state"))

	core, logs := observer.New(zap.WarnLevel)
	plugin := newTestPlugin(t, state, nil, false)
	plugin.logger = zap.New(core)

	got := plugin.InjectPersona(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{AgentID: "atlas"})

	assert.Nil(t, got)
	assert.Equal(t, 1, logs.FilterMessage("resolve persona failed").Len())
}

func TestInjectGuardrailsIsUnconditional(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)

	for _, hc := range []domain.HookContext{{}, {AgentID: "oracle"}, {SessionKey: "s9"}} {
		got := plugin.InjectGuardrails(context.Background(), domain.PromptBuildEvent{}, hc)
		require.NotNil(t, got)
		assert.Equal(t, guardrailsBlock, got.PrependContext)
	}
}

func TestDetectKeywordsReturnsGuidance(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)
	event := domain.PromptBuildEvent{Prompt: "search and analyze the auth module then implement a fix"}

	got := plugin.DetectKeywords(context.Background(), event, domain.HookContext{})

	require.NotNil(t, got)
	want := application.GuidanceFor(application.DetectKeywords(event.Prompt))
	assert.Equal(t, want, got.PrependContext)
	plugin.Wait()
}

func TestDetectKeywordsWithoutMatchInjectsNothing(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)

	assert.Nil(t, plugin.DetectKeywords(context.Background(), domain.PromptBuildEvent{Prompt: "hello world"}, domain.HookContext{}))
	assert.Nil(t, plugin.DetectKeywords(context.Background(), domain.PromptBuildEvent{Prompt: "run `search` please"}, domain.HookContext{}))
}

func TestDetectKeywordsSwitchesPersonaInBackground(t *testing.T) {
	t.Parallel()

	state := memory.NewStore()
	plugin := newTestPlugin(t, state, nil, false)

	got := plugin.DetectKeywords(context.Background(), domain.PromptBuildEvent{Prompt: "ultrawork: finish the migration"}, domain.HookContext{})
	require.NotNil(t, got)

	plugin.Wait()
	active, ok, err := state.ActivePersona(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, domain.PersonaAtlas, active)
}

func TestDetectKeywordsSwitchFailureIsSwallowed(t *testing.T) {
	t.Parallel()

	state := mocks.NewMockPersonaStateStore(t)
	state.EXPECT().SetActivePersona(mock.Anything, domain.PersonaPrometheus).Return(errors.New("read-only filesystem"))

	core, logs := observer.New(zap.ErrorLevel)
	plugin := newTestPluginWithLogger(t, state, nil, false, zap.New(core))

	got := plugin.DetectKeywords(context.Background(), domain.PromptBuildEvent{Prompt: "let's plan the rollout"}, domain.HookContext{})
	require.NotNil(t, got)
	assert.NotEmpty(t, got.PrependContext)

	plugin.Wait()
	assert.Equal(t, 1, logs.FilterMessage("persona switch failed").Len())
}

func TestContinueTodosListsIncompleteItems(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockTodoStore(t)
	todos := []domain.Todo{{ID: "t1", Content: "write tests", Status: domain.TodoPending}}
	store.EXPECT().Incomplete(mock.Anything, "s1").Return(todos, nil)

	plugin := newTestPlugin(t, memory.NewStore(), store, true)

	got := plugin.ContinueTodos(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{SessionKey: "s1"})

	require.NotNil(t, got)
	assert.Equal(t, application.ContinuationDirective(todos), got.PrependContext)
}

func TestContinueTodosInert(t *testing.T) {
	t.Parallel()

	t.Run("disabled", func(t *testing.T) {
		plugin := newTestPlugin(t, memory.NewStore(), mocks.NewMockTodoStore(t), false)
		assert.Nil(t, plugin.ContinueTodos(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{SessionKey: "s1"}))
	})

	t.Run("nothing open", func(t *testing.T) {
		store := mocks.NewMockTodoStore(t)
		store.EXPECT().Incomplete(mock.Anything, "agent-7").Return(nil, nil)
		plugin := newTestPlugin(t, memory.NewStore(), store, true)
		assert.Nil(t, plugin.ContinueTodos(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{AgentID: "agent-7"}))
	})

	t.Run("store failure", func(t *testing.T) {
		store := mocks.NewMockTodoStore(t)
		store.EXPECT().Incomplete(mock.Anything, domain.DefaultSessionKey).Return(nil, errors.New("database is locked"))
		plugin := newTestPlugin(t, memory.NewStore(), store, true)
		assert.Nil(t, plugin.ContinueTodos(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{}))
	})
}

func TestInjectContextDrainsCollectorInPriorityOrder(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, false)
	plugin.collector.Register("s1", domain.ContextEntry{ID: "b", Content: "normal entry", Priority: domain.PriorityNormal, Source: domain.SourcePlugin})
	plugin.collector.Register("s1", domain.ContextEntry{ID: "a", Content: "high entry", Priority: domain.PriorityHigh, Source: domain.SourcePlugin})

	got := plugin.InjectContext(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{AgentID: "s1"})

	require.NotNil(t, got)
	assert.Equal(t, "high entry\n\nnormal entry", got.PrependContext)
	assert.Nil(t, plugin.InjectContext(context.Background(), domain.PromptBuildEvent{}, domain.HookContext{AgentID: "other"}))
}

func TestInjectTodoDirectiveIsDeliveredOnce(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, true)

	plugin.InjectTodoDirective(context.Background(), domain.BootstrapEvent{AgentID: "atlas", SessionKey: "s1"})

	hc := domain.HookContext{AgentID: "atlas", SessionKey: "s1"}
	first := plugin.InjectContext(context.Background(), domain.PromptBuildEvent{}, hc)
	require.NotNil(t, first)
	assert.Contains(t, first.PrependContext, "orchestrator")

	assert.Nil(t, plugin.InjectContext(context.Background(), domain.PromptBuildEvent{}, hc))
}

func TestInjectTodoDirectiveSkipsLightweightAgentsAndDisabledEnforcer(t *testing.T) {
	t.Parallel()

	plugin := newTestPlugin(t, memory.NewStore(), nil, true)
	for _, agent := range []string{"oracle", "explore", "librarian", "metis", "momus", "looker"} {
		plugin.InjectTodoDirective(context.Background(), domain.BootstrapEvent{AgentID: agent})
		assert.False(t, plugin.collector.HasEntries(agent), agent)
	}

	disabled := newTestPlugin(t, memory.NewStore(), nil, false)
	disabled.InjectTodoDirective(context.Background(), domain.BootstrapEvent{AgentID: "main"})
	assert.False(t, disabled.collector.HasEntries("main"))
}

func newTestPlugin(t *testing.T, state ports.PersonaStateStore, todos ports.TodoStore, enforcer bool) *Plugin {
	t.Helper()
	return newTestPluginWithLogger(t, state, todos, enforcer, zap.NewNop())
}

func newTestPluginWithLogger(t *testing.T, state ports.PersonaStateStore, todos ports.TodoStore, enforcer bool, logger *zap.Logger) *Plugin {
	t.Helper()

	personas := application.NewPersonaService(state, stubPrompts{}, nil, nil)
	switcher := application.NewPersonaSwitcher(personas, logger)
	collector := application.NewContextCollector(nil)

	var todoService *application.TodoService
	if todos != nil {
		todoService = application.NewTodoService(todos, nil)
	}

	plugin := New(personas, switcher, collector, WithTodoEnforcer(todoService, enforcer), WithLogger(logger))
	t.Cleanup(plugin.Wait)
	return plugin
}

type stubPrompts struct{}

func (stubPrompts) ReadPrompt(id domain.PersonaID) string {
	return "prompt:" + string(id)
}

type registeredPrompt struct {
	event    string
	priority int
}

type recordingHost struct {
	logger    *zap.Logger
	prompt    []registeredPrompt
	bootstrap []string
}

func (h *recordingHost) On(event string, _ ports.PromptHook, priority int) {
	h.prompt = append(h.prompt, registeredPrompt{event: event, priority: priority})
}

func (h *recordingHost) RegisterHook(event string, _ ports.BootstrapHook) {
	h.bootstrap = append(h.bootstrap, event)
}

func (h *recordingHost) Logger() *zap.Logger {
	return h.logger
}
