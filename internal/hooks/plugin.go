package hooks

import (
	"context"
	"strings"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/application"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	"go.uber.org/zap"
)

const (
	PersonaInjectorPriority   = 100
	GuardrailInjectorPriority = 90
	KeywordDetectorPriority   = 75
	TodoContinuationPriority  = 60
	ContextInjectorPriority   = 50
)

// Plugin owns the prompt-build handlers and the bootstrap hook. None of its
// handlers fail: every error degrades to "nothing injected".
type Plugin struct {
	personas            *application.PersonaService
	switcher            *application.PersonaSwitcher
	collector           *application.ContextCollector
	todos               *application.TodoService
	todoEnforcerEnabled bool
	logger              *zap.Logger
}

type Option func(*Plugin)

// WithTodoEnforcer enables the continuation handler and the bootstrap
// directive. The continuation handler stays inert while todos is nil.
func WithTodoEnforcer(todos *application.TodoService, enabled bool) Option {
	return func(p *Plugin) {
		p.todos = todos
		p.todoEnforcerEnabled = enabled
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(p *Plugin) {
		p.logger = logger
	}
}

func New(personas *application.PersonaService, switcher *application.PersonaSwitcher, collector *application.ContextCollector, opts ...Option) *Plugin {
	p := &Plugin{
		personas:  personas,
		switcher:  switcher,
		collector: collector,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register wires every handler into the host. A plugin without its own
// logger adopts the host's.
func (p *Plugin) Register(api ports.HostAPI) {
	if p.logger == nil {
		p.logger = api.Logger()
	}
	if p.logger == nil {
		p.logger = zap.NewNop()
	}

	api.On(domain.EventBeforePromptBuild, p.InjectPersona, PersonaInjectorPriority)
	api.On(domain.EventBeforePromptBuild, p.InjectGuardrails, GuardrailInjectorPriority)
	api.On(domain.EventBeforePromptBuild, p.DetectKeywords, KeywordDetectorPriority)
	api.On(domain.EventBeforePromptBuild, p.ContinueTodos, TodoContinuationPriority)
	api.On(domain.EventBeforePromptBuild, p.InjectContext, ContextInjectorPriority)
	api.RegisterHook(domain.EventAgentBootstrap, p.InjectTodoDirective)
}

func (p *Plugin) Wait() {
	if p.switcher != nil {
		p.switcher.Wait()
	}
}

func (p *Plugin) InjectPersona(ctx context.Context, event domain.PromptBuildEvent, hc domain.HookContext) *domain.PromptBuildResult {
	id, ok, err := p.personas.EffectivePersona(ctx, hc.AgentID)
	if err != nil {
		p.log().Warn("resolve persona failed", zap.String("agent", hc.AgentID), zap.Error(err))
		return nil
	}
	if !ok {
		return nil
	}

	prompt := strings.TrimSpace(p.personas.Prompt(id))
	if prompt == "" {
		return nil
	}

	if event.SystemPrompt != "" {
		return &domain.PromptBuildResult{SystemPrompt: prompt + "\n\n" + event.SystemPrompt}
	}
	return &domain.PromptBuildResult{PrependContext: prompt}
}

func (p *Plugin) InjectGuardrails(context.Context, domain.PromptBuildEvent, domain.HookContext) *domain.PromptBuildResult {
	return &domain.PromptBuildResult{PrependContext: guardrailsBlock}
}

func (p *Plugin) DetectKeywords(ctx context.Context, event domain.PromptBuildEvent, hc domain.HookContext) *domain.PromptBuildResult {
	matches := application.DetectKeywords(event.Prompt)
	if len(matches) == 0 {
		return nil
	}

	if persona, ok := application.PersonaSwitchFor(matches); ok && p.switcher != nil {
		p.log().Debug("keyword persona switch",
			zap.String("persona", string(persona)),
			zap.String("session", hc.ResolveSessionKey()))
		p.switcher.SwitchAsync(ctx, persona, hc.WorkspaceDir)
	}

	return &domain.PromptBuildResult{PrependContext: application.GuidanceFor(matches)}
}

func (p *Plugin) ContinueTodos(ctx context.Context, _ domain.PromptBuildEvent, hc domain.HookContext) *domain.PromptBuildResult {
	if !p.todoEnforcerEnabled || p.todos == nil {
		return nil
	}

	sessionKey := hc.ResolveSessionKey()
	todos, err := p.todos.Incomplete(ctx, sessionKey)
	if err != nil {
		p.log().Warn("load incomplete todos failed", zap.String("session", sessionKey), zap.Error(err))
		return nil
	}

	directive := application.ContinuationDirective(todos)
	if directive == "" {
		return nil
	}
	return &domain.PromptBuildResult{PrependContext: directive}
}

func (p *Plugin) InjectContext(_ context.Context, _ domain.PromptBuildEvent, hc domain.HookContext) *domain.PromptBuildResult {
	content := p.collector.CollectAsString(hc.ResolveSessionKey())
	if content == "" {
		return nil
	}
	return &domain.PromptBuildResult{PrependContext: content}
}

// InjectTodoDirective queues the role directive for the session's next
// prompt build. It is delivered once by the context injector.
func (p *Plugin) InjectTodoDirective(_ context.Context, event domain.BootstrapEvent) {
	if !p.todoEnforcerEnabled {
		return
	}

	entry, ok := application.TodoDirectiveFor(event.AgentID)
	if !ok {
		return
	}
	p.collector.Register(event.ResolveSessionKey(), entry)
}

func (p *Plugin) log() *zap.Logger {
	if p.logger == nil {
		return zap.NewNop()
	}
	return p.logger
}
