package host

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	fragmentSeparator = "\n\n"

	// DefaultBootstrapMemory bounds how many session keys are remembered as
	// already bootstrapped.
	DefaultBootstrapMemory = 1024
)

type promptHook struct {
	hook     ports.PromptHook
	priority int
}

// Runtime is an in-process stand-in for the host plugin runtime. It lets the
// CLI and the MCP server run the prompt-build pipeline without the host.
type Runtime struct {
	mu           sync.RWMutex
	promptHooks  map[string][]promptHook
	bootHooks    map[string][]ports.BootstrapHook
	bootstrapped *lru.Cache[string, struct{}]
	logger       *zap.Logger
}

var _ ports.HostAPI = (*Runtime)(nil)

func New(logger *zap.Logger) (*Runtime, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	bootstrapped, err := lru.New[string, struct{}](DefaultBootstrapMemory)
	if err != nil {
		return nil, fmt.Errorf("create bootstrap cache: %w", err)
	}

	return &Runtime{
		promptHooks:  map[string][]promptHook{},
		bootHooks:    map[string][]ports.BootstrapHook{},
		bootstrapped: bootstrapped,
		logger:       logger,
	}, nil
}

// On registers a prompt hook. Hooks run in descending priority; equal
// priorities keep registration order.
func (r *Runtime) On(event string, hook ports.PromptHook, priority int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	hooks := append(r.promptHooks[event], promptHook{hook: hook, priority: priority})
	slices.SortStableFunc(hooks, func(a, b promptHook) int {
		return b.priority - a.priority
	})
	r.promptHooks[event] = hooks
}

func (r *Runtime) RegisterHook(event string, hook ports.BootstrapHook) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bootHooks[event] = append(r.bootHooks[event], hook)
}

func (r *Runtime) Logger() *zap.Logger {
	return r.logger
}

// Bootstrap fires agent:bootstrap hooks the first time a session key is
// seen. It reports whether the hooks ran.
func (r *Runtime) Bootstrap(ctx context.Context, event domain.BootstrapEvent) bool {
	sessionKey := event.ResolveSessionKey()
	if ok, _ := r.bootstrapped.ContainsOrAdd(sessionKey, struct{}{}); ok {
		return false
	}

	r.mu.RLock()
	hooks := slices.Clone(r.bootHooks[domain.EventAgentBootstrap])
	r.mu.RUnlock()

	for _, hook := range hooks {
		r.runBootstrapHook(ctx, hook, event)
	}

	return true
}

// BuildPrompt bootstraps the session if needed and then runs every
// before_prompt_build hook. Prepend fragments are joined with blank lines in
// hook order. A hook that returns a system prompt replaces the one later
// hooks see and the one returned.
func (r *Runtime) BuildPrompt(ctx context.Context, event domain.PromptBuildEvent, hc domain.HookContext) domain.PromptBuildResult {
	r.Bootstrap(ctx, domain.BootstrapEvent{
		AgentID:      hc.AgentID,
		SessionKey:   hc.SessionKey,
		SessionID:    hc.SessionID,
		WorkspaceDir: hc.WorkspaceDir,
	})

	r.mu.RLock()
	hooks := slices.Clone(r.promptHooks[domain.EventBeforePromptBuild])
	r.mu.RUnlock()

	var fragments []string
	current := event
	for _, registered := range hooks {
		result := r.runPromptHook(ctx, registered, current, hc)
		if result.Empty() {
			continue
		}
		if result.PrependContext != "" {
			fragments = append(fragments, result.PrependContext)
		}
		if result.SystemPrompt != "" {
			current.SystemPrompt = result.SystemPrompt
		}
	}

	return domain.PromptBuildResult{
		PrependContext: strings.Join(fragments, fragmentSeparator),
		SystemPrompt:   current.SystemPrompt,
	}
}

func Compose(result domain.PromptBuildResult, prompt string) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{result.SystemPrompt, result.PrependContext, prompt} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, fragmentSeparator)
}

func (r *Runtime) runPromptHook(ctx context.Context, registered promptHook, event domain.PromptBuildEvent, hc domain.HookContext) (result *domain.PromptBuildResult) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("prompt hook panicked",
				zap.Int("priority", registered.priority),
				zap.Any("panic", recovered))
			result = nil
		}
	}()

	return registered.hook(ctx, event, hc)
}

func (r *Runtime) runBootstrapHook(ctx context.Context, hook ports.BootstrapHook, event domain.BootstrapEvent) {
	defer func() {
		if recovered := recover(); recovered != nil {
			r.logger.Error("bootstrap hook panicked", zap.Any("panic", recovered))
		}
	}()

	hook(ctx, event)
}
