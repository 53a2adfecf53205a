package ports

import (
	"context"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"go.uber.org/zap"
)

type PromptHook func(ctx context.Context, event domain.PromptBuildEvent, hc domain.HookContext) *domain.PromptBuildResult

type BootstrapHook func(ctx context.Context, event domain.BootstrapEvent)

// HostAPI is the slice of the host plugin runtime the plugin registers against.
// Prompt hooks run in descending priority for every prompt build.
type HostAPI interface {
	On(event string, hook PromptHook, priority int)
	RegisterHook(event string, hook BootstrapHook)
	Logger() *zap.Logger
}
