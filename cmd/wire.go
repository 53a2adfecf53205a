package cmd

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/host"
	personafile "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/personas/file"
	statusadapter "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/render/status"
	tomlrepo "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/repo/toml"
	todosqlite "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/todo/sqlite"
	workspacefile "github.com/happycastle114/oh-my-openclaw-sub000/internal/adapters/workspace/file"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/application"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/config"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/hooks"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	homeDir        string
	cfg            *viper.Viper
	settings       config.Settings
	logLevel       zap.AtomicLevel
	logger         *zap.Logger
	personas       *application.PersonaService
	switcher       *application.PersonaSwitcher
	statusRenderer func(statusadapter.Snapshot, statusadapter.RenderOptions) (string, error)

	todoOnce  sync.Once
	todoStore *todosqlite.Store
	todos     *application.TodoService
	todoErr   error
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	settings, err := config.Resolve(cfg, homeDir)
	if err != nil {
		return nil, fmt.Errorf("resolve config: %w", err)
	}

	logLevel := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger, err := newLogger(logLevel)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	catalog, err := personafile.NewStore(settings.PersonasDir, logger.Named("personas"))
	if err != nil {
		return nil, fmt.Errorf("wire persona store: %w", err)
	}

	state, err := tomlrepo.NewStateRepository(settings.StatePath, ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire persona state: %w", err)
	}

	personas := application.NewPersonaService(state, catalog, catalog, workspacefile.NewStore(),
		application.WithDefaultWorkspace(settings.WorkspaceDir))

	return &app{
		homeDir:        homeDir,
		cfg:            cfg,
		settings:       settings,
		logLevel:       logLevel,
		logger:         logger,
		personas:       personas,
		switcher:       application.NewPersonaSwitcher(personas, logger.Named("switcher")),
		statusRenderer: statusadapter.Render,
	}, nil
}

// newLogger builds a production JSON logger on stderr whose level can be
// raised after flags are parsed.
func newLogger(level zap.AtomicLevel) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = level
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

// todoService opens the todo database on first use so commands that never
// touch todos do not create it.
func (a *app) todoService() (*application.TodoService, error) {
	a.todoOnce.Do(func() {
		store, err := todosqlite.NewStore(a.settings.TodoDBPath)
		if err != nil {
			a.todoErr = fmt.Errorf("wire todo store: %w", err)
			return
		}
		a.todoStore = store
		a.todos = application.NewTodoService(store, ports.SystemClock{})
	})
	return a.todos, a.todoErr
}

func (a *app) pipeline() (*host.Runtime, *hooks.Plugin, error) {
	todos, err := a.todoService()
	if err != nil {
		return nil, nil, err
	}

	runtime, err := host.New(a.logger.Named("host"))
	if err != nil {
		return nil, nil, fmt.Errorf("wire host runtime: %w", err)
	}

	collector := application.NewContextCollector(ports.SystemClock{},
		application.WithSessionTTL(a.settings.SessionTTL),
		application.WithMaxSessions(a.settings.MaxSessions))

	plugin := hooks.New(a.personas, a.switcher, collector,
		hooks.WithTodoEnforcer(todos, a.settings.TodoEnforcerEnabled))
	plugin.Register(runtime)

	return runtime, plugin, nil
}

func (a *app) close() error {
	a.switcher.Wait()

	var errs []error
	if a.todoStore != nil {
		if err := a.todoStore.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close todo store: %w", err))
		}
	}
	// Sync on stderr fails with EINVAL on some platforms; it is not actionable.
	_ = a.logger.Sync()

	return errors.Join(errs...)
}
