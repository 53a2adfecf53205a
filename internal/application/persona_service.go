package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	"go.uber.org/zap"
)

const personaAgentPrefix = "omoc_"

var personaAliases = map[string]domain.PersonaID{
	"atlas":             domain.PersonaAtlas,
	"orchestrator":      domain.PersonaAtlas,
	"prometheus":        domain.PersonaPrometheus,
	"planner":           domain.PersonaPrometheus,
	"sisyphus":          domain.PersonaSisyphus,
	"sisyphus-junior":   domain.PersonaSisyphus,
	"hephaestus":        domain.PersonaHephaestus,
	"oracle":            domain.PersonaOracle,
	"explore":           domain.PersonaExplore,
	"explorer":          domain.PersonaExplore,
	"librarian":         domain.PersonaLibrarian,
	"metis":             domain.PersonaMetis,
	"momus":             domain.PersonaMomus,
	"looker":            domain.PersonaLooker,
	"multimodal-looker": domain.PersonaLooker,
}

// ResolvePersonaID maps an agent id or persona alias to a known persona.
// Matching is case-insensitive and ignores the omoc_ agent prefix.
func ResolvePersonaID(raw string) (domain.PersonaID, bool) {
	normalized := normalizeAgentID(raw)
	if normalized == "" {
		return "", false
	}
	id, ok := personaAliases[normalized]
	return id, ok
}

type PersonaOption func(*PersonaService)

func WithDefaultWorkspace(dir string) PersonaOption {
	return func(s *PersonaService) {
		s.defaultWorkspace = strings.TrimSpace(dir)
	}
}

type PersonaService struct {
	state            ports.PersonaStateStore
	prompts          ports.PersonaPromptReader
	catalog          ports.PersonaCatalog
	workspace        ports.WorkspaceWriter
	defaultWorkspace string
}

func NewPersonaService(state ports.PersonaStateStore, prompts ports.PersonaPromptReader, catalog ports.PersonaCatalog, workspace ports.WorkspaceWriter, opts ...PersonaOption) *PersonaService {
	s := &PersonaService{
		state:     state,
		prompts:   prompts,
		catalog:   catalog,
		workspace: workspace,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// EffectivePersona prefers the manually selected persona and falls back to
// the persona the agent id resolves to.
func (s *PersonaService) EffectivePersona(ctx context.Context, agentID string) (domain.PersonaID, bool, error) {
	active, ok, err := s.state.ActivePersona(ctx)
	if err != nil {
		return "", false, fmt.Errorf("get active persona: %w", err)
	}
	if ok && active != "" {
		return active, true, nil
	}

	id, ok := ResolvePersonaID(agentID)
	return id, ok, nil
}

func (s *PersonaService) Prompt(id domain.PersonaID) string {
	return s.prompts.ReadPrompt(id)
}

func (s *PersonaService) Active(ctx context.Context) (domain.PersonaID, bool, error) {
	id, ok, err := s.state.ActivePersona(ctx)
	if err != nil {
		return "", false, fmt.Errorf("get active persona: %w", err)
	}
	return id, ok, nil
}

// Switch makes id the active persona and mirrors its prompt into the
// workspace AGENTS.md. An empty workspaceDir uses the configured default;
// with neither set the file is left alone.
func (s *PersonaService) Switch(ctx context.Context, raw string, workspaceDir string) (domain.PersonaID, error) {
	id, ok := ResolvePersonaID(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrPersonaNotFound, raw)
	}

	if err := s.state.SetActivePersona(ctx, id); err != nil {
		return "", fmt.Errorf("set active persona: %w", err)
	}

	dir := strings.TrimSpace(workspaceDir)
	if dir == "" {
		dir = s.defaultWorkspace
	}
	if dir == "" || s.workspace == nil {
		return id, nil
	}

	if err := s.workspace.WriteAgentsFile(ctx, dir, s.prompts.ReadPrompt(id)); err != nil {
		return id, fmt.Errorf("write workspace agents file: %w", err)
	}

	return id, nil
}

func (s *PersonaService) Reset(ctx context.Context) error {
	if err := s.state.Reset(ctx); err != nil {
		return fmt.Errorf("reset persona state: %w", err)
	}
	return nil
}

func (s *PersonaService) List(ctx context.Context) ([]domain.Persona, error) {
	if s.catalog == nil {
		return nil, errors.New("persona catalog is not configured")
	}
	personas, err := s.catalog.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list personas: %w", err)
	}
	return personas, nil
}

func (s *PersonaService) Get(ctx context.Context, raw string) (domain.Persona, error) {
	id, ok := ResolvePersonaID(raw)
	if !ok {
		return domain.Persona{}, fmt.Errorf("%w: %q", domain.ErrPersonaNotFound, raw)
	}
	if s.catalog == nil {
		return domain.Persona{}, errors.New("persona catalog is not configured")
	}
	persona, err := s.catalog.Get(ctx, id)
	if err != nil {
		return domain.Persona{}, fmt.Errorf("get persona %q: %w", id, err)
	}
	return persona, nil
}

// PersonaSwitcher runs persona switches off the prompt-build path. Failures
// are logged and never reach the caller of SwitchAsync.
type PersonaSwitcher struct {
	service *PersonaService
	logger  *zap.Logger
	wg      sync.WaitGroup
}

func NewPersonaSwitcher(service *PersonaService, logger *zap.Logger) *PersonaSwitcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PersonaSwitcher{service: service, logger: logger}
}

// SwitchAsync starts the switch in the background and returns a channel that
// receives its outcome. Callers are free to ignore the channel.
func (s *PersonaSwitcher) SwitchAsync(ctx context.Context, id domain.PersonaID, workspaceDir string) <-chan error {
	done := make(chan error, 1)
	detached := context.WithoutCancel(ctx)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer close(done)

		switched, err := s.service.Switch(detached, string(id), workspaceDir)
		if err != nil {
			s.logger.Error("persona switch failed",
				zap.String("persona", string(id)),
				zap.String("workspace", workspaceDir),
				zap.Error(err))
			done <- err
			return
		}

		s.logger.Info("persona switched", zap.String("persona", string(switched)))
		done <- nil
	}()

	return done
}

func (s *PersonaSwitcher) Wait() {
	s.wg.Wait()
}
