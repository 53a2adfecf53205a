package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
)

const (
	AgentsFileName = "AGENTS.md"

	agentsFileMode = 0o644
)

// Store writes persona content into workspace directories. Writes go through
// a temp file and rename so readers never observe a partial AGENTS.md.
type Store struct {
	mu sync.Mutex
}

var _ ports.WorkspaceWriter = (*Store)(nil)

func NewStore() *Store {
	return &Store{}
}

func (s *Store) WriteAgentsFile(ctx context.Context, workspaceDir string, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := agentsPath(workspaceDir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("stat workspace %q: %w", workspaceDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("workspace %q is not a directory", workspaceDir)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".agents-*.tmp")
	if err != nil {
		return fmt.Errorf("create agents temp file: %w", err)
	}
	tmpPath := tmp.Name()

	cleanup := func(cause error) error {
		_ = tmp.Close()
		if removeErr := os.Remove(tmpPath); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			return errors.Join(cause, fmt.Errorf("remove agents temp file: %w", removeErr))
		}
		return cause
	}

	if _, err := tmp.WriteString(withTrailingNewline(content)); err != nil {
		return cleanup(fmt.Errorf("write agents temp file: %w", err))
	}
	if err := tmp.Chmod(agentsFileMode); err != nil {
		return cleanup(fmt.Errorf("chmod agents temp file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return cleanup(fmt.Errorf("close agents temp file: %w", err))
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return cleanup(fmt.Errorf("replace %s: %w", AgentsFileName, err))
	}

	return nil
}

func (s *Store) ReadAgentsFile(ctx context.Context, workspaceDir string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := agentsPath(workspaceDir)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%s not found in %q: %w", AgentsFileName, workspaceDir, err)
		}
		return "", fmt.Errorf("read %s: %w", AgentsFileName, err)
	}

	return string(data), nil
}

func agentsPath(workspaceDir string) (string, error) {
	trimmed := strings.TrimSpace(workspaceDir)
	if trimmed == "" {
		return "", errors.New("workspace directory is empty")
	}

	return filepath.Join(filepath.Clean(trimmed), AgentsFileName), nil
}

func withTrailingNewline(content string) string {
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
