package file

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/happycastle114/oh-my-openclaw-sub000/internal/domain"
	"github.com/happycastle114/oh-my-openclaw-sub000/internal/ports"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.md
var defaultFS embed.FS

const (
	defaultsDir      = "defaults"
	personaFileExt   = ".md"
	personaDirMode   = 0o755
	personaFileMode  = 0o644
	defaultCacheSize = 64
)

var frontmatterDelimiter = []byte("---")

// Store serves persona markdown from a directory, falling back to the
// embedded defaults. Parsed files are cached and revalidated against the
// file's modification time and size on every read.
type Store struct {
	dir    string
	cache  *lru.Cache[string, cachedPersona]
	group  singleflight.Group
	logger *zap.Logger
}

type cachedPersona struct {
	persona domain.Persona
	modTime time.Time
	size    int64
}

type frontmatter struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Role        string `yaml:"role"`
}

var (
	_ ports.PersonaPromptReader = (*Store)(nil)
	_ ports.PersonaCatalog      = (*Store)(nil)
)

func NewStore(dir string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	cache, err := lru.New[string, cachedPersona](defaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create persona cache: %w", err)
	}

	return &Store{dir: filepath.Clean(dir), cache: cache, logger: logger}, nil
}

// ReadPrompt never fails: when the persona cannot be loaded the returned
// text describes the failure instead.
func (s *Store) ReadPrompt(id domain.PersonaID) string {
	persona, err := s.load(id)
	if err != nil {
		s.logger.Warn("persona prompt unavailable", zap.String("persona", string(id)), zap.Error(err))
		return fmt.Sprintf("[oh-my-openclaw] persona %q unavailable: %v", id, err)
	}
	return persona.Prompt
}

func (s *Store) Get(ctx context.Context, id domain.PersonaID) (domain.Persona, error) {
	if err := ctx.Err(); err != nil {
		return domain.Persona{}, err
	}
	return s.load(id)
}

func (s *Store) List(ctx context.Context) ([]domain.Persona, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ids, err := s.personaIDs()
	if err != nil {
		return nil, err
	}

	personas := make([]domain.Persona, 0, len(ids))
	for _, id := range ids {
		persona, err := s.load(id)
		if err != nil {
			s.logger.Warn("skipping unreadable persona", zap.String("persona", string(id)), zap.Error(err))
			continue
		}
		personas = append(personas, persona)
	}

	return personas, nil
}

// WriteDefaults copies the embedded persona files into dir. Existing files
// are kept unless overwrite is set. It returns the paths written.
func WriteDefaults(dir string, overwrite bool) ([]string, error) {
	if err := os.MkdirAll(dir, personaDirMode); err != nil {
		return nil, fmt.Errorf("create persona directory: %w", err)
	}

	entries, err := fs.ReadDir(defaultFS, defaultsDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded personas: %w", err)
	}

	var written []string
	for _, entry := range entries {
		target := filepath.Join(dir, entry.Name())
		if !overwrite {
			if _, err := os.Stat(target); err == nil {
				continue
			}
		}

		data, err := defaultFS.ReadFile(path.Join(defaultsDir, entry.Name()))
		if err != nil {
			return written, fmt.Errorf("read embedded persona %q: %w", entry.Name(), err)
		}
		if err := os.WriteFile(target, data, personaFileMode); err != nil {
			return written, fmt.Errorf("write persona %q: %w", entry.Name(), err)
		}
		written = append(written, target)
	}

	return written, nil
}

func (s *Store) load(id domain.PersonaID) (domain.Persona, error) {
	name := string(id)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return domain.Persona{}, fmt.Errorf("%w: %q", domain.ErrPersonaNotFound, id)
	}

	filePath := filepath.Join(s.dir, name+personaFileExt)
	info, err := os.Stat(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return loadEmbedded(id)
		}
		return domain.Persona{}, fmt.Errorf("stat persona file: %w", err)
	}

	if cached, ok := s.cache.Get(filePath); ok && cached.modTime.Equal(info.ModTime()) && cached.size == info.Size() {
		return cached.persona, nil
	}

	value, err, _ := s.group.Do(filePath, func() (any, error) {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("read persona file: %w", err)
		}
		persona, err := parsePersona(id, data)
		if err != nil {
			return nil, err
		}
		s.cache.Add(filePath, cachedPersona{persona: persona, modTime: info.ModTime(), size: info.Size()})
		return persona, nil
	})
	if err != nil {
		return domain.Persona{}, err
	}

	return value.(domain.Persona), nil
}

func loadEmbedded(id domain.PersonaID) (domain.Persona, error) {
	data, err := defaultFS.ReadFile(path.Join(defaultsDir, string(id)+personaFileExt))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Persona{}, fmt.Errorf("%w: %q", domain.ErrPersonaNotFound, id)
		}
		return domain.Persona{}, fmt.Errorf("read embedded persona: %w", err)
	}
	return parsePersona(id, data)
}

func (s *Store) personaIDs() ([]domain.PersonaID, error) {
	seen := map[domain.PersonaID]struct{}{}

	embedded, err := fs.ReadDir(defaultFS, defaultsDir)
	if err != nil {
		return nil, fmt.Errorf("read embedded personas: %w", err)
	}
	for _, entry := range embedded {
		seen[personaIDFromFile(entry.Name())] = struct{}{}
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read persona directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != personaFileExt {
			continue
		}
		seen[personaIDFromFile(entry.Name())] = struct{}{}
	}

	ids := make([]domain.PersonaID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids, nil
}

func personaIDFromFile(name string) domain.PersonaID {
	return domain.PersonaID(strings.TrimSuffix(name, personaFileExt))
}

// parsePersona splits optional YAML frontmatter from the markdown body. The
// file name is authoritative for the id.
func parsePersona(id domain.PersonaID, data []byte) (domain.Persona, error) {
	persona := domain.Persona{ID: id, Name: string(id), Role: domain.RoleUnknown}

	body := bytes.TrimPrefix(data, []byte("\ufeff"))
	if rest, ok := bytes.CutPrefix(body, frontmatterDelimiter); ok && startsWithNewline(rest) {
		header, remainder, found := cutFrontmatter(rest)
		if !found {
			return domain.Persona{}, fmt.Errorf("persona %q: unterminated frontmatter", id)
		}

		var meta frontmatter
		if err := yaml.Unmarshal(header, &meta); err != nil {
			return domain.Persona{}, fmt.Errorf("persona %q: decode frontmatter: %w", id, err)
		}
		if meta.Name != "" {
			persona.Name = meta.Name
		}
		persona.Description = meta.Description
		if meta.Role != "" {
			persona.Role = domain.AgentRole(meta.Role)
		}
		body = remainder
	}

	persona.Prompt = strings.TrimSpace(string(body))
	return persona, nil
}

func startsWithNewline(b []byte) bool {
	return bytes.HasPrefix(b, []byte("\n")) || bytes.HasPrefix(b, []byte("\r\n"))
}

func cutFrontmatter(rest []byte) ([]byte, []byte, bool) {
	lines := bytes.SplitAfter(rest, []byte("\n"))
	offset := 0
	for i, line := range lines {
		if i > 0 && bytes.Equal(bytes.TrimRight(line, "\r\n"), frontmatterDelimiter) {
			return rest[:offset], rest[offset+len(line):], true
		}
		offset += len(line)
	}
	return nil, nil, false
}
