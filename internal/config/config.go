package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	KeyPersonasDir         = "personas.dir"
	KeyStatePath           = "state.path"
	KeyTodoDBPath          = "todo.db_path"
	KeyTodoEnforcerEnabled = "todo_enforcer.enabled"
	KeyWorkspaceDir        = "workspace.dir"
	KeyCollectorSessionTTL = "collector.session_ttl"
	KeyCollectorMaxSession = "collector.max_sessions"

	EnvPrefix = "OMOC"

	baseDir        = ".openclaw/oh-my-openclaw"
	configFileName = "config.toml"
	configDirMode  = 0o700
	configFileMode = 0o600
)

// Settings is the typed view of the loaded configuration.
type Settings struct {
	PersonasDir         string
	StatePath           string
	TodoDBPath          string
	TodoEnforcerEnabled bool
	WorkspaceDir        string
	SessionTTL          time.Duration
	MaxSessions         int
}

// Load reads config.toml from the oh-my-openclaw directory under homeDir.
// A missing file is not an error; defaults and OMOC_* environment variables
// still apply.
func Load(homeDir string) (*viper.Viper, error) {
	if strings.TrimSpace(homeDir) == "" {
		return nil, errors.New("home directory is empty")
	}

	cfg := viper.New()
	setDefaults(cfg, homeDir)

	cfg.SetConfigFile(Path(homeDir))
	cfg.SetConfigType("toml")
	cfg.SetEnvPrefix(EnvPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	if err := cfg.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config %q: %w", Path(homeDir), err)
		}
	}

	return cfg, nil
}

func Path(homeDir string) string {
	return filepath.Join(homeDir, baseDir, configFileName)
}

func Dir(homeDir string) string {
	return filepath.Join(homeDir, baseDir)
}

func setDefaults(cfg *viper.Viper, homeDir string) {
	dir := Dir(homeDir)
	cfg.SetDefault(KeyPersonasDir, filepath.Join(dir, "personas"))
	cfg.SetDefault(KeyStatePath, filepath.Join(dir, "state.toml"))
	cfg.SetDefault(KeyTodoDBPath, filepath.Join(dir, "todos.db"))
	cfg.SetDefault(KeyTodoEnforcerEnabled, true)
	cfg.SetDefault(KeyWorkspaceDir, "")
	cfg.SetDefault(KeyCollectorSessionTTL, "30m")
	cfg.SetDefault(KeyCollectorMaxSession, 100)
}

func Resolve(cfg *viper.Viper, homeDir string) (Settings, error) {
	settings := Settings{
		PersonasDir:         expandHome(cfg.GetString(KeyPersonasDir), homeDir),
		StatePath:           expandHome(cfg.GetString(KeyStatePath), homeDir),
		TodoDBPath:          expandHome(cfg.GetString(KeyTodoDBPath), homeDir),
		TodoEnforcerEnabled: cfg.GetBool(KeyTodoEnforcerEnabled),
		WorkspaceDir:        expandHome(cfg.GetString(KeyWorkspaceDir), homeDir),
		SessionTTL:          cfg.GetDuration(KeyCollectorSessionTTL),
		MaxSessions:         cfg.GetInt(KeyCollectorMaxSession),
	}

	if settings.SessionTTL <= 0 {
		return Settings{}, fmt.Errorf("invalid %s %q", KeyCollectorSessionTTL, cfg.GetString(KeyCollectorSessionTTL))
	}
	if settings.MaxSessions <= 0 {
		return Settings{}, fmt.Errorf("invalid %s %d", KeyCollectorMaxSession, settings.MaxSessions)
	}

	return settings, nil
}

type fileSchema struct {
	Personas     personasSchema     `toml:"personas"`
	State        stateSchema        `toml:"state"`
	Todo         todoSchema         `toml:"todo"`
	TodoEnforcer todoEnforcerSchema `toml:"todo_enforcer"`
	Collector    collectorSchema    `toml:"collector"`
}

type personasSchema struct {
	Dir string `toml:"dir"`
}

type stateSchema struct {
	Path string `toml:"path"`
}

type todoSchema struct {
	DBPath string `toml:"db_path"`
}

type todoEnforcerSchema struct {
	Enabled bool `toml:"enabled"`
}

type collectorSchema struct {
	SessionTTL  string `toml:"session_ttl"`
	MaxSessions int    `toml:"max_sessions"`
}

// WriteDefault writes a config.toml populated with the defaults. It returns
// false without touching the file when one exists and overwrite is unset.
func WriteDefault(homeDir string, overwrite bool) (bool, error) {
	path := Path(homeDir)
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return false, nil
		}
	}

	cfg := viper.New()
	setDefaults(cfg, homeDir)
	schema := fileSchema{
		Personas:     personasSchema{Dir: cfg.GetString(KeyPersonasDir)},
		State:        stateSchema{Path: cfg.GetString(KeyStatePath)},
		Todo:         todoSchema{DBPath: cfg.GetString(KeyTodoDBPath)},
		TodoEnforcer: todoEnforcerSchema{Enabled: cfg.GetBool(KeyTodoEnforcerEnabled)},
		Collector: collectorSchema{
			SessionTTL:  cfg.GetString(KeyCollectorSessionTTL),
			MaxSessions: cfg.GetInt(KeyCollectorMaxSession),
		},
	}

	data, err := toml.Marshal(schema)
	if err != nil {
		return false, fmt.Errorf("encode default config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), configDirMode); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, configFileMode); err != nil {
		return false, fmt.Errorf("write config %q: %w", path, err)
	}

	return true, nil
}

func expandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~/"))
	}
	return path
}
