package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	appName        = "timemap"
	configFileName = "config.toml"
	envPrefix      = "TIMEMAP"
	fallbackEditor = "nvim"
	fallbackOpener = "xdg-open"
)

// DefaultConfig is written on first run. Every line is commented out so the
// built-in defaults apply until the user opts in.
const DefaultConfig = `# TimeMap Configuration
# Uncomment lines to override system defaults

# editor = "nvim"

[database]
# path = "~/.local/share/timemap.db"

[log]
# debug = false
# dir = "~/.local/share/timemap/logs"

[defaults]
# pdf = "zathura"
# md = "nvim"
# txt = "nvim"
# html = "firefox"
# jpg = "feh"
`

// Config represents the application configuration
type Config struct {
	Database  DatabaseConfig    `mapstructure:"database"`
	Log       LogConfig         `mapstructure:"log"`
	EditorCmd string            `mapstructure:"editor"`
	Openers   map[string]string `mapstructure:"defaults"`

	// File is the config file that was read
	File string `mapstructure:"-"`
}

// DatabaseConfig locates the store file
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the rotating log file
type LogConfig struct {
	Debug bool   `mapstructure:"debug"`
	Dir   string `mapstructure:"dir"`
}

// Load reads the config file (creating the default one if missing), then
// applies TIMEMAP_* environment overrides. An empty path selects DefaultPath.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	if err := ensureFile(path); err != nil {
		return nil, fmt.Errorf("failed to create config file: %w", err)
	}

	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetDefault("database.path", filepath.Join(dataDir, appName+".db"))
	v.SetDefault("log.debug", false)
	v.SetDefault("log.dir", filepath.Join(dataDir, appName, "logs"))
	v.SetDefault("editor", "")
	v.SetDefault("defaults", map[string]string{})

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = path
	cfg.Database.Path = expandHome(cfg.Database.Path)
	cfg.Log.Dir = expandHome(cfg.Log.Dir)

	return &cfg, nil
}

// Editor returns the preferred editor: config, then $EDITOR, then nvim
func (c *Config) Editor() string {
	if c.EditorCmd != "" {
		return c.EditorCmd
	}
	if env := os.Getenv("EDITOR"); env != "" {
		return env
	}
	return fallbackEditor
}

// OpenCommand returns the configured opener for the file's extension,
// or xdg-open when none is configured
func (c *Config) OpenCommand(path string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if cmd, ok := c.Openers[ext]; ok && cmd != "" {
		return cmd
	}
	return fallbackOpener
}

// DefaultPath returns $XDG_CONFIG_HOME/timemap/config.toml
// (~/.config/timemap/config.toml when unset)
func DefaultPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, appName, configFileName), nil
}

// DataDir returns $XDG_DATA_HOME (~/.local/share when unset)
func DataDir() (string, error) {
	if base := os.Getenv("XDG_DATA_HOME"); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}

func ensureFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(DefaultConfig), 0644)
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
