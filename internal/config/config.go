package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hpungsan/zotter/internal/storage"
)

// BaseDirName is the directory under the home directory holding config.json
// and exports. The note files themselves live directly in the home directory.
const BaseDirName = ".zotter"

// LogLevels lists the accepted log_level values.
var LogLevels = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Config holds application configuration.
type Config struct {
	// NotesFile is the active notes file. A leading "~" expands to the home directory.
	NotesFile string `json:"notes_file,omitempty" env:"ZOTTER_NOTES_FILE"`

	// TrashFile is the trash file. Must differ from NotesFile.
	TrashFile string `json:"trash_file,omitempty" env:"ZOTTER_TRASH_FILE"`

	// ExportDir is where export writes when no path is given.
	ExportDir string `json:"export_dir,omitempty" env:"ZOTTER_EXPORT_DIR"`

	// LogLevel is the zerolog level name for stderr logging.
	LogLevel string `json:"log_level,omitempty" env:"ZOTTER_LOG_LEVEL"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	DisabledTools []string `json:"disabled_tools,omitempty" env:"ZOTTER_DISABLED_TOOLS"`

	// DisabledTypes is a list of tool types ("note", "trash") to disable entirely.
	DisabledTypes []string `json:"disabled_types,omitempty" env:"ZOTTER_DISABLED_TYPES"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		NotesFile: filepath.Join("~", storage.DefaultNotesFile),
		TrashFile: filepath.Join("~", storage.DefaultTrashFile),
		ExportDir: filepath.Join("~", BaseDirName, "exports"),
		LogLevel:  "warn",
	}
}

// BaseDir returns the configuration directory for homeDir.
func BaseDir(homeDir string) string {
	return filepath.Join(homeDir, BaseDirName)
}

// Load builds the configuration for homeDir from defaults, the optional
// <homeDir>/.zotter/config.json and ZOTTER_* environment variables, in
// increasing precedence. The homeDir parameter allows tests to use t.TempDir().
func Load(homeDir string) (*Config, error) {
	return LoadEnv(homeDir, nil)
}

// LoadEnv is Load with an explicit environment. A nil environ reads the process environment.
func LoadEnv(homeDir string, environ map[string]string) (*Config, error) {
	file, err := loadFileRaw(filepath.Join(BaseDir(homeDir), "config.json"))
	if err != nil {
		return nil, err
	}

	fromEnv := &Config{}
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(fromEnv, opts); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}

	cfg := Merge(Merge(DefaultConfig(), file), fromEnv)
	cfg.expand(homeDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", configPath, err)
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{
		NotesFile: overlay.NotesFile,
		TrashFile: overlay.TrashFile,
		ExportDir: overlay.ExportDir,
		LogLevel:  overlay.LogLevel,
	}

	// Scalars: fill zero values from base
	_ = mergo.Merge(result, Config{
		NotesFile: base.NotesFile,
		TrashFile: base.TrashFile,
		ExportDir: base.ExportDir,
		LogLevel:  base.LogLevel,
	})

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)
	result.DisabledTypes = mergeStringSlice(base.DisabledTypes, overlay.DisabledTypes)

	return result
}

// Validate checks required paths and the log level.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.NotesFile, validation.Required),
		validation.Field(&c.TrashFile, validation.Required, validation.By(differentFrom(c.NotesFile))),
		validation.Field(&c.ExportDir, validation.Required),
		validation.Field(&c.LogLevel, validation.In(stringsToAny(LogLevels)...)),
	)
}

// Paths returns the resolved storage locations.
func (c *Config) Paths() storage.Paths {
	return storage.Paths{Notes: c.NotesFile, Trash: c.TrashFile}
}

func (c *Config) expand(homeDir string) {
	c.NotesFile = ExpandHome(c.NotesFile, homeDir)
	c.TrashFile = ExpandHome(c.TrashFile, homeDir)
	c.ExportDir = ExpandHome(c.ExportDir, homeDir)
}

// ExpandHome replaces a leading "~" path element with homeDir.
func ExpandHome(path, homeDir string) string {
	if path == "~" {
		return homeDir
	}
	if rest, ok := strings.CutPrefix(path, "~"+string(filepath.Separator)); ok {
		return filepath.Join(homeDir, rest)
	}
	if rest, ok := strings.CutPrefix(path, "~/"); ok {
		return filepath.Join(homeDir, rest)
	}
	return path
}

func differentFrom(other string) validation.RuleFunc {
	return func(value interface{}) error {
		s, _ := value.(string)
		if s != "" && filepath.Clean(s) == filepath.Clean(other) {
			return errors.New("must differ from notes_file")
		}
		return nil
	}
}

func stringsToAny(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
