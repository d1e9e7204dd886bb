package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Storage backends.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
	StorageBadger = "badger"
)

var validate = validator.New()

// Config holds application configuration.
type Config struct {
	// Storage selects the record store: "sqlite" (default, persisted under the
	// base directory), "badger" (embedded key-value directory under the base
	// directory) or "memory" (lost when the process exits).
	Storage string `json:"storage,omitempty" validate:"oneof=sqlite memory badger"`

	// Bind is the address the HTTP server listens on.
	Bind string `json:"bind,omitempty"`

	// Port is the HTTP server port.
	Port int `json:"port,omitempty" validate:"gte=0,lte=65535"`

	// MaxValueChars rejects submitted strings longer than this many characters.
	// 0 means unlimited.
	MaxValueChars int `json:"max_value_chars,omitempty" validate:"gte=0"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty" validate:"gte=0"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty" validate:"gte=0"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`

	// LogJSON switches logging from console format to JSON.
	LogJSON bool `json:"log_json,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage:  StorageSQLite,
		Bind:     "0.0.0.0",
		Port:     3000,
		LogLevel: "info",
	}
}

// Load loads configuration from baseDir/config.json, then applies
// environment overrides (SIFT_STORAGE, SIFT_BIND, SIFT_PORT, SIFT_LOG_LEVEL).
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.sift.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFile(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	env, err := fromEnv()
	if err != nil {
		return nil, err
	}
	return Merge(cfg, env), nil
}

// Validate checks values that Merge cannot repair. The first failing field
// is reported by its JSON name.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	name := jsonName(fe.StructField())
	switch fe.Tag() {
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gte":
		return fmt.Errorf("%s must be at least %s", name, fe.Param())
	case "lte":
		return fmt.Errorf("%s must be at most %s", name, fe.Param())
	default:
		return fmt.Errorf("%s is invalid", name)
	}
}

// jsonName returns the json tag name for a Config field.
func jsonName(field string) string {
	f, ok := reflect.TypeOf(Config{}).FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "" {
		return field
	}
	return name
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
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// fromEnv reads overrides from the environment into a zero-valued config.
func fromEnv() (*Config, error) {
	cfg := &Config{
		Storage:  strings.TrimSpace(os.Getenv("SIFT_STORAGE")),
		Bind:     strings.TrimSpace(os.Getenv("SIFT_BIND")),
		LogLevel: strings.TrimSpace(os.Getenv("SIFT_LOG_LEVEL")),
	}
	if port := strings.TrimSpace(os.Getenv("SIFT_PORT")); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, errors.New("SIFT_PORT must be an integer")
		}
		cfg.Port = p
	}
	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	// Scalars: overlay wins if non-zero, else base
	result.Storage = firstNonEmpty(overlay.Storage, base.Storage)
	result.Bind = firstNonEmpty(overlay.Bind, base.Bind)
	result.LogLevel = firstNonEmpty(overlay.LogLevel, base.LogLevel)

	result.Port = overlay.Port
	if result.Port == 0 {
		result.Port = base.Port
	}

	result.MaxValueChars = overlay.MaxValueChars
	if result.MaxValueChars == 0 {
		result.MaxValueChars = base.MaxValueChars
	}

	result.DBMaxOpenConns = overlay.DBMaxOpenConns
	if result.DBMaxOpenConns == 0 {
		result.DBMaxOpenConns = base.DBMaxOpenConns
	}

	result.DBMaxIdleConns = overlay.DBMaxIdleConns
	if result.DBMaxIdleConns == 0 {
		result.DBMaxIdleConns = base.DBMaxIdleConns
	}

	// Booleans: overlay wins if true, else base
	result.LogJSON = base.LogJSON || overlay.LogJSON

	// Arrays: merge and deduplicate
	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string(nil), a...), b...) {
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
