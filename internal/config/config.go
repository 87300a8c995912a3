// Package config provides configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formview/pkg/projects"
	"github.com/goliatone/go-formview/pkg/validation"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "FORMVIEW_"

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Logging   LoggingConfig   `yaml:"log"`
	Templates TemplatesConfig `yaml:"templates"`
	Form      FormConfig      `yaml:"form"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// TemplatesConfig points at an alternate template directory. When Dir is
// empty the bundled templates are used.
type TemplatesConfig struct {
	Dir      string `yaml:"dir"`
	Sanitize *bool  `yaml:"sanitize"`
	Title    string `yaml:"title"`
}

// SanitizeEnabled reports whether loaded markup is sanitised. Defaults to
// true for external directories and false for the bundled templates.
func (t TemplatesConfig) SanitizeEnabled() bool {
	if t.Sanitize != nil {
		return *t.Sanitize
	}
	return t.Dir != ""
}

// FormConfig configures the project form.
type FormConfig struct {
	Notice string      `yaml:"notice"`
	Rules  RulesConfig `yaml:"rules"`
}

// RulesConfig overrides the stock constraints per field. A field present in
// the file replaces the stock rule as written, so `title: {}` leaves the
// title unconstrained. Absent or null fields keep the stock rule.
type RulesConfig struct {
	Title       *validation.Rule `yaml:"title"`
	Description *validation.Rule `yaml:"description"`
	People      *validation.Rule `yaml:"people"`
}

// FormRules merges the overrides onto projects.DefaultRules.
func (r RulesConfig) FormRules() projects.FormRules {
	rules := projects.DefaultRules()
	if r.Title != nil {
		rules.Title = *r.Title
	}
	if r.Description != nil {
		rules.Description = *r.Description
	}
	if r.People != nil {
		rules.People = *r.People
	}
	return rules
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	setDefaults(cfg)
	return cfg
}

// Load reads configuration from a YAML file. An empty path or a missing
// file yields the defaults, still subject to environment overrides.
func Load(path string) (*Config, error) {
	var cfg Config

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			data = []byte(os.ExpandEnv(string(data)))
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// applyEnvOverrides applies FORMVIEW_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(EnvPrefix + "SERVER_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.ShutdownTimeout = d
		}
	}

	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}

	if v := os.Getenv(EnvPrefix + "TEMPLATES_DIR"); v != "" {
		cfg.Templates.Dir = v
	}
	if v := os.Getenv(EnvPrefix + "TEMPLATES_SANITIZE"); v != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Templates.Sanitize = &b
		}
	}

	if v := os.Getenv(EnvPrefix + "FORM_NOTICE"); v != "" {
		cfg.Form.Notice = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 5 * time.Second
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Templates.Title == "" {
		cfg.Templates.Title = projects.DefaultTitle
	}

	if cfg.Form.Notice == "" {
		cfg.Form.Notice = projects.DefaultNotice
	}
}

func validate(cfg *Config) error {
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("log.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	rules := cfg.Form.Rules.FormRules()
	if err := checkLengths("form.rules.description", rules.Description); err != nil {
		return err
	}
	if err := checkLengths("form.rules.title", rules.Title); err != nil {
		return err
	}
	if err := checkBounds("form.rules.people", rules.People); err != nil {
		return err
	}

	if cfg.Templates.Dir != "" {
		info, err := os.Stat(cfg.Templates.Dir)
		if err != nil {
			return fmt.Errorf("templates.dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("templates.dir %q is not a directory", cfg.Templates.Dir)
		}
	}
	return nil
}

func checkLengths(name string, rule validation.Rule) error {
	if rule.MinLength != nil && *rule.MinLength < 0 {
		return fmt.Errorf("%s.minLength must not be negative", name)
	}
	if rule.MinLength != nil && rule.MaxLength != nil && *rule.MaxLength <= *rule.MinLength {
		return fmt.Errorf("%s.maxLength must be greater than minLength", name)
	}
	return nil
}

func checkBounds(name string, rule validation.Rule) error {
	if rule.Min != nil && rule.Max != nil && *rule.Max <= *rule.Min {
		return fmt.Errorf("%s.max must be greater than min", name)
	}
	return nil
}
