// Package config loads server settings from defaults, an optional YAML file
// and the environment, in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"gesturecraft/preset"
)

// Config is the full server configuration.
type Config struct {
	Port string `yaml:"port"`

	// Presets seeds every new workspace. The first entry becomes the
	// default, active preset.
	Presets []preset.Seed `yaml:"presets"`

	SaveDelay     time.Duration `yaml:"save_delay"`
	LoginDelay    time.Duration `yaml:"login_delay"`
	NoticeHistory int           `yaml:"notice_history"`

	Speech Speech `yaml:"speech"`
}

// Speech configures the text-to-speech program.
type Speech struct {
	Enabled bool     `yaml:"enabled"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Port:          "8080",
		Presets:       []preset.Seed{{Name: "Default", Description: "Everyday gestures"}},
		SaveDelay:     time.Second,
		LoginDelay:    1500 * time.Millisecond,
		NoticeHistory: 50,
		Speech:        Speech{Enabled: true, Command: "espeak"},
	}
}

// Load builds a Config. path may be empty, in which case only defaults and
// the environment apply. A path that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port is required"))
	}
	if len(c.Presets) == 0 {
		errs = append(errs, errors.New("at least one preset is required"))
	}
	seen := make(map[string]bool)
	for i, p := range c.Presets {
		name := strings.ToLower(strings.TrimSpace(p.Name))
		if name == "" {
			errs = append(errs, fmt.Errorf("presets[%d]: name is required", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Errorf("presets[%d]: duplicate name %q", i, p.Name))
		}
		seen[name] = true
	}
	if c.SaveDelay < 0 || c.LoginDelay < 0 {
		errs = append(errs, errors.New("delays must not be negative"))
	}
	if c.Speech.Enabled && c.Speech.Command == "" {
		errs = append(errs, errors.New("speech.command is required when speech is enabled"))
	}
	return errors.Join(errs...)
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		cfg.Port = v
	}
	if v, ok := lookup("GESTURECRAFT_SAVE_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GESTURECRAFT_SAVE_DELAY: %w", err)
		}
		cfg.SaveDelay = d
	}
	if v, ok := lookup("GESTURECRAFT_LOGIN_DELAY"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("GESTURECRAFT_LOGIN_DELAY: %w", err)
		}
		cfg.LoginDelay = d
	}
	if v, ok := lookup("GESTURECRAFT_SPEECH"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("GESTURECRAFT_SPEECH: %w", err)
		}
		cfg.Speech.Enabled = b
	}
	if v, ok := lookup("GESTURECRAFT_SPEECH_COMMAND"); ok && v != "" {
		cfg.Speech.Command = v
	}
	return nil
}
