// Package config loads the notepad's YAML configuration.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var defaultConfig []byte

const (
	appDir   = "notepad"
	fileName = "config.yaml"
)

const (
	DialogsAuto     = "auto"
	DialogsNative   = "native"
	DialogsTerminal = "terminal"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Hint         string `yaml:"hint"`
	Dialogs      string `yaml:"dialogs"`
	LineNumbers  bool   `yaml:"line_numbers"`
	WordWrap     bool   `yaml:"word_wrap"`
	TabWidth     int    `yaml:"tab_width"`
	HistoryLimit int    `yaml:"history_limit"`
	DefaultExt   string `yaml:"default_ext"`
	LogFile      string `yaml:"log_file"`
}

// Default returns the embedded configuration.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(defaultConfig, &c); err != nil {
		panic(fmt.Sprintf("embedded config: %v", err))
	}
	return c
}

// Dir returns $XDG_CONFIG_HOME/notepad, falling back to ~/.config/notepad.
func Dir() string {
	if base := os.Getenv("XDG_CONFIG_HOME"); base != "" {
		return filepath.Join(base, appDir)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", appDir)
	}
	return filepath.Join(home, ".config", appDir)
}

// Path returns NOTEPAD_CONFIG if set, otherwise the config.yaml inside Dir.
func Path() string {
	return getEnv("NOTEPAD_CONFIG", filepath.Join(Dir(), fileName))
}

// Load reads the config at path, first writing the embedded default there if
// the file does not exist. Environment overrides are applied on top.
func Load(path string) (Config, error) {
	if err := writeIfMissing(path); err != nil {
		return Config{}, err
	}
	c, err := read(path)
	if err != nil {
		return Config{}, err
	}
	c = applyEnv(c)
	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes data over the defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.Dialogs = strings.ToLower(strings.TrimSpace(c.Dialogs))
	return c, nil
}

func (c Config) Validate() error {
	switch c.Dialogs {
	case DialogsAuto, DialogsNative, DialogsTerminal:
	default:
		return fmt.Errorf("%w: dialogs must be auto, native or terminal, got %q", ErrInvalid, c.Dialogs)
	}
	if c.TabWidth < 1 || c.TabWidth > 16 {
		return fmt.Errorf("%w: tab_width must be between 1 and 16, got %d", ErrInvalid, c.TabWidth)
	}
	if c.HistoryLimit < -1 {
		return fmt.Errorf("%w: history_limit must be -1 or more, got %d", ErrInvalid, c.HistoryLimit)
	}
	if strings.ContainsAny(c.DefaultExt, `/\`) {
		return fmt.Errorf("%w: default_ext %q", ErrInvalid, c.DefaultExt)
	}
	return nil
}

func read(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func writeIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil || !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, defaultConfig, 0o644); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

func applyEnv(c Config) Config {
	c.Hint = getEnv("NOTEPAD_HINT", c.Hint)
	c.Dialogs = strings.ToLower(getEnv("NOTEPAD_DIALOGS", c.Dialogs))
	c.LogFile = getEnv("NOTEPAD_LOG_FILE", c.LogFile)
	c.LineNumbers = getEnvBool("NOTEPAD_LINE_NUMBERS", c.LineNumbers)
	c.WordWrap = getEnvBool("NOTEPAD_WORD_WRAP", c.WordWrap)
	c.TabWidth = getEnvInt("NOTEPAD_TAB_WIDTH", c.TabWidth)
	return c
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
