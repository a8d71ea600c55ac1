// Package config loads the optional memodemo.yaml file and resolves
// defaults for the demo CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/memodemo/pkg/diagnostics"
)

// FileName is the configuration file looked up in a project directory.
const FileName = "memodemo.yaml"

// Defaults used when neither the file nor flags set a value.
const (
	DefaultCardTitle       = "カードタイトル"
	DefaultCardDescription = "説明文"
	DefaultLogLevel        = "info"
	DefaultWidth           = 60
)

// Config represents the optional memodemo.yaml configuration.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Card   CardConfig   `yaml:"card"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// CardConfig sets the content shown by both cards.
type CardConfig struct {
	Title       string `yaml:"title,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `yaml:"level,omitempty"`
}

// RenderConfig contains frame settings.
type RenderConfig struct {
	// Width is the frame width in terminal columns.
	Width int `yaml:"width,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root            string
	ModulePath      string
	AppName         string
	CardTitle       string
	CardDescription string
	LogLevel        string
	Width           int
}

// LoadOptional reads memodemo.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &cfg, nil
}

// Resolve loads memodemo.yaml from dir (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}
	return resolve(dir, cfg)
}

// ResolveFile loads the configuration at path, which must exist, and
// resolves defaults relative to its directory.
func ResolveFile(path string) (*Resolved, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	return resolve(filepath.Dir(path), cfg)
}

func resolve(dir string, cfg *Config) (*Resolved, error) {
	modPath := modulePath(dir)

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	title := cfg.Card.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultCardTitle
	}
	description := cfg.Card.Description
	if strings.TrimSpace(description) == "" {
		description = DefaultCardDescription
	}

	level := strings.TrimSpace(cfg.Log.Level)
	if level == "" {
		level = DefaultLogLevel
	}
	if _, err := diagnostics.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	width := cfg.Render.Width
	if width == 0 {
		width = DefaultWidth
	}
	if err := ValidateWidth(width); err != nil {
		return nil, fmt.Errorf("render.width: %w", err)
	}

	return &Resolved{
		Root:            dir,
		ModulePath:      modPath,
		AppName:         appName,
		CardTitle:       title,
		CardDescription: description,
		LogLevel:        level,
		Width:           width,
	}, nil
}

// ValidateWidth checks a frame width in columns. The card needs room for
// its border and padding around the title.
func ValidateWidth(width int) error {
	if width < 20 {
		return fmt.Errorf("width must be at least 20 columns (got %d)", width)
	}
	return nil
}

// FindProjectRoot walks up from the current directory to the first
// directory holding memodemo.yaml or go.mod. It returns the current
// directory when neither is found.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := start; ; {
		for _, name := range []string{FileName, "go.mod"} {
			if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

// modulePath returns the module path declared by dir/go.mod, or "" when
// there is none.
func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modulePath != "" {
		if modName, _, ok := module.SplitPathVersion(modulePath); ok {
			parts := strings.Split(modName, "/")
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "memodemo"
	}
	return base
}
