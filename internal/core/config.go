package core

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/xcbolt/snackbar/internal/snackbar"
)

const ConfigVersion = 1

const configDirName = ".snackbar"

type ConfigVersionError struct {
	Path string
	Got  int
	Want int
}

func (e ConfigVersionError) Error() string {
	return fmt.Sprintf("config version mismatch for %s: got v%d, expected v%d (run `snackbar init` to regenerate config)", e.Path, e.Got, e.Want)
}

// BarConfig holds the defaults every show request starts from.
type BarConfig struct {
	Message     string `json:"message,omitempty" toml:"message" yaml:"message,omitempty"`
	AnimationMs int    `json:"animationMs" toml:"animation_ms" yaml:"animationMs"`
	// AutoHideMs <= 0 disables auto-hide.
	AutoHideMs int `json:"autoHideMs" toml:"auto_hide_ms" yaml:"autoHideMs"`
	// DismissMs <= 0 derives the dismiss duration from AnimationMs.
	DismissMs int `json:"dismissMs,omitempty" toml:"dismiss_ms" yaml:"dismissMs,omitempty"`

	Background string `json:"background,omitempty" toml:"background" yaml:"background,omitempty"`
	// Alpha, when set, replaces the alpha channel of Background.
	Alpha *int `json:"alpha,omitempty" toml:"alpha,omitempty" yaml:"alpha,omitempty"`

	Easing        string `json:"easing,omitempty" toml:"easing" yaml:"easing,omitempty"`
	DismissEasing string `json:"dismissEasing,omitempty" toml:"dismiss_easing" yaml:"dismissEasing,omitempty"`

	Orientation string `json:"orientation,omitempty" toml:"orientation" yaml:"orientation,omitempty"`
}

type TUIConfig struct {
	Mouse    bool `json:"mouse" toml:"mouse" yaml:"mouse"`
	ShowHelp bool `json:"showHelp" toml:"show_help" yaml:"showHelp"`
}

type LogConfig struct {
	Level string `json:"level,omitempty" toml:"level" yaml:"level,omitempty"`
	// File receives logs in TUI mode. Relative paths resolve against the
	// project's .snackbar directory.
	File string `json:"file,omitempty" toml:"file" yaml:"file,omitempty"`
}

type Config struct {
	Version int `json:"version" toml:"version" yaml:"version"`

	Bar BarConfig `json:"bar" toml:"bar" yaml:"bar"`
	TUI TUIConfig `json:"tui" toml:"tui" yaml:"tui"`
	Log LogConfig `json:"log" toml:"log" yaml:"log"`
}

func DefaultConfig() Config {
	return Config{
		Version: ConfigVersion,
		Bar: BarConfig{
			Message:       "Saved",
			AnimationMs:   int(snackbar.DefaultAnimationDuration / time.Millisecond),
			AutoHideMs:    int(snackbar.DefaultAutoHideDelay / time.Millisecond),
			Background:    snackbar.DefaultBackground.String(),
			Easing:        "decelerate",
			DismissEasing: "accelerate",
			Orientation:   snackbar.Vertical.String(),
		},
		TUI: TUIConfig{Mouse: true, ShowHelp: true},
		Log: LogConfig{Level: "info", File: "tui.log"},
	}
}

// Validate checks every value that would otherwise fail later, when the bar
// is built or a request is shown.
func (c Config) Validate() error {
	var errs []error
	if c.Bar.AnimationMs < 0 {
		errs = append(errs, fmt.Errorf("bar.animationMs must be >= 0, got %d", c.Bar.AnimationMs))
	}
	if c.Bar.Alpha != nil && (*c.Bar.Alpha < 0 || *c.Bar.Alpha > 255) {
		errs = append(errs, fmt.Errorf("bar.alpha must be within 0..255, got %d", *c.Bar.Alpha))
	}
	if c.Bar.Background != "" {
		if _, err := snackbar.ParseColor(c.Bar.Background); err != nil {
			errs = append(errs, fmt.Errorf("bar.background: %w", err))
		}
	}
	if _, err := snackbar.EasingByName(c.Bar.Easing); err != nil {
		errs = append(errs, fmt.Errorf("bar.easing: %w", err))
	}
	if _, err := snackbar.EasingByName(c.Bar.DismissEasing); err != nil {
		errs = append(errs, fmt.Errorf("bar.dismissEasing: %w", err))
	}
	if _, err := snackbar.ParseOrientation(c.Bar.Orientation); err != nil {
		errs = append(errs, fmt.Errorf("bar.orientation: %w", err))
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}

// Request builds a show request for msg from the bar defaults. An empty msg
// uses the configured message.
func (b BarConfig) Request(msg string) (snackbar.ShowRequest, error) {
	if msg == "" {
		msg = b.Message
	}
	req := snackbar.NewRequest(msg)
	req.AnimationDuration = time.Duration(b.AnimationMs) * time.Millisecond
	req.AutoHideDelay = time.Duration(b.AutoHideMs) * time.Millisecond
	req.DismissDuration = time.Duration(b.DismissMs) * time.Millisecond

	if b.Background != "" {
		c, err := snackbar.ParseColor(b.Background)
		if err != nil {
			return req, err
		}
		req.Background = c
	}
	if b.Alpha != nil {
		req.Background = snackbar.WithAlpha(req.Background, *b.Alpha)
	}

	var err error
	if req.Easing, err = snackbar.EasingByName(b.Easing); err != nil {
		return req, err
	}
	if req.DismissEasing, err = snackbar.EasingByName(b.DismissEasing); err != nil {
		return req, err
	}
	return req, nil
}

// BarOrientation parses the configured orientation. Unknown names fail with
// snackbar.ErrInvalidConfiguration.
func (b BarConfig) BarOrientation() (snackbar.Orientation, error) {
	return snackbar.ParseOrientation(b.Orientation)
}

func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, configDirName)
}

// ConfigPath returns the project's config file. An existing TOML or YAML
// file is preferred over the JSON default only when no JSON file exists.
func ConfigPath(projectRoot string) string {
	dir := ProjectDir(projectRoot)
	jsonPath := filepath.Join(dir, "config.json")
	if _, err := os.Stat(jsonPath); err == nil {
		return jsonPath
	}
	for _, name := range []string{"config.toml", "config.yaml", "config.yml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return jsonPath
}

func EnsureProjectDirs(projectRoot string) error {
	dir := ProjectDir(projectRoot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return ensureGitignore(dir)
}

func ensureGitignore(dir string) error {
	path := filepath.Join(dir, ".gitignore")
	entries := []string{
		"*.log",
		"*.timeline.json",
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			content := strings.Join(entries, "\n") + "\n"
			return os.WriteFile(path, []byte(content), 0o644)
		}
		return err
	}

	existing := string(b)
	missing := []string{}
	for _, entry := range entries {
		if !hasGitignoreLine(existing, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		existing += "\n"
	}
	existing += strings.Join(missing, "\n") + "\n"
	return os.WriteFile(path, []byte(existing), 0o644)
}

func hasGitignoreLine(content string, line string) bool {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == line {
			return true
		}
	}
	return false
}

type configFormat int

const (
	formatJSON configFormat = iota
	formatTOML
	formatYAML
)

func formatFor(path string) (configFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return formatJSON, nil
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("unsupported config format %q (use .json, .toml, .yaml)", filepath.Ext(path))
	}
}

func LoadConfig(projectRoot string, overridePath string) (Config, error) {
	cfg := DefaultConfig()

	path := overridePath
	if path == "" {
		path = ConfigPath(projectRoot)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := decodeConfig(path, b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Version != ConfigVersion {
		return cfg, ConfigVersionError{Path: path, Got: cfg.Version, Want: ConfigVersion}
	}
	if cfg.Bar.Orientation == "" {
		cfg.Bar.Orientation = snackbar.Vertical.String()
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func SaveConfig(projectRoot string, overridePath string, cfg Config) error {
	if err := EnsureProjectDirs(projectRoot); err != nil {
		return err
	}
	path := overridePath
	if path == "" {
		path = ConfigPath(projectRoot)
	}
	cfg.Version = ConfigVersion
	b, err := encodeConfig(path, cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func decodeConfig(path string, b []byte, cfg *Config) error {
	format, err := formatFor(path)
	if err != nil {
		return err
	}
	switch format {
	case formatTOML:
		return toml.Unmarshal(b, cfg)
	case formatYAML:
		return yaml.Unmarshal(b, cfg)
	default:
		return json.Unmarshal(b, cfg)
	}
}

func encodeConfig(path string, cfg Config) ([]byte, error) {
	format, err := formatFor(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case formatTOML:
		return toml.Marshal(cfg)
	case formatYAML:
		return yaml.Marshal(cfg)
	default:
		b, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}
