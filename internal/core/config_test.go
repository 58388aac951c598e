package core

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xcbolt/snackbar/internal/snackbar"
)

func TestEnsureProjectDirsCreatesGitignore(t *testing.T) {
	root := t.TempDir()

	if err := EnsureProjectDirs(root); err != nil {
		t.Fatalf("EnsureProjectDirs: %v", err)
	}

	path := filepath.Join(root, ".snackbar", ".gitignore")
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	if !strings.Contains(string(b), "*.log") {
		t.Fatalf("missing log entry: %q", string(b))
	}
}

func TestEnsureProjectDirsAppendsMissingGitignoreEntries(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".snackbar")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir .snackbar: %v", err)
	}

	path := filepath.Join(dir, ".gitignore")
	if err := os.WriteFile(path, []byte("# keep"), 0o644); err != nil {
		t.Fatalf("write .gitignore: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := EnsureProjectDirs(root); err != nil {
			t.Fatalf("EnsureProjectDirs: %v", err)
		}
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read .gitignore: %v", err)
	}
	content := string(b)
	if !strings.HasPrefix(content, "# keep\n") {
		t.Fatalf("existing content not preserved: %q", content)
	}
	if strings.Count(content, "*.log") != 1 {
		t.Fatalf("unexpected log entries: %q", content)
	}
}

func TestLoadConfigDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir(), "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bar.AnimationMs != 500 || cfg.Bar.AutoHideMs != 5000 {
		t.Fatalf("unexpected defaults: %+v", cfg.Bar)
	}
	if cfg.Bar.Background != "#EA333333" {
		t.Fatalf("background = %q", cfg.Bar.Background)
	}
}

func TestSaveAndLoadRoundTripAllFormats(t *testing.T) {
	for _, name := range []string{"config.json", "config.toml", "config.yaml"} {
		t.Run(name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, ".snackbar", name)

			alpha := 0x80
			cfg := DefaultConfig()
			cfg.Bar.AnimationMs = 300
			cfg.Bar.AutoHideMs = 0
			cfg.Bar.Alpha = &alpha
			cfg.Bar.Easing = "spring"
			cfg.TUI.Mouse = false

			if err := SaveConfig(root, path, cfg); err != nil {
				t.Fatalf("SaveConfig: %v", err)
			}
			got, err := LoadConfig(root, path)
			if err != nil {
				t.Fatalf("LoadConfig: %v", err)
			}
			if got.Bar.AnimationMs != 300 || got.Bar.AutoHideMs != 0 {
				t.Fatalf("bar timings not preserved: %+v", got.Bar)
			}
			if got.Bar.Alpha == nil || *got.Bar.Alpha != 0x80 {
				t.Fatalf("alpha not preserved: %v", got.Bar.Alpha)
			}
			if got.Bar.Easing != "spring" || got.TUI.Mouse {
				t.Fatalf("unexpected config: %+v", got)
			}
		})
	}
}

func TestConfigPathPrefersExistingAlternateFormat(t *testing.T) {
	root := t.TempDir()
	if got := ConfigPath(root); filepath.Base(got) != "config.json" {
		t.Fatalf("default path = %q", got)
	}
	if err := EnsureProjectDirs(root); err != nil {
		t.Fatalf("EnsureProjectDirs: %v", err)
	}
	toml := filepath.Join(root, ".snackbar", "config.toml")
	if err := os.WriteFile(toml, []byte("version = 1\n"), 0o644); err != nil {
		t.Fatalf("write toml: %v", err)
	}
	if got := ConfigPath(root); got != toml {
		t.Fatalf("path = %q, want %q", got, toml)
	}
}

func TestLoadConfigKeepsDefaultsForMissingKeys(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "custom.toml")
	content := "version = 1\n\n[bar]\nanimation_ms = 900\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(root, path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bar.AnimationMs != 900 {
		t.Fatalf("animation = %d", cfg.Bar.AnimationMs)
	}
	if cfg.Bar.AutoHideMs != 5000 {
		t.Fatalf("auto-hide default lost: %d", cfg.Bar.AutoHideMs)
	}
}

func TestLoadConfigVersionMismatch(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.json")
	if err := os.WriteFile(path, []byte(`{"version": 7}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := LoadConfig(root, path)
	var verr ConfigVersionError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ConfigVersionError, got %v", err)
	}
	if verr.Got != 7 || verr.Want != ConfigVersion {
		t.Fatalf("unexpected version error: %+v", verr)
	}
}

func TestLoadConfigRejectsUnknownExtension(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "config.ini")
	if err := os.WriteFile(path, []byte("version=1"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(root, path); err == nil {
		t.Fatalf("expected error for .ini config")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	alpha := 300
	cfg := DefaultConfig()
	cfg.Bar.AnimationMs = -1
	cfg.Bar.Alpha = &alpha
	cfg.Bar.Background = "blue"
	cfg.Bar.Easing = "bounce"
	cfg.Bar.Orientation = "diagonal"
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	for _, want := range []string{"animationMs", "alpha", "background", "easing", "orientation", "log.level"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("missing %q in %v", want, err)
		}
	}
	if !errors.Is(err, snackbar.ErrInvalidConfiguration) {
		t.Fatalf("orientation error should wrap ErrInvalidConfiguration: %v", err)
	}
}

func TestBarConfigRequest(t *testing.T) {
	alpha := 0x40
	b := DefaultConfig().Bar
	b.AnimationMs = 300
	b.Background = "#112233"
	b.Alpha = &alpha

	req, err := b.Request("")
	if err != nil {
		t.Fatalf("Request: %v", err)
	}
	if req.Message != "Saved" {
		t.Fatalf("message = %q", req.Message)
	}
	if req.Background != snackbar.Color(0x40112233) {
		t.Fatalf("background = %s", req.Background)
	}
	if req.EffectiveDismissDuration() != 100*time.Millisecond {
		t.Fatalf("dismiss = %s", req.EffectiveDismissDuration())
	}
	if req.Easing == nil || req.DismissEasing == nil {
		t.Fatalf("easings not resolved")
	}
}

func TestHorizontalOrientationLoadsButCannotBuildBar(t *testing.T) {
	b := DefaultConfig().Bar
	b.Orientation = "horizontal"
	o, err := b.BarOrientation()
	if err != nil {
		t.Fatalf("BarOrientation: %v", err)
	}
	if o != snackbar.Horizontal {
		t.Fatalf("orientation = %s", o)
	}
}
