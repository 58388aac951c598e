package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/util"
)

func TestCleanProjectRemovesArtifactsOnly(t *testing.T) {
	root := t.TempDir()
	if err := core.SaveConfig(root, "", core.DefaultConfig()); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	dir := core.ProjectDir(root)
	for _, name := range []string{"tui.log", "run.timeline.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	removed, err := cleanProject(root, false)
	if err != nil {
		t.Fatalf("cleanProject: %v", err)
	}
	if len(removed) != 2 {
		t.Fatalf("removed = %v", removed)
	}
	if !util.Exists(filepath.Join(dir, "config.json")) {
		t.Fatalf("config should survive a plain clean")
	}
	if util.Exists(filepath.Join(dir, "tui.log")) {
		t.Fatalf("log should be removed")
	}
}

func TestCleanProjectAll(t *testing.T) {
	root := t.TempDir()
	if err := core.EnsureProjectDirs(root); err != nil {
		t.Fatalf("EnsureProjectDirs: %v", err)
	}
	removed, err := cleanProject(root, true)
	if err != nil {
		t.Fatalf("cleanProject: %v", err)
	}
	if len(removed) != 1 || util.Exists(core.ProjectDir(root)) {
		t.Fatalf("project dir not removed: %v", removed)
	}

	removed, err = cleanProject(root, true)
	if err != nil || len(removed) != 0 {
		t.Fatalf("second clean = %v, %v", removed, err)
	}
}
