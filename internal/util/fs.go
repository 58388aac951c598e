package util

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// configNames are the files that mark a directory as a snackbar project.
var configNames = []string{"config.json", "config.toml", "config.yaml", "config.yml"}

func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func FindProjectRoot(start string) (string, error) {
	start, err := filepath.Abs(start)
	if err != nil {
		return "", err
	}
	cur := start
	for {
		if looksLikeRoot(cur) {
			return cur, nil
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return start, nil
		}
		cur = parent
	}
}

func looksLikeRoot(dir string) bool {
	for _, name := range configNames {
		if Exists(filepath.Join(dir, ".snackbar", name)) {
			return true
		}
	}
	return Exists(filepath.Join(dir, ".git"))
}

// ListFilesWithSuffix returns the regular files in dir ending in suffix,
// sorted by name. A missing dir yields no files.
func ListFilesWithSuffix(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	out := []string{}
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), suffix) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

func RemoveAllIfExists(path string) error {
	if !Exists(path) {
		return nil
	}
	return os.RemoveAll(path)
}
