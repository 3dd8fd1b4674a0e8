// Package content owns the data side of the locomotion core: embedded YAML
// specs and behavior scripts, their typed loaders, and the hot-reload
// watcher. Files on disk under content/ shadow the embedded copies so specs
// can be edited live.
package content

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed specs/*.yaml
var specsFS embed.FS

//go:embed scripts/*.tengo
var scriptsFS embed.FS

// Load reads a spec file, preferring a disk copy over the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

// LoadScript reads a behavior script, preferring a disk copy.
func LoadScript(name string) ([]byte, error) {
	clean := cleanScriptPath(name)
	if data, err := os.ReadFile(diskPath(clean)); err == nil {
		return data, nil
	}
	return scriptsFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "content/"); ok {
		s = after
	}
	if !strings.HasPrefix(s, "specs/") {
		s = fmt.Sprintf("specs/%s", s)
	}
	return s
}

func cleanScriptPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "content/"); ok {
		s = after
	}
	if !strings.HasPrefix(s, "scripts/") {
		s = fmt.Sprintf("scripts/%s", s)
	}
	return s
}

func diskPath(clean string) string {
	return filepath.Join("content", filepath.FromSlash(clean))
}
