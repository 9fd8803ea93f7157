package prefabs

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// files holds the shipped prefabs. A copy under Dir() on disk wins so specs
// and scripts can be edited without a rebuild.
//
//go:embed *.yaml scripts/*.tengo
var files embed.FS

// Dir is the on-disk directory that overrides the embedded prefabs.
func Dir() string {
	return "prefabs"
}

// Load reads a YAML prefab such as "player.yaml".
func Load(name string) ([]byte, error) {
	return read(cleanPrefabPath(name))
}

// LoadScript reads a tengo script by name; the extension is optional.
func LoadScript(name string) ([]byte, error) {
	return read(cleanScriptPath(name))
}

func read(rel string) ([]byte, error) {
	if rel == "" {
		return nil, fmt.Errorf("prefabs: empty name")
	}
	if data, err := os.ReadFile(filepath.Join(Dir(), filepath.FromSlash(rel))); err == nil {
		return data, nil
	}
	return files.ReadFile(rel)
}

// cleanPrefabPath turns a name into a path relative to Dir().
func cleanPrefabPath(name string) string {
	if name == "" {
		return ""
	}
	s := filepath.ToSlash(filepath.Clean(name))
	return strings.TrimPrefix(s, Dir()+"/")
}

func cleanScriptPath(name string) string {
	s := cleanPrefabPath(name)
	if s == "" {
		return ""
	}
	s = strings.TrimPrefix(s, "scripts/")
	if filepath.Ext(s) != ".tengo" {
		s += ".tengo"
	}
	return "scripts/" + s
}
