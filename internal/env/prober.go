// internal/env/prober.go
package env

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/afero"
)

// searchDirs are the installation-relative locations tried when a
// reference file is not found at its given path.
var searchDirs = []string{
	"/usr/share/rnapipe/references",
	"/usr/local/share/rnapipe/references",
}

// Prober answers "does this file exist" and "is this executable on the
// search path". Probes are synchronous and never cached; absence is a
// normal outcome reported by the empty-string sentinel, not an error.
type Prober struct {
	Fs       afero.Fs
	LookPath func(string) (string, error)

	// SearchDirs overrides the default reference search locations.
	SearchDirs []string
}

// New returns a Prober bound to the real filesystem and PATH.
func New() *Prober {
	return &Prober{Fs: afero.NewOsFs(), LookPath: exec.LookPath}
}

// FindFile returns the absolute path of path if it names an existing
// regular file, trying the path itself and then each search directory.
// Returns "" when the file cannot be located.
func (p *Prober) FindFile(path string) string {
	if path == "" {
		return ""
	}
	dirs := p.SearchDirs
	if dirs == nil {
		dirs = searchDirs
	}
	candidates := []string{path}
	if !filepath.IsAbs(path) {
		for _, d := range dirs {
			candidates = append(candidates, filepath.Join(d, path))
		}
	}
	for _, c := range candidates {
		info, err := p.Fs.Stat(c)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		abs, err := filepath.Abs(c)
		if err != nil {
			return c
		}
		return abs
	}
	return ""
}

// FindExecutable resolves name against the process search path.
// Returns "" when no executable can be located.
func (p *Prober) FindExecutable(name string) string {
	if name == "" {
		return ""
	}
	look := p.LookPath
	if look == nil {
		look = exec.LookPath
	}
	path, err := look(name)
	if err != nil {
		return ""
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Setting returns the named environment variable, empty when unset.
// Kept here so every environment probe goes through one package.
func Setting(name string) string { return os.Getenv(name) }
