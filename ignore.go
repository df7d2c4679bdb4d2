package resumedb

import (
	"path/filepath"
	"strings"
)

// IgnoreRules decides which walked files are left out of a scan.
type IgnoreRules struct {
	// Paths lists files to ignore. Entries are compared after being made
	// absolute and cleaned. Relative entries resolve against the working
	// directory; config.Load first rebases them onto the config file's directory.
	Paths []string `yaml:"paths"`

	// Names lists case-insensitive substrings matched against the base name,
	// e.g. "cover letter".
	Names []string `yaml:"names"`
}

// Match reports whether path should be ignored.
func (r IgnoreRules) Match(path string) bool {
	if len(r.Paths) == 0 && len(r.Names) == 0 {
		return false
	}

	abs := normalizePath(path)
	for _, p := range r.Paths {
		if normalizePath(p) == abs {
			return true
		}
	}

	base := strings.ToLower(filepath.Base(path))
	for _, name := range r.Names {
		if name != "" && strings.Contains(base, strings.ToLower(name)) {
			return true
		}
	}
	return false
}

func normalizePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}
