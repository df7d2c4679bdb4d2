// Package config reads the optional resumedb YAML configuration file.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/resumedb"
	"gopkg.in/yaml.v3"
)

// Config holds settings that may also be given as flags.
// Flags take precedence over values loaded from a file.
type Config struct {
	DB             string               `yaml:"db"`
	Soffice        string               `yaml:"soffice"`
	ConvertTimeout time.Duration        `yaml:"convert_timeout"`
	Ignore         resumedb.IgnoreRules `yaml:"ignore"`
}

// Load reads the YAML file at path. An empty path returns an empty Config.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, resumedb.WrapError(resumedb.EINVALID, err, "read config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, resumedb.WrapError(resumedb.EINVALID, err, "parse config %s", path)
	}

	// Relative ignore paths are relative to the config file.
	dir := filepath.Dir(path)
	for i, p := range cfg.Ignore.Paths {
		if p != "" && !filepath.IsAbs(p) && !strings.HasPrefix(p, "~") {
			cfg.Ignore.Paths[i] = filepath.Join(dir, p)
		}
	}

	return cfg, nil
}
