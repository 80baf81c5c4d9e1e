// Package config loads tryexpand settings from .tryexpand.yaml.
//
// The file is decoded strictly (unknown keys are errors) on top of the
// defaults, then checked against the CUE schema in schema.cue.
package config

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/zacklukem/try-utils/internal/expand"
)

//go:embed schema.cue
var schemaCUE string

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = ".tryexpand.yaml"

// Config holds tryexpand settings.
type Config struct {
	BuildTag     string   `yaml:"build_tag" json:"build_tag"`
	SourceSuffix string   `yaml:"source_suffix" json:"source_suffix"`
	TempPrefix   string   `yaml:"temp_prefix" json:"temp_prefix"`
	Exclude      []string `yaml:"exclude" json:"exclude"`
	Cache        string   `yaml:"cache" json:"cache"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		BuildTag:     expand.DefaultBuildTag,
		SourceSuffix: expand.DefaultSourceSuffix,
		TempPrefix:   expand.DefaultTempPrefix,
		Exclude:      []string{"vendor", "testdata"},
	}
}

// Load reads the config file at path.
// If path is empty, DefaultFile is tried and the defaults are returned
// when it does not exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// A relative cache path is relative to the config file.
	if cfg.Cache != "" && !filepath.IsAbs(cfg.Cache) {
		cfg.Cache = filepath.Join(filepath.Dir(path), cfg.Cache)
	}
	return cfg, nil
}

// Parse decodes YAML config data over the defaults and validates it.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings against the CUE schema.
func (c *Config) Validate() error {
	if c.Exclude == nil {
		c.Exclude = []string{}
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	v := schema.LookupPath(cue.ParsePath("#Config")).Unify(ctx.Encode(c))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ExpandOptions returns the expansion settings.
func (c *Config) ExpandOptions() expand.Options {
	return expand.Options{
		BuildTag:   c.BuildTag,
		TempPrefix: c.TempPrefix,
	}
}

// Fingerprint identifies the settings and expander version that affect
// expansion output. Outputs cached under a different fingerprint are
// expanded again.
func (c *Config) Fingerprint() string {
	return c.FingerprintFor(expand.Version)
}

// FingerprintFor is Fingerprint for the given expander version.
func (c *Config) FingerprintFor(version string) string {
	h := sha256.New()
	h.Write([]byte("tryexpand/config/v1"))
	for _, field := range []string{version, c.BuildTag, c.SourceSuffix, c.TempPrefix} {
		h.Write([]byte{0x00})
		h.Write([]byte(field))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Excluded reports whether the directory named name is skipped during
// discovery. Like the go tool, directories starting with "." or "_" are
// always skipped.
func (c *Config) Excluded(name string) bool {
	if len(name) > 1 && (name[0] == '.' || name[0] == '_') {
		return true
	}
	for _, pattern := range c.Exclude {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
