package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/build/constraint"
	"go/token"
	"io"
	"maps"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hengadev/errsx"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"
)

// Config holds the settings for generating one package.
type Config struct {
	// Output is the generated file name, relative to the package directory.
	// Empty means <package>_tryfrom.gen.go.
	Output string `yaml:"output"`
	// ValuePackage is the import path of the runtime package.
	ValuePackage string `yaml:"value_package"`
	// Constructors enables the <Type>FromValue functions.
	Constructors bool `yaml:"constructors"`
	// Must enables MustToValue.
	Must bool `yaml:"must"`
	// BuildTags is an optional //go:build expression for the output file.
	BuildTags string `yaml:"build_tags"`
	// Types annotates types by name without touching their source.
	Types map[string]string `yaml:"types"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		ValuePackage: DefaultValuePackage,
		Constructors: true,
		Must:         true,
		Types:        make(map[string]string),
	}
}

// LoadConfig reads a YAML configuration file on top of the defaults. Keys
// the file leaves out keep their default values; unknown keys are errors.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if config.Types == nil {
		config.Types = make(map[string]string)
	}
	return config, nil
}

// Find loads the configuration for the package in dir. An explicit path
// must exist; otherwise DefaultConfigFile is used when present and the
// defaults when it is not.
func Find(dir, path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}
	path = filepath.Join(dir, DefaultConfigFile)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}

// SaveConfig writes the configuration as YAML.
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Types = maps.Clone(c.Types)
	if clone.Types == nil {
		clone.Types = make(map[string]string)
	}
	return &clone
}

// OutputFile returns the output file name for a package called pkgName.
func (c *Config) OutputFile(pkgName string) string {
	if c.Output != "" {
		return c.Output
	}
	return strings.ToLower(pkgName) + OutputSuffix
}

// TypeNames returns the names in the types map, sorted.
func (c *Config) TypeNames() []string {
	names := make([]string, 0, len(c.Types))
	for name := range c.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks that every setting is usable. All problems are reported
// together.
func (c *Config) Validate() error {
	var errs errsx.Map

	if c.Output != "" {
		switch {
		case filepath.Base(c.Output) != c.Output:
			errs.Set("output", fmt.Errorf("%q must be a file name without directories", c.Output))
		case !strings.HasSuffix(c.Output, ".go"):
			errs.Set("output", fmt.Errorf("%q must end in .go", c.Output))
		case strings.HasSuffix(c.Output, "_test.go"):
			errs.Set("output", fmt.Errorf("%q must not be a test file", c.Output))
		}
	}

	if c.ValuePackage == "" {
		errs.Set("value_package", "value_package cannot be empty")
	} else if err := module.CheckImportPath(c.ValuePackage); err != nil {
		errs.Set("value_package", err)
	}

	if c.BuildTags != "" {
		if _, err := constraint.Parse("//go:build " + c.BuildTags); err != nil {
			errs.Set("build_tags", fmt.Errorf("%q: %w", c.BuildTags, err))
		}
	}

	for _, name := range c.TypeNames() {
		if !token.IsIdentifier(name) {
			errs.Set("types."+name, fmt.Errorf("%q is not a Go identifier", name))
			continue
		}
		if _, err := ParseCapability(c.Types[name]); err != nil {
			errs.Set("types."+name, err)
		}
	}

	if !errs.IsEmpty() {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errs.AsError())
	}
	return nil
}
