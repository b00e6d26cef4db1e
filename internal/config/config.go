package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"gounion/internal/model"
)

// Config represents the complete configuration.
type Config struct {
	Options        Options            `yaml:"options" json:"options" toml:"options"`
	Wrappers       map[string]Wrapper `yaml:"wrappers" json:"wrappers" toml:"wrappers"`
	ReferenceTypes []string           `yaml:"referenceTypes" json:"referenceTypes" toml:"referenceTypes"`
	Unions         []Union            `yaml:"unions" json:"unions" toml:"unions"`
}

// Options represents generation options.
type Options struct {
	OutputDir      string   `yaml:"outputDir" json:"outputDir" toml:"outputDir"`
	FileSuffix     string   `yaml:"fileSuffix" json:"fileSuffix" toml:"fileSuffix"`
	RuntimePackage string   `yaml:"runtimePackage" json:"runtimePackage" toml:"runtimePackage"`
	RuntimeName    string   `yaml:"runtimeName" json:"runtimeName" toml:"runtimeName"`
	IncludeTypes   []string `yaml:"includeTypes" json:"includeTypes" toml:"includeTypes"`
	ExcludeTypes   []string `yaml:"excludeTypes" json:"excludeTypes" toml:"excludeTypes"`
	Extra          []string `yaml:"extra" json:"extra" toml:"extra"`
	Jobs           int      `yaml:"jobs" json:"jobs" toml:"jobs"`
	Incremental    bool     `yaml:"incremental" json:"incremental" toml:"incremental"`
}

// Wrapper describes a case type from another package that wraps an inner
// value in a conventional field. Type is written in terms of TypeParams.
type Wrapper struct {
	TypeParams []string `yaml:"typeParams" json:"typeParams" toml:"typeParams"`
	Field      string   `yaml:"field" json:"field" toml:"field"`
	Type       string   `yaml:"type" json:"type" toml:"type"`
}

// Union declares a union in the config file instead of in source.
type Union struct {
	Dir     string            `yaml:"dir" json:"dir" toml:"dir"`
	Name    string            `yaml:"name" json:"name" toml:"name"`
	Cases   []string          `yaml:"cases" json:"cases" toml:"cases"`
	Aliases map[string]string `yaml:"aliases" json:"aliases" toml:"aliases"`
	Extra   []string          `yaml:"extra" json:"extra" toml:"extra"`
	Record  bool              `yaml:"record" json:"record" toml:"record"`
	Doc     string            `yaml:"doc" json:"doc" toml:"doc"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Options:        DefaultOptions(),
		Wrappers:       DefaultWrappers(),
		ReferenceTypes: DefaultReferenceTypes(),
	}
}

// LoadFile loads configuration from a file (YAML, JSON or TOML based on
// extension).
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing JSON config: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("parsing TOML config: %w", err)
		}
	default:
		// Try YAML first, then JSON
		if err := yaml.Unmarshal(data, &loaded); err != nil {
			if err := json.Unmarshal(data, &loaded); err != nil {
				return fmt.Errorf("unable to parse config as YAML or JSON")
			}
		}
	}

	// Union directories are relative to the config file.
	base := filepath.Dir(path)
	for i := range loaded.Unions {
		if d := loaded.Unions[i].Dir; d == "" || !filepath.IsAbs(d) {
			loaded.Unions[i].Dir = filepath.Join(base, d)
		}
	}

	c.merge(&loaded)
	return nil
}

// merge merges the loaded config into the current config.
func (c *Config) merge(loaded *Config) {
	if c.Wrappers == nil {
		c.Wrappers = make(map[string]Wrapper)
	}
	for k, v := range loaded.Wrappers {
		c.Wrappers[k] = v
	}
	c.ReferenceTypes = append(c.ReferenceTypes, loaded.ReferenceTypes...)
	c.Unions = append(c.Unions, loaded.Unions...)

	o := loaded.Options
	if o.OutputDir != "" {
		c.Options.OutputDir = o.OutputDir
	}
	if o.FileSuffix != "" {
		c.Options.FileSuffix = o.FileSuffix
	}
	if o.RuntimePackage != "" {
		c.Options.RuntimePackage = o.RuntimePackage
	}
	if o.RuntimeName != "" {
		c.Options.RuntimeName = o.RuntimeName
	}
	if o.Jobs > 0 {
		c.Options.Jobs = o.Jobs
	}
	if o.Incremental {
		c.Options.Incremental = true
	}
	if len(o.IncludeTypes) > 0 {
		c.Options.IncludeTypes = o.IncludeTypes
	}
	if len(o.ExcludeTypes) > 0 {
		c.Options.ExcludeTypes = o.ExcludeTypes
	}
	c.Options.Extra = append(c.Options.Extra, o.Extra...)
}

// Extras returns the generation options applied to every declaration.
func (c *Config) Extras() (model.Extras, error) {
	e, err := model.ParseExtras(c.Options.Extra)
	if err != nil {
		return model.Extras{}, fmt.Errorf("options.extra: %w", err)
	}
	return e, nil
}

// IsReference reports whether values of the named type can be nil. name is
// either a qualified name such as "context.Context" or a full import path
// followed by the type name.
func (c *Config) IsReference(names ...string) bool {
	for _, ref := range c.ReferenceTypes {
		for _, name := range names {
			if ref == name {
				return true
			}
		}
	}
	return false
}

// LookupWrapper returns the configured wrapper for the first of names found.
func (c *Config) LookupWrapper(names ...string) (Wrapper, bool) {
	for _, name := range names {
		if w, ok := c.Wrappers[name]; ok {
			return w, true
		}
	}
	return Wrapper{}, false
}

// ShouldIncludeType checks if a union should be generated based on config.
func (c *Config) ShouldIncludeType(name string) bool {
	// Check include list (if specified, type must be in it)
	if len(c.Options.IncludeTypes) > 0 && !contains(c.Options.IncludeTypes, name) {
		return false
	}
	return !contains(c.Options.ExcludeTypes, name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Overrides converts the alias map of u into overrides ordered by index.
func (u Union) Overrides() ([]model.Override, error) {
	overrides := make([]model.Override, 0, len(u.Aliases))
	for key, alias := range u.Aliases {
		key = strings.TrimSpace(key)
		index, err := cast.ToIntE(key)
		if err != nil || strconv.Itoa(index) != key {
			return nil, fmt.Errorf("union %s: alias key %q is not a case index", u.Name, key)
		}
		overrides = append(overrides, model.Override{Index: index, Alias: alias})
	}
	sort.Slice(overrides, func(i, j int) bool {
		return overrides[i].Index < overrides[j].Index
	})
	return overrides, nil
}
