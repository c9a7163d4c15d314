package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astrium/megascan/internal/dataset"
	"github.com/astrium/megascan/internal/record"
	"github.com/astrium/megascan/internal/scanner"
)

type Config struct {
	DataDir  string   `yaml:"data_dir"`
	Pattern  string   `yaml:"pattern"`
	Family   string   `yaml:"family"`
	Families []Family `yaml:"families"`
	Fetch    Fetch    `yaml:"fetch"`
}

// Family declares a custom experiment family in config. Built-in families
// (hstcal, hstsvm, jwstcal) need no declaration; a custom declaration with
// a built-in name overrides it.
type Family struct {
	Name        string                    `yaml:"name"`
	Kinds       []record.Kind             `yaml:"kinds"`
	Target      string                    `yaml:"target"`
	Labels      []string                  `yaml:"labels"`
	IndexColumn string                    `yaml:"index_column"`
	Decoder     map[string]map[int]string `yaml:"decoder"`
}

type Fetch struct {
	Dest    string   `yaml:"dest"`
	Sources []Source `yaml:"sources"`
}

type Source struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	SHA256 string `yaml:"sha256"`
	Unzip  bool   `yaml:"unzip"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Pattern == "" {
		cfg.Pattern = "20??-*-*-*"
	}
	if cfg.Family == "" {
		cfg.Family = "hstcal"
	}
	for i, f := range cfg.Families {
		if f.Name == "" {
			return fmt.Errorf("family %d: name is required", i)
		}
		if len(f.Kinds) == 0 {
			return fmt.Errorf("family %q: at least one result kind is required", f.Name)
		}
		for j, k := range f.Kinds {
			if k.Name == "" {
				return fmt.Errorf("family %q: kind %d: name is required", f.Name, j)
			}
			switch k.Algorithm {
			case record.Binary, record.Multi, record.Regressor:
			default:
				return fmt.Errorf("family %q: kind %q: unknown algorithm %q", f.Name, k.Name, k.Algorithm)
			}
			if k.Algorithm.Classifier() && len(f.Labels) == 0 {
				return fmt.Errorf("family %q: classifier kind %q requires labels", f.Name, k.Name)
			}
		}
		if f.Target == "" {
			cfg.Families[i].Target = f.Kinds[0].Name
		} else if !kindDeclared(f.Kinds, f.Target) {
			return fmt.Errorf("family %q: target %q is not a declared kind", f.Name, f.Target)
		}
	}
	for i, s := range cfg.Fetch.Sources {
		if s.Name == "" {
			return fmt.Errorf("fetch source %d: name is required", i)
		}
		if s.URL == "" {
			return fmt.Errorf("fetch source %q: url is required", s.Name)
		}
	}
	if cfg.Fetch.Dest == "" {
		cfg.Fetch.Dest = cfg.DataDir
	}
	return nil
}

func kindDeclared(kinds []record.Kind, name string) bool {
	for _, k := range kinds {
		if k.Name == name {
			return true
		}
	}
	return false
}

// Scanner converts the declaration into a scanner family configuration.
func (f Family) Scanner() scanner.Family {
	dec := make(dataset.Decoder, len(f.Decoder))
	for col, pairs := range f.Decoder {
		dec[col] = pairs
	}
	return scanner.Family{
		Name:        f.Name,
		Kinds:       f.Kinds,
		Target:      f.Target,
		Labels:      f.Labels,
		IndexColumn: f.IndexColumn,
		Decoder:     dec,
	}
}

// Custom returns the declared custom family with the given name, if any.
func (c *Config) Custom(name string) (scanner.Family, bool) {
	for _, f := range c.Families {
		if f.Name == name {
			return f.Scanner(), true
		}
	}
	return scanner.Family{}, false
}
