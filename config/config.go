// Package config loads content dimension definitions from YAML.
//
// Dimensions are a YAML sequence, so their order survives decoding; that
// order is the fallback priority. Values nest through specializations:
//
//	dimensions:
//	  - name: language
//	    values:
//	      - value: mul
//	        specializations:
//	          - value: en
//	            specializations:
//	              - value: en_US
//	          - value: de
//	  - name: market
//	    values:
//	      - value: WW
//	        specializations:
//	          - value: CH
//	constraints:
//	  - '!(point.language == "en_US" && point.market == "CH")'
package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/contentdim/constraint"
	"github.com/katalvlaran/contentdim/dimension"
	"github.com/katalvlaran/contentdim/variation"
)

// ErrNoDimensions indicates a configuration without any dimension.
var ErrNoDimensions = errors.New("config: no dimensions configured")

// Config is the decoded dimension configuration.
type Config struct {
	Dimensions  []DimensionConfig `yaml:"dimensions"`
	Constraints []string          `yaml:"constraints,omitempty"`
}

// DimensionConfig describes one dimension and its root values.
type DimensionConfig struct {
	Name   string        `yaml:"name"`
	Values []ValueConfig `yaml:"values"`
}

// ValueConfig describes one value and, recursively, its specializations.
type ValueConfig struct {
	Value           string        `yaml:"value"`
	Specializations []ValueConfig `yaml:"specializations,omitempty"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the configuration by building a throwaway registry and
// compiling every constraint, so it reports exactly the errors Registry and
// ConstraintSet would.
func (c *Config) Validate() error {
	if len(c.Dimensions) == 0 {
		return ErrNoDimensions
	}
	if _, err := c.Registry(); err != nil {
		return err
	}
	_, err := c.ConstraintSet()

	return err
}

// Registry builds a dimension.Registry in configuration order.
// Errors are the dimension package sentinels, wrapped with the config path.
func (c *Config) Registry() (*dimension.Registry, error) {
	reg := dimension.NewRegistry()
	for i, dc := range c.Dimensions {
		d, err := reg.CreateDimension(dc.Name)
		if err != nil {
			return nil, fmt.Errorf("config: dimensions[%d]: %w", i, err)
		}
		if err := addValues(d, nil, dc.Values); err != nil {
			return nil, fmt.Errorf("config: dimensions[%d]: %w", i, err)
		}
	}

	return reg, nil
}

func addValues(d *dimension.Dimension, parent *dimension.Value, values []ValueConfig) error {
	for _, vc := range values {
		v, err := d.CreateValue(vc.Value, parent)
		if err != nil {
			return err
		}
		if err := addValues(d, v, vc.Specializations); err != nil {
			return err
		}
	}

	return nil
}

// ConstraintSet compiles the configured constraints.
func (c *Config) ConstraintSet() (*constraint.Set, error) {
	s, err := constraint.NewSet(c.Constraints...)
	if err != nil {
		return nil, fmt.Errorf("config: constraints: %w", err)
	}

	return s, nil
}

// Graph builds the registry, compiles the constraints and runs the full
// variation construction pass. opts are passed to variation.Build after the
// constraint filter, so a caller-supplied WithPointFilter replaces it.
func (c *Config) Graph(ctx context.Context, opts ...variation.Option) (*variation.Graph, error) {
	reg, err := c.Registry()
	if err != nil {
		return nil, err
	}
	set, err := c.ConstraintSet()
	if err != nil {
		return nil, err
	}
	all := make([]variation.Option, 0, len(opts)+1)
	if set.Len() > 0 {
		all = append(all, variation.WithPointFilter(set))
	}
	all = append(all, opts...)

	return variation.Build(ctx, reg, all...)
}
