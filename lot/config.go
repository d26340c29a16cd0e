//
// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package lot

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/lot-quality-control/checks"
	"github.com/google/lot-quality-control/population"
	"github.com/google/lot-quality-control/tolerance"
	"gopkg.in/yaml.v3"
)

// SamplingConfig holds the inputs of the sample-size formula.
type SamplingConfig struct {
	ConfidenceLevel float64 `yaml:"confidence_level"`
	// Z is the critical value of the formula. If zero, it is derived from
	// ConfidenceLevel.
	Z                   float64 `yaml:"z"`
	EstimatedProportion float64 `yaml:"estimated_proportion"`
	MarginOfError       float64 `yaml:"margin_of_error"`
}

// Config contains every parameter of an analysis.
type Config struct {
	// Seed of the random source shared by the population and the sample.
	// Negative seeds select a cryptographically secure, unreproducible source.
	Seed       int64              `yaml:"seed"`
	Population population.Options `yaml:"population"`
	Bounds     tolerance.Bounds   `yaml:"bounds"`
	Targets    tolerance.Targets  `yaml:"targets"`
	Sampling   SamplingConfig     `yaml:"sampling"`
	// Alpha is the significance level of the three tests.
	Alpha float64 `yaml:"alpha"`
	// IntervalConfidence is the confidence level of the three intervals.
	IntervalConfidence float64 `yaml:"interval_confidence"`
}

// DefaultConfig returns the parameters of the reference inspection: a lot of
// 5000 parts generated from seed 42, a sample sized for a 2% margin at 95%
// confidence with z = 1.96, tests at α = 0.05 and 95% intervals.
func DefaultConfig() *Config {
	return &Config{
		Seed:       42,
		Population: *population.DefaultOptions(),
		Bounds:     tolerance.DefaultBounds(),
		Targets:    tolerance.DefaultTargets(),
		Sampling: SamplingConfig{
			ConfidenceLevel:     0.95,
			Z:                   1.96,
			EstimatedProportion: 0.5,
			MarginOfError:       0.02,
		},
		Alpha:              0.05,
		IntervalConfidence: 0.95,
	}
}

// Validate returns an error describing the first invalid parameter.
func (c *Config) Validate() error {
	if err := c.Population.Validate(); err != nil {
		return fmt.Errorf("population: %w", err)
	}
	if err := c.Bounds.Validate(); err != nil {
		return fmt.Errorf("bounds: %w", err)
	}
	if err := c.Targets.Validate(); err != nil {
		return fmt.Errorf("targets: %w", err)
	}
	s := c.Sampling
	if err := checks.CheckConfidenceLevel(s.ConfidenceLevel, "Sampling.ConfidenceLevel"); err != nil {
		return err
	}
	if s.Z != 0 {
		if err := checks.CheckStdDev(s.Z, "Sampling.Z"); err != nil {
			return err
		}
	}
	if err := checks.CheckProportionStrict(s.EstimatedProportion, "Sampling.EstimatedProportion"); err != nil {
		return err
	}
	if err := checks.CheckMarginOfError(s.MarginOfError, "Sampling.MarginOfError"); err != nil {
		return err
	}
	if err := checks.CheckSignificance(c.Alpha, "Alpha"); err != nil {
		return err
	}
	return checks.CheckConfidenceLevel(c.IntervalConfidence, "IntervalConfidence")
}

// LoadConfig reads a YAML configuration file. Keys absent from the file keep
// their DefaultConfig value; unknown keys are an error.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read config: %w", err)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("couldn't load config %s: %w", path, err)
	}
	return c, nil
}

// ParseConfig is LoadConfig for YAML already in memory.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("couldn't parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return c, nil
}
