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

// Package lot runs the acceptance analysis of a production lot: it simulates
// the lot, draws a sample, describes it, tests it against the nominal values
// and decides whether the lot is approved.
package lot

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/lot-quality-control/descriptive"
	"github.com/google/lot-quality-control/hypothesis"
	"github.com/google/lot-quality-control/interval"
	"github.com/google/lot-quality-control/population"
	"github.com/google/lot-quality-control/rand"
	"github.com/google/lot-quality-control/sampling"
	"github.com/google/lot-quality-control/tolerance"
)

// Analysis holds every intermediate result of Run.
type Analysis struct {
	Config     Config
	Population *population.Population
	Plan       *sampling.Plan
	Sample     *population.Population

	Weight, Dimension descriptive.Summary

	WeightTest, DimensionTest, ConformityTest hypothesis.Result
	Conformity                                tolerance.Conformity

	WeightInterval, DimensionInterval, ConformityInterval interval.Interval

	Decision tolerance.Decision
}

// Run executes the analysis described by cfg with a source derived from
// cfg.Seed. A nil cfg means DefaultConfig().
func Run(cfg *Config) (*Analysis, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return RunWithSource(cfg, rand.ForSeed(cfg.Seed))
}

// RunWithSource is Run with an explicit random source, used for both the
// population and the sample.
func RunWithSource(cfg *Config, src rand.Source) (*Analysis, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	a := &Analysis{Config: *cfg}

	popOpt := cfg.Population
	popOpt.Source = src
	pop, err := population.Generate(&popOpt)
	if err != nil {
		return nil, err
	}
	a.Population = pop
	log.Infof("Generated a lot of %d parts", pop.Len())

	if err := a.drawSample(src); err != nil {
		return nil, err
	}
	if err := a.describe(); err != nil {
		return nil, err
	}
	if err := a.test(); err != nil {
		return nil, err
	}
	if err := a.estimate(); err != nil {
		return nil, err
	}
	a.Decision, err = tolerance.Decide(a.WeightTest, a.DimensionTest, a.ConformityTest, cfg.Alpha, cfg.Targets.Conforming)
	if err != nil {
		return nil, fmt.Errorf("couldn't decide on the lot: %w", err)
	}
	return a, nil
}

func (a *Analysis) drawSample(src rand.Source) error {
	s := a.Config.Sampling
	var err error
	if s.Z == 0 {
		a.Plan, err = sampling.NewPlan(a.Population.Len(), s.ConfidenceLevel, s.EstimatedProportion, s.MarginOfError)
	} else {
		a.Plan, err = sampling.NewPlanWithZ(a.Population.Len(), s.ConfidenceLevel, s.Z, s.EstimatedProportion, s.MarginOfError)
	}
	if err != nil {
		return fmt.Errorf("couldn't plan the sample: %w", err)
	}
	a.Sample, err = sampling.Draw(a.Population, a.Plan.SampleSize, src)
	if err != nil {
		return err
	}
	log.Infof("Drew a simple random sample of %d parts", a.Sample.Len())
	return nil
}

func (a *Analysis) describe() error {
	var err error
	if a.Weight, err = descriptive.Describe(a.Sample.Weights()); err != nil {
		return fmt.Errorf("couldn't describe weights: %w", err)
	}
	if a.Dimension, err = descriptive.Describe(a.Sample.Dimensions()); err != nil {
		return fmt.Errorf("couldn't describe dimensions: %w", err)
	}
	return nil
}

func (a *Analysis) test() error {
	cfg := a.Config
	var err error
	a.WeightTest, err = hypothesis.OneSampleTFromSummary(a.Weight.Mean, a.Weight.StdDev, a.Weight.N,
		cfg.Targets.WeightMean, cfg.Alpha, hypothesis.TwoSided)
	if err != nil {
		return fmt.Errorf("couldn't test the mean weight: %w", err)
	}
	a.DimensionTest, err = hypothesis.OneSampleTFromSummary(a.Dimension.Mean, a.Dimension.StdDev, a.Dimension.N,
		cfg.Targets.DimensionMean, cfg.Alpha, hypothesis.TwoSided)
	if err != nil {
		return fmt.Errorf("couldn't test the mean dimension: %w", err)
	}
	a.Conformity, err = tolerance.Evaluate(a.Sample, cfg.Bounds)
	if err != nil {
		return err
	}
	a.ConformityTest, err = hypothesis.ProportionZ(a.Conformity.Conforming, a.Conformity.N,
		cfg.Targets.Conforming, cfg.Alpha, hypothesis.Less)
	if err != nil {
		return fmt.Errorf("couldn't test the conformity rate: %w", err)
	}
	log.V(1).Infof("t(weight)=%.4f t(dimension)=%.4f z(conformity)=%.4f",
		a.WeightTest.Statistic, a.DimensionTest.Statistic, a.ConformityTest.Statistic)
	return nil
}

func (a *Analysis) estimate() error {
	c := a.Config.IntervalConfidence
	var err error
	if a.WeightInterval, err = interval.MeanT(a.Weight.Mean, a.Weight.StdDev, a.Weight.N, c); err != nil {
		return fmt.Errorf("couldn't estimate the mean weight: %w", err)
	}
	if a.DimensionInterval, err = interval.MeanT(a.Dimension.Mean, a.Dimension.StdDev, a.Dimension.N, c); err != nil {
		return fmt.Errorf("couldn't estimate the mean dimension: %w", err)
	}
	if a.ConformityInterval, err = interval.ProportionZ(a.Conformity.Proportion(), a.Conformity.N, c); err != nil {
		return fmt.Errorf("couldn't estimate the conformity rate: %w", err)
	}
	return nil
}
