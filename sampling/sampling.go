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

// Package sampling sizes and draws the inspection sample of a lot.
//
// The sample size is the smallest n for which a proportion estimated from a
// simple random sample without replacement has a margin of error of at most E:
//
//	E(n) = z·sqrt(p(1-p)/n · (N-n)/(N-1))
//
// Solving E(n) = E for n gives
//
//	n = z²p(1-p)N / (E²(N-1) + z²p(1-p))
//
// which is rounded up.
package sampling

import (
	"fmt"
	"math"
	"sort"

	log "github.com/golang/glog"
	"github.com/google/lot-quality-control/checks"
	"github.com/google/lot-quality-control/population"
	"github.com/google/lot-quality-control/rand"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// ceilTolerance absorbs floating-point error when the unrounded size is an
// exact integer.
const ceilTolerance = 1e-9

// ZForConfidence returns the two-sided critical value of the standard normal
// distribution for the given confidence level, e.g. 1.96 for 0.95.
func ZForConfidence(confidence float64) (float64, error) {
	if err := checks.CheckConfidenceLevel(confidence); err != nil {
		return 0, err
	}
	return distuv.UnitNormal.Quantile(1 - (1-confidence)/2), nil
}

func checkSizeArgs(populationSize int, z, p float64) error {
	if err := checks.CheckPopulationSize(populationSize); err != nil {
		return err
	}
	if err := checks.CheckStdDev(z, "Z"); err != nil {
		return err
	}
	return checks.CheckProportionStrict(p, "EstimatedProportion")
}

// Unrounded returns the real-valued solution of E(n) = margin.
func Unrounded(populationSize int, z, p, margin float64) (float64, error) {
	if err := checkSizeArgs(populationSize, z, p); err != nil {
		return 0, err
	}
	if err := checks.CheckMarginOfError(margin); err != nil {
		return 0, err
	}
	N := float64(populationSize)
	zzpq := z * z * p * (1 - p)
	return zzpq * N / (margin*margin*(N-1) + zzpq), nil
}

// Size returns the minimal sample size whose margin of error does not exceed
// margin for a population of populationSize parts, critical value z and
// estimated proportion p.
func Size(populationSize int, z, p, margin float64) (int, error) {
	n, err := Unrounded(populationSize, z, p, margin)
	if err != nil {
		return 0, err
	}
	return int(math.Ceil(n - ceilTolerance)), nil
}

// MarginOfError returns the margin of error of a proportion estimated from a
// sample of n parts drawn without replacement.
func MarginOfError(n, populationSize int, z, p float64) (float64, error) {
	if err := checkSizeArgs(populationSize, z, p); err != nil {
		return 0, err
	}
	if n < 1 || n > populationSize {
		return 0, fmt.Errorf("sample size %d must be within [1, %d]", n, populationSize)
	}
	N, fn := float64(populationSize), float64(n)
	return z * math.Sqrt(p*(1-p)/fn*(N-fn)/(N-1)), nil
}

// Plan records how the sample size was derived.
type Plan struct {
	PopulationSize      int
	ConfidenceLevel     float64
	Z                   float64
	EstimatedProportion float64
	MarginOfError       float64
	Unrounded           float64
	SampleSize          int
}

// NewPlan derives the sample size from the confidence level instead of an
// explicit critical value.
func NewPlan(populationSize int, confidence, p, margin float64) (*Plan, error) {
	z, err := ZForConfidence(confidence)
	if err != nil {
		return nil, fmt.Errorf("couldn't compute critical value: %w", err)
	}
	return NewPlanWithZ(populationSize, confidence, z, p, margin)
}

// NewPlanWithZ is NewPlan with a fixed critical value, e.g. the rounded 1.96.
func NewPlanWithZ(populationSize int, confidence, z, p, margin float64) (*Plan, error) {
	if err := checks.CheckConfidenceLevel(confidence); err != nil {
		return nil, err
	}
	unrounded, err := Unrounded(populationSize, z, p, margin)
	if err != nil {
		return nil, fmt.Errorf("couldn't compute sample size: %w", err)
	}
	n := int(math.Ceil(unrounded - ceilTolerance))
	if err := checks.CheckSampleSize(n, populationSize); err != nil {
		return nil, err
	}
	log.V(1).Infof("Sample size for N=%d, z=%.4f, p=%.2f, E=%.4f: %.2f rounded up to %d",
		populationSize, z, p, margin, unrounded, n)
	return &Plan{
		PopulationSize:      populationSize,
		ConfidenceLevel:     confidence,
		Z:                   z,
		EstimatedProportion: p,
		MarginOfError:       margin,
		Unrounded:           unrounded,
		SampleSize:          n,
	}, nil
}

// Draw takes a simple random sample of n parts without replacement. The
// returned sample records the population row of each part; parts appear in
// the order they were drawn.
func Draw(pop *population.Population, n int, src rand.Source) (*population.Population, error) {
	if err := checks.CheckSampleSize(n, pop.Len()); err != nil {
		return nil, fmt.Errorf("couldn't draw sample: %w", err)
	}
	rows := make([]int, n)
	sampleuv.WithoutReplacement(rows, pop.Len(), src)
	return pop.Subset(rows)
}

// SortedRows returns the population rows of a sample in increasing order.
func SortedRows(sample *population.Population) []int {
	rows := sample.Indices()
	sort.Ints(rows)
	return rows
}
