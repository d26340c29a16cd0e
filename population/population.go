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

// Package population simulates a production lot of parts, each with a weight
// (grams) and a dimension (millimetres).
package population

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/lot-quality-control/checks"
	"github.com/google/lot-quality-control/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Part is a single manufactured part.
type Part struct {
	Weight    float64 // grams
	Dimension float64 // millimetres
}

// Population is an immutable table of parts. A sample drawn from a population
// is itself a Population that remembers the row of each part in its parent.
type Population struct {
	weights    []float64
	dimensions []float64
	// indices[i] is the row of part i in the population it was drawn from; nil
	// for a generated population.
	indices []int
}

// Options contains the parameters of the simulated lot.
type Options struct {
	Size            int     `yaml:"size"`             // Number of parts. Required, at least 2.
	WeightMean      float64 `yaml:"weight_mean"`      // Mean weight in grams.
	WeightStdDev    float64 `yaml:"weight_stddev"`    // Standard deviation of the weight. Required.
	DimensionMean   float64 `yaml:"dimension_mean"`   // Mean dimension in millimetres.
	DimensionStdDev float64 `yaml:"dimension_stddev"` // Standard deviation of the dimension. Required.
	// Source of randomness. Defaults to a source seeded with 42.
	Source rand.Source `yaml:"-"`
}

// DefaultOptions returns the lot parameters of the reference production line:
// 5000 parts, weight ~ N(150, 5²) g and dimension ~ N(25, 0.8²) mm.
func DefaultOptions() *Options {
	return &Options{
		Size:            5000,
		WeightMean:      150,
		WeightStdDev:    5,
		DimensionMean:   25.0,
		DimensionStdDev: 0.8,
	}
}

// Validate returns an error if the size or a distribution parameter is invalid.
func (opt *Options) Validate() error {
	if err := checks.CheckPopulationSize(opt.Size); err != nil {
		return err
	}
	if err := checks.CheckFinite("WeightMean", opt.WeightMean); err != nil {
		return err
	}
	if err := checks.CheckFinite("DimensionMean", opt.DimensionMean); err != nil {
		return err
	}
	if err := checks.CheckStdDev(opt.WeightStdDev, "WeightStdDev"); err != nil {
		return err
	}
	return checks.CheckStdDev(opt.DimensionStdDev, "DimensionStdDev")
}

// Generate simulates a lot. All weights are drawn first, then all dimensions,
// from the same source.
func Generate(opt *Options) (*Population, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if err := opt.Validate(); err != nil {
		return nil, fmt.Errorf("couldn't generate population: %w", err)
	}
	src := opt.Source
	if src == nil {
		src = rand.NewSource(42)
	}

	weight := distuv.Normal{Mu: opt.WeightMean, Sigma: opt.WeightStdDev, Src: src}
	dimension := distuv.Normal{Mu: opt.DimensionMean, Sigma: opt.DimensionStdDev, Src: src}

	p := &Population{
		weights:    make([]float64, opt.Size),
		dimensions: make([]float64, opt.Size),
	}
	for i := range p.weights {
		p.weights[i] = weight.Rand()
	}
	for i := range p.dimensions {
		p.dimensions[i] = dimension.Rand()
	}
	log.V(1).Infof("Generated population of %d parts", opt.Size)
	return p, nil
}

// New builds a population from measured values. The slices are copied.
func New(weights, dimensions []float64) (*Population, error) {
	if len(weights) != len(dimensions) {
		return nil, fmt.Errorf("got %d weights and %d dimensions, want equal lengths", len(weights), len(dimensions))
	}
	return &Population{
		weights:    append([]float64(nil), weights...),
		dimensions: append([]float64(nil), dimensions...),
	}, nil
}

// Len returns the number of parts.
func (p *Population) Len() int {
	return len(p.weights)
}

// Weights returns a copy of the weight column.
func (p *Population) Weights() []float64 {
	return append([]float64(nil), p.weights...)
}

// Dimensions returns a copy of the dimension column.
func (p *Population) Dimensions() []float64 {
	return append([]float64(nil), p.dimensions...)
}

// Part returns the i-th part.
func (p *Population) Part(i int) Part {
	return Part{Weight: p.weights[i], Dimension: p.dimensions[i]}
}

// Parts returns all parts in row order.
func (p *Population) Parts() []Part {
	parts := make([]Part, p.Len())
	for i := range parts {
		parts[i] = p.Part(i)
	}
	return parts
}

// Indices returns, for a sample, the row of each part in the parent
// population; nil otherwise.
func (p *Population) Indices() []int {
	if p.indices == nil {
		return nil
	}
	return append([]int(nil), p.indices...)
}

// Subset returns the parts at the given rows, in the given order.
func (p *Population) Subset(rows []int) (*Population, error) {
	s := &Population{
		weights:    make([]float64, len(rows)),
		dimensions: make([]float64, len(rows)),
		indices:    append([]int(nil), rows...),
	}
	for i, r := range rows {
		if r < 0 || r >= p.Len() {
			return nil, fmt.Errorf("row %d out of range [0, %d)", r, p.Len())
		}
		s.weights[i] = p.weights[r]
		s.dimensions[i] = p.dimensions[r]
	}
	return s, nil
}

// Summary holds the population-level figures printed in the report header.
type Summary struct {
	Size          int
	WeightMean    float64
	DimensionMean float64
}

// Summary returns the size and column means of the population.
func (p *Population) Summary() Summary {
	return Summary{
		Size:          p.Len(),
		WeightMean:    stat.Mean(p.weights, nil),
		DimensionMean: stat.Mean(p.dimensions, nil),
	}
}
