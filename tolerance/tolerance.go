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

// Package tolerance checks parts against their specification limits and
// aggregates the per-criterion results into the lot decision.
package tolerance

import (
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/lot-quality-control/checks"
	"github.com/google/lot-quality-control/population"
)

// Bounds are the inclusive specification limits of a part.
type Bounds struct {
	WeightMin    float64 `yaml:"weight_min"` // grams
	WeightMax    float64 `yaml:"weight_max"`
	DimensionMin float64 `yaml:"dimension_min"` // millimetres
	DimensionMax float64 `yaml:"dimension_max"`
}

// DefaultBounds returns the limits of the reference product: weight within
// [140, 160] g and dimension within [23.5, 26.5] mm.
func DefaultBounds() Bounds {
	return Bounds{
		WeightMin:    140,
		WeightMax:    160,
		DimensionMin: 23.5,
		DimensionMax: 26.5,
	}
}

// Validate returns an error if a pair of limits is not a proper interval.
func (b Bounds) Validate() error {
	if err := checks.CheckBounds("Weight", b.WeightMin, b.WeightMax); err != nil {
		return err
	}
	return checks.CheckBounds("Dimension", b.DimensionMin, b.DimensionMax)
}

// WeightConforms reports whether w is within [WeightMin, WeightMax].
func (b Bounds) WeightConforms(w float64) bool {
	return b.WeightMin <= w && w <= b.WeightMax
}

// DimensionConforms reports whether d is within [DimensionMin, DimensionMax].
func (b Bounds) DimensionConforms(d float64) bool {
	return b.DimensionMin <= d && d <= b.DimensionMax
}

// Check reports whether both measurements of p are within their limits.
func (b Bounds) Check(p population.Part) bool {
	return b.WeightConforms(p.Weight) && b.DimensionConforms(p.Dimension)
}

// Targets are the nominal values the lot is tested against.
type Targets struct {
	WeightMean    float64 `yaml:"weight_mean"`
	DimensionMean float64 `yaml:"dimension_mean"`
	// Conforming is the minimum proportion of parts within the limits.
	Conforming float64 `yaml:"conforming_proportion"`
}

// DefaultTargets returns a nominal weight of 150 g, a nominal dimension of
// 25 mm and a required conformity of 95%.
func DefaultTargets() Targets {
	return Targets{WeightMean: 150, DimensionMean: 25.0, Conforming: 0.95}
}

// Validate returns an error if a target is not finite or the conforming
// proportion is not within (0, 1).
func (t Targets) Validate() error {
	if err := checks.CheckFinite("WeightMean", t.WeightMean); err != nil {
		return err
	}
	if err := checks.CheckFinite("DimensionMean", t.DimensionMean); err != nil {
		return err
	}
	return checks.CheckProportionStrict(t.Conforming, "Conforming")
}

// Conformity counts the parts of a sample that are within the limits.
type Conformity struct {
	N                   int
	WeightConforming    int
	DimensionConforming int
	// Conforming counts parts with both measurements within the limits.
	Conforming int
	// Mask[i] is true if part i of the sample conforms.
	Mask []bool
}

// WeightProportion returns the share of parts whose weight conforms.
func (c Conformity) WeightProportion() float64 {
	return float64(c.WeightConforming) / float64(c.N)
}

// DimensionProportion returns the share of parts whose dimension conforms.
func (c Conformity) DimensionProportion() float64 {
	return float64(c.DimensionConforming) / float64(c.N)
}

// Proportion returns the share of fully conforming parts.
func (c Conformity) Proportion() float64 {
	return float64(c.Conforming) / float64(c.N)
}

// Evaluate checks every part of sample against b.
func Evaluate(sample *population.Population, b Bounds) (Conformity, error) {
	if sample == nil || sample.Len() == 0 {
		return Conformity{}, fmt.Errorf("tolerance: cannot evaluate an empty sample")
	}
	if err := b.Validate(); err != nil {
		return Conformity{}, err
	}
	c := Conformity{N: sample.Len(), Mask: make([]bool, sample.Len())}
	for i, p := range sample.Parts() {
		w, d := b.WeightConforms(p.Weight), b.DimensionConforms(p.Dimension)
		if w {
			c.WeightConforming++
		}
		if d {
			c.DimensionConforming++
		}
		if w && d {
			c.Conforming++
			c.Mask[i] = true
		}
	}
	log.V(1).Infof("Conformity: weight %d/%d, dimension %d/%d, both %d/%d",
		c.WeightConforming, c.N, c.DimensionConforming, c.N, c.Conforming, c.N)
	return c, nil
}
