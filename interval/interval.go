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

// Package interval computes confidence intervals for a mean (Student's t)
// and for a proportion (Wald).
package interval

import (
	"fmt"
	"math"

	"github.com/google/lot-quality-control/checks"
	"gonum.org/v1/gonum/stat/distuv"
)

// Interval is a two-sided confidence interval around a point estimate.
type Interval struct {
	PointEstimate float64
	StandardError float64
	// CriticalValue is the t or z quantile the standard error is multiplied by.
	CriticalValue          float64
	MarginOfError          float64
	LowerBound, UpperBound float64
	ConfidenceLevel        float64
}

// Contains reports whether x lies within [LowerBound, UpperBound].
func (i Interval) Contains(x float64) bool {
	return i.LowerBound <= x && x <= i.UpperBound
}

// Width returns UpperBound - LowerBound.
func (i Interval) Width() float64 {
	return i.UpperBound - i.LowerBound
}

// MeanT returns the interval mean ± t·sd/√n, where t is the 1-(1-confidence)/2
// quantile of Student's t distribution with n-1 degrees of freedom.
func MeanT(mean, sd float64, n int, confidence float64) (Interval, error) {
	if err := checks.CheckConfidenceLevel(confidence); err != nil {
		return Interval{}, err
	}
	if n < 2 {
		return Interval{}, fmt.Errorf("interval: mean interval needs at least 2 observations, got %d", n)
	}
	if err := checks.CheckFinite("Mean", mean); err != nil {
		return Interval{}, err
	}
	if !(sd >= 0) || math.IsInf(sd, 0) {
		return Interval{}, fmt.Errorf("interval: standard deviation is %f, must be nonnegative and finite", sd)
	}

	se := sd / math.Sqrt(float64(n))
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(1 - (1-confidence)/2)
	margin := t * se
	return Interval{
		PointEstimate:   mean,
		StandardError:   se,
		CriticalValue:   t,
		MarginOfError:   margin,
		LowerBound:      mean - margin,
		UpperBound:      mean + margin,
		ConfidenceLevel: confidence,
	}, nil
}

// ProportionZ returns the Wald interval p̂ ± z·sqrt(p̂(1-p̂)/n), clipped to [0, 1].
// The margin of error is reported before clipping.
func ProportionZ(pHat float64, n int, confidence float64) (Interval, error) {
	if err := checks.CheckConfidenceLevel(confidence); err != nil {
		return Interval{}, err
	}
	if n < 1 {
		return Interval{}, fmt.Errorf("interval: proportion interval needs at least 1 trial, got %d", n)
	}
	if err := checks.CheckProportion(pHat, "PHat"); err != nil {
		return Interval{}, err
	}

	se := math.Sqrt(pHat * (1 - pHat) / float64(n))
	z := distuv.UnitNormal.Quantile(1 - (1-confidence)/2)
	margin := z * se
	return Interval{
		PointEstimate:   pHat,
		StandardError:   se,
		CriticalValue:   z,
		MarginOfError:   margin,
		LowerBound:      math.Max(0, pHat-margin),
		UpperBound:      math.Min(1, pHat+margin),
		ConfidenceLevel: confidence,
	}, nil
}
