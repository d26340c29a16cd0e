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

// Package descriptive computes the descriptive statistics of a sample column.
package descriptive

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned when a statistic is requested for no values.
var ErrEmptyInput = errors.New("descriptive: input must not be empty")

// Summary holds the descriptive statistics of a sample.
//
// StdDev and Variance use n-1 degrees of freedom. Skewness and Kurtosis are the
// biased moment estimators g1 = m3/m2^1.5 and g2 = m4/m2² - 3 (excess
// kurtosis), which are 0 for a normal distribution.
type Summary struct {
	N        int
	Mean     float64
	Median   float64
	Mode     float64
	StdDev   float64
	Variance float64
	// Coefficient of variation in percent: 100·StdDev/Mean.
	CoefficientOfVariation float64
	Min                    float64
	Max                    float64
	Range                  float64
	Q1                     float64
	Q3                     float64
	IQR                    float64
	Skewness               float64
	Kurtosis               float64
}

// Describe returns the Summary of x. x is not modified.
func Describe(x []float64) (Summary, error) {
	if len(x) == 0 {
		return Summary{}, ErrEmptyInput
	}
	if floats.HasNaN(x) {
		return Summary{}, fmt.Errorf("descriptive: input contains NaN")
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	median, err := stats.Median(sorted)
	if err != nil {
		return Summary{}, fmt.Errorf("couldn't compute median: %w", err)
	}
	mode, err := Mode(sorted)
	if err != nil {
		return Summary{}, err
	}

	s := Summary{
		N:      len(x),
		Mean:   stat.Mean(x, nil),
		Median: median,
		Mode:   mode,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Q1:     quantileSorted(sorted, 0.25),
		Q3:     quantileSorted(sorted, 0.75),
	}
	s.Range = s.Max - s.Min
	s.IQR = s.Q3 - s.Q1
	if s.N > 1 {
		s.Variance = stat.Variance(x, nil)
		s.StdDev = math.Sqrt(s.Variance)
	} else {
		s.Variance, s.StdDev = math.NaN(), math.NaN()
	}
	s.CoefficientOfVariation = 100 * s.StdDev / s.Mean
	s.Skewness, s.Kurtosis = shape(x)
	return s, nil
}

// shape returns the biased skewness and excess kurtosis of x. Both are NaN
// when all values are equal.
func shape(x []float64) (skewness, kurtosis float64) {
	m2 := stat.Moment(2, x, nil)
	if m2 == 0 {
		return math.NaN(), math.NaN()
	}
	m3 := stat.Moment(3, x, nil)
	m4 := stat.Moment(4, x, nil)
	return m3 / math.Pow(m2, 1.5), m4/(m2*m2) - 3
}

// Mode returns the most frequent value of x. Ties go to the smallest value,
// and when no value repeats every value is a mode, so the smallest is
// returned.
func Mode(x []float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	modes, err := stats.Mode(x)
	if err != nil {
		return 0, fmt.Errorf("couldn't compute mode: %w", err)
	}
	if len(modes) > 0 {
		return modes[0], nil
	}
	smallest, err := stats.Min(x)
	if err != nil {
		return 0, fmt.Errorf("couldn't compute mode: %w", err)
	}
	return smallest, nil
}

// Quantile returns the p-quantile of x by linear interpolation between order
// statistics: with h = (n-1)p, the result is x₍⌊h⌋₎ + (h-⌊h⌋)(x₍⌊h⌋+1₎ - x₍⌊h⌋₎).
func Quantile(x []float64, p float64) (float64, error) {
	if len(x) == 0 {
		return 0, ErrEmptyInput
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("descriptive: quantile probability %f must be within [0, 1]", p)
	}
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)
	return quantileSorted(sorted, p), nil
}

func quantileSorted(sorted []float64, p float64) float64 {
	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}
