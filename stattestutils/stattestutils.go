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

// Package stattestutils provides naive reference implementations of the
// statistics computed by this module.
//
// This package is not optimized for performance or speed and is only intended
// to be used in tests.
package stattestutils

import (
	"math"
	"sort"
)

// SampleMean returns the mean of a slice, calculated as the average over the
// values in the slice.
func SampleMean(values []float64) float64 {
	var sum float64 = 0.0
	for _, v := range values {
		sum += v
	}
	return sum / math.Max(1, float64(len(values)))
}

// SampleVariance returns the unbiased variance of a slice: the sum of squares
// of the distance to the mean of each of the values, divided by the number of
// values minus one.
func SampleVariance(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean := SampleMean(values)
	var sumOfSquares float64 = 0.0
	for _, v := range values {
		sumOfSquares += math.Pow(v-mean, 2)
	}
	return sumOfSquares / float64(len(values)-1)
}

// Quantile returns the p-quantile of values by linear interpolation between
// the order statistics at positions floor((n-1)p) and ceil((n-1)p).
func Quantile(values []float64, p float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	h := float64(len(sorted)-1) * p
	lo, hi := math.Floor(h), math.Ceil(h)
	return sorted[int(lo)] + (h-lo)*(sorted[int(hi)]-sorted[int(lo)])
}

// MinimalSampleSize returns the smallest n in [1, N] such that a proportion p
// estimated from n of N parts has a finite-population margin of error of at
// most margin, by trying every n in turn. It returns N if no smaller n works.
func MinimalSampleSize(N int, z, p, margin float64) int {
	for n := 1; n < N; n++ {
		e := z * math.Sqrt(p*(1-p)/float64(n)*float64(N-n)/float64(N-1))
		if e <= margin {
			return n
		}
	}
	return N
}

// CountIf returns the number of indices i for which keep(i) is true.
func CountIf(n int, keep func(i int) bool) int {
	count := 0
	for i := 0; i < n; i++ {
		if keep(i) {
			count++
		}
	}
	return count
}
