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

package descriptive

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Probability holds the points of a normal probability (Q-Q) plot and the
// least-squares line through them.
type Probability struct {
	// Theoretical[i] is the standard normal quantile of the i-th plotting
	// position; Ordered[i] is the i-th smallest observation.
	Theoretical []float64
	Ordered     []float64
	Slope       float64
	Intercept   float64
	// R is the correlation between Theoretical and Ordered; values close to 1
	// indicate normally distributed data.
	R float64
}

// NormalProbability computes the normal probability plot of x using
// Filliben's estimate of the uniform order statistic medians:
//
//	m₁ = 1 - 0.5^(1/n),  mᵢ = (i - 0.3175)/(n + 0.365),  mₙ = 0.5^(1/n).
func NormalProbability(x []float64) (Probability, error) {
	n := len(x)
	if n < 2 {
		return Probability{}, fmt.Errorf("descriptive: normal probability plot needs at least 2 values, got %d", n)
	}
	ordered := append([]float64(nil), x...)
	sort.Float64s(ordered)

	theoretical := make([]float64, n)
	for i := range theoretical {
		theoretical[i] = distuv.UnitNormal.Quantile(fillibenPosition(i+1, n))
	}
	intercept, slope := stat.LinearRegression(theoretical, ordered, nil, false)
	return Probability{
		Theoretical: theoretical,
		Ordered:     ordered,
		Slope:       slope,
		Intercept:   intercept,
		R:           stat.Correlation(theoretical, ordered, nil),
	}, nil
}

// fillibenPosition returns the median of the i-th order statistic (1-based)
// of n uniform samples.
func fillibenPosition(i, n int) float64 {
	last := math.Pow(0.5, 1/float64(n))
	switch i {
	case 1:
		return 1 - last
	case n:
		return last
	default:
		return (float64(i) - 0.3175) / (float64(n) + 0.365)
	}
}
