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

// Package hypothesis implements the significance tests used to accept or
// reject a lot: a one-sample Student's t-test for a mean and a one-sample
// z-test for a proportion.
package hypothesis

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/lot-quality-control/checks"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ErrZeroVariance is returned by the t-test when all observations are equal.
var ErrZeroVariance = errors.New("hypothesis: sample standard deviation is zero")

// Tail is an enum type. Its values select the alternative hypothesis.
type Tail int

// Alternatives of a test.
const (
	// TwoSided tests H1: θ ≠ θ0.
	TwoSided Tail = iota
	// Less tests H1: θ < θ0.
	Less
	// Greater tests H1: θ > θ0.
	Greater
)

func (t Tail) String() string {
	switch t {
	case TwoSided:
		return "two-sided"
	case Less:
		return "one-sided (left)"
	case Greater:
		return "one-sided (right)"
	default:
		return fmt.Sprintf("Tail(%d)", int(t))
	}
}

func (t Tail) check() error {
	switch t {
	case TwoSided, Less, Greater:
		return nil
	default:
		return fmt.Errorf("hypothesis: unknown tail %v", t)
	}
}

// relation returns the operators of the null and alternative hypotheses.
func (t Tail) relation() (null, alternative string) {
	switch t {
	case Less:
		return "≥", "<"
	case Greater:
		return "≤", ">"
	default:
		return "=", "≠"
	}
}

// Result is the outcome of a significance test.
type Result struct {
	Statistic float64
	PValue    float64
	// CriticalValue is the boundary of the rejection region of the statistic.
	// For a two-sided test the region is |Statistic| > CriticalValue; for Less
	// it is Statistic < CriticalValue, for Greater Statistic > CriticalValue.
	CriticalValue float64
	// DegreesOfFreedom is n-1 for t-tests and 0 for z-tests.
	DegreesOfFreedom float64
	Tail             Tail
	Alpha            float64
	// Reject is true if the p-value is strictly less than Alpha.
	Reject bool
	// Null and Alternative describe the hypotheses, e.g. "μ = 150" and "μ ≠ 150".
	Null, Alternative string
}

// InAcceptanceRegion reports whether the statistic lies outside the rejection
// region bounded by CriticalValue.
func (r Result) InAcceptanceRegion() bool {
	switch r.Tail {
	case Less:
		return r.Statistic >= r.CriticalValue
	case Greater:
		return r.Statistic <= r.CriticalValue
	default:
		return math.Abs(r.Statistic) <= r.CriticalValue
	}
}

// pValue returns the p-value of statistic x for a distribution with the given
// CDF and survival function.
func pValue(x float64, tail Tail, cdf, survival func(float64) float64) float64 {
	switch tail {
	case Less:
		return cdf(x)
	case Greater:
		return survival(x)
	default:
		return math.Min(1, 2*survival(math.Abs(x)))
	}
}

// criticalValue returns the boundary of the rejection region at level alpha.
func criticalValue(alpha float64, tail Tail, quantile func(float64) float64) float64 {
	switch tail {
	case Less:
		return quantile(alpha)
	case Greater:
		return quantile(1 - alpha)
	default:
		return quantile(1 - alpha/2)
	}
}

func checkArgs(alpha float64, tail Tail) error {
	if err := checks.CheckSignificance(alpha); err != nil {
		return err
	}
	return tail.check()
}

// OneSampleT tests whether the mean of x equals mu0.
func OneSampleT(x []float64, mu0, alpha float64, tail Tail) (Result, error) {
	if len(x) < 2 {
		return Result{}, fmt.Errorf("hypothesis: t-test needs at least 2 observations, got %d", len(x))
	}
	mean, sd := stat.MeanStdDev(x, nil)
	return OneSampleTFromSummary(mean, sd, len(x), mu0, alpha, tail)
}

// OneSampleTFromSummary is OneSampleT computed from the sample mean, sample
// standard deviation (n-1 degrees of freedom) and size.
func OneSampleTFromSummary(mean, sd float64, n int, mu0, alpha float64, tail Tail) (Result, error) {
	if err := checkArgs(alpha, tail); err != nil {
		return Result{}, err
	}
	if n < 2 {
		return Result{}, fmt.Errorf("hypothesis: t-test needs at least 2 observations, got %d", n)
	}
	if err := checks.CheckFinite("Mean", mean); err != nil {
		return Result{}, err
	}
	if err := checks.CheckFinite("Mu0", mu0); err != nil {
		return Result{}, err
	}
	if sd == 0 {
		return Result{}, ErrZeroVariance
	}
	if err := checks.CheckStdDev(sd); err != nil {
		return Result{}, err
	}

	df := float64(n - 1)
	t := (mean - mu0) / (sd / math.Sqrt(float64(n)))
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	p := pValue(t, tail, dist.CDF, dist.Survival)
	null, alternative := tail.relation()
	return Result{
		Statistic:        t,
		PValue:           p,
		CriticalValue:    criticalValue(alpha, tail, dist.Quantile),
		DegreesOfFreedom: df,
		Tail:             tail,
		Alpha:            alpha,
		Reject:           p < alpha,
		Null:             fmt.Sprintf("μ %s %g", null, mu0),
		Alternative:      fmt.Sprintf("μ %s %g", alternative, mu0),
	}, nil
}

// ProportionZ tests whether the proportion of successes among n trials equals
// p0, using the normal approximation z = (p̂ - p0) / sqrt(p0(1-p0)/n).
func ProportionZ(successes, n int, p0, alpha float64, tail Tail) (Result, error) {
	if err := checkArgs(alpha, tail); err != nil {
		return Result{}, err
	}
	if n < 1 {
		return Result{}, fmt.Errorf("hypothesis: proportion test needs at least 1 trial, got %d", n)
	}
	if successes < 0 || successes > n {
		return Result{}, fmt.Errorf("hypothesis: got %d successes in %d trials", successes, n)
	}
	if err := checks.CheckProportionStrict(p0, "P0"); err != nil {
		return Result{}, err
	}

	pHat := float64(successes) / float64(n)
	z := (pHat - p0) / math.Sqrt(p0*(1-p0)/float64(n))
	dist := distuv.UnitNormal
	p := pValue(z, tail, dist.CDF, dist.Survival)
	null, alternative := tail.relation()
	return Result{
		Statistic:     z,
		PValue:        p,
		CriticalValue: criticalValue(alpha, tail, dist.Quantile),
		Tail:          tail,
		Alpha:         alpha,
		Reject:        p < alpha,
		Null:          fmt.Sprintf("p %s %g", null, p0),
		Alternative:   fmt.Sprintf("p %s %g", alternative, p0),
	}, nil
}
