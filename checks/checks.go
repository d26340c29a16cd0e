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

// Package checks contains argument checks for the quality-control statistics.
package checks

import (
	"fmt"
	"math"

	log "github.com/golang/glog"
)

const (
	confidenceName = "ConfidenceLevel"
	alphaName      = "Alpha"
	marginName     = "MarginOfError"
	proportionName = "Proportion"
	stdDevName     = "StdDev"
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("There should be 0 or 1 'name' parameter, got %d", len(nameSlice))
	}
	return name, nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// CheckConfidenceLevel returns an error if the confidence level is not within (0, 1).
func CheckConfidenceLevel(confidence float64, name ...string) error {
	n, err := verifyName(confidenceName, name)
	if err != nil {
		return err
	}
	if !finite(confidence) || confidence <= 0 || confidence >= 1 {
		return fmt.Errorf("%s is %f, must be within (0, 1) and finite", n, confidence)
	}
	return nil
}

// CheckSignificance returns an error if the significance level α is not within (0, 1).
func CheckSignificance(alpha float64, name ...string) error {
	n, err := verifyName(alphaName, name)
	if err != nil {
		return err
	}
	if !finite(alpha) || alpha <= 0 || alpha >= 1 {
		return fmt.Errorf("%s is %f, must be within (0, 1) and finite", n, alpha)
	}
	return nil
}

// CheckMarginOfError returns an error if the margin of error E is not within (0, 1).
func CheckMarginOfError(margin float64, name ...string) error {
	n, err := verifyName(marginName, name)
	if err != nil {
		return err
	}
	if !finite(margin) || margin <= 0 || margin >= 1 {
		return fmt.Errorf("%s is %f, must be within (0, 1) and finite", n, margin)
	}
	return nil
}

// CheckProportion returns an error if p is not within [0, 1].
func CheckProportion(p float64, name ...string) error {
	n, err := verifyName(proportionName, name)
	if err != nil {
		return err
	}
	if math.IsNaN(p) {
		return fmt.Errorf("%s cannot be NaN", n)
	}
	if p < 0 || p > 1 {
		return fmt.Errorf("%s is %f, must be within [0, 1]", n, p)
	}
	return nil
}

// CheckProportionStrict returns an error if p is not within (0, 1).
func CheckProportionStrict(p float64, name ...string) error {
	n, err := verifyName(proportionName, name)
	if err != nil {
		return err
	}
	if math.IsNaN(p) {
		return fmt.Errorf("%s cannot be NaN", n)
	}
	if p <= 0 || p >= 1 {
		return fmt.Errorf("%s is %f, must be strictly within (0, 1)", n, p)
	}
	return nil
}

// CheckPopulationSize returns an error if the population has fewer than two parts.
func CheckPopulationSize(size int) error {
	if size < 2 {
		return fmt.Errorf("PopulationSize is %d, must be at least 2", size)
	}
	return nil
}

// CheckSampleSize returns an error if n is not within [2, populationSize].
func CheckSampleSize(n, populationSize int) error {
	if n < 2 {
		return fmt.Errorf("SampleSize is %d, must be at least 2", n)
	}
	if n > populationSize {
		return fmt.Errorf("SampleSize is %d, cannot exceed the population size %d", n, populationSize)
	}
	if n == populationSize {
		log.Warningf("SampleSize equals the population size %d: the sample is a census", populationSize)
	}
	return nil
}

// CheckStdDev returns an error if σ is nonpositive or not finite.
func CheckStdDev(sigma float64, name ...string) error {
	n, err := verifyName(stdDevName, name)
	if err != nil {
		return err
	}
	if !finite(sigma) || sigma <= 0 {
		return fmt.Errorf("%s is %f, must be strictly positive and finite", n, sigma)
	}
	return nil
}

// CheckFinite returns an error if x is NaN or ±∞.
func CheckFinite(name string, x float64) error {
	if !finite(x) {
		return fmt.Errorf("%s is %f, must be finite", name, x)
	}
	return nil
}

// CheckBounds returns an error if lower is not strictly smaller than upper, or if
// either parameter is NaN or ±∞.
func CheckBounds(label string, lower, upper float64) error {
	if math.IsNaN(lower) {
		return fmt.Errorf("%s: lower bound cannot be NaN", label)
	}
	if math.IsNaN(upper) {
		return fmt.Errorf("%s: upper bound cannot be NaN", label)
	}
	if math.IsInf(lower, 0) || math.IsInf(upper, 0) {
		return fmt.Errorf("%s: bounds cannot be infinity", label)
	}
	if lower > upper {
		return fmt.Errorf("%s: upper bound (%f) must be larger than lower bound (%f)", label, upper, lower)
	}
	if lower == upper {
		return fmt.Errorf("%s: lower and upper bounds are both %f, they cannot be equal to each other", label, lower)
	}
	return nil
}
