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

package interval

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMeanT(t *testing.T) {
	// Sample {2, 1, 3, 4}: mean 2.5, variance 5/3.
	got, err := MeanT(2.5, math.Sqrt(5.0/3.0), 4, 0.95)
	if err != nil {
		t.Fatalf("MeanT: got err %v", err)
	}
	want := Interval{
		PointEstimate:   2.5,
		StandardError:   0.6454972243679028,
		CriticalValue:   3.182446305284263,
		MarginOfError:   2.0542602567605206,
		LowerBound:      0.4457397432394794,
		UpperBound:      4.554260256760521,
		ConfidenceLevel: 0.95,
	}
	if diff := cmp.Diff(want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("MeanT: unexpected interval (-want +got):\n%s", diff)
	}
}

func TestMeanTIsSymmetric(t *testing.T) {
	for _, tc := range []struct {
		mean, sd   float64
		n          int
		confidence float64
	}{
		{150.1, 4.9, 1623, 0.95},
		{25.0, 0.8, 1623, 0.95},
		{-3, 2, 10, 0.99},
		{0, 1, 2, 0.5},
		{7, 0, 30, 0.9},
	} {
		got, err := MeanT(tc.mean, tc.sd, tc.n, tc.confidence)
		if err != nil {
			t.Fatalf("MeanT(%f, %f, %d, %f): got err %v", tc.mean, tc.sd, tc.n, tc.confidence, err)
		}
		if d := got.PointEstimate - got.LowerBound - got.MarginOfError; math.Abs(d) > 1e-9 {
			t.Errorf("MeanT(%f, %f, %d, %f): mean - lower = %f, want margin %f",
				tc.mean, tc.sd, tc.n, tc.confidence, got.PointEstimate-got.LowerBound, got.MarginOfError)
		}
		if d := got.UpperBound - got.PointEstimate - got.MarginOfError; math.Abs(d) > 1e-9 {
			t.Errorf("MeanT(%f, %f, %d, %f): upper - mean = %f, want margin %f",
				tc.mean, tc.sd, tc.n, tc.confidence, got.UpperBound-got.PointEstimate, got.MarginOfError)
		}
		if !got.Contains(tc.mean) {
			t.Errorf("MeanT(%f, %f, %d, %f) = [%f, %f], does not contain the mean",
				tc.mean, tc.sd, tc.n, tc.confidence, got.LowerBound, got.UpperBound)
		}
	}
}

func TestMeanTWidensWithConfidence(t *testing.T) {
	prev := 0.0
	for _, c := range []float64{0.5, 0.8, 0.9, 0.95, 0.99, 0.999} {
		got, err := MeanT(10, 2, 25, c)
		if err != nil {
			t.Fatalf("MeanT(confidence=%f): got err %v", c, err)
		}
		if got.Width() <= prev {
			t.Errorf("MeanT(confidence=%f): width %f is not larger than %f", c, got.Width(), prev)
		}
		prev = got.Width()
	}
}

func TestMeanTErrors(t *testing.T) {
	for _, tc := range []struct {
		desc       string
		mean, sd   float64
		n          int
		confidence float64
	}{
		{"one observation", 1, 1, 1, 0.95},
		{"negative sd", 1, -1, 10, 0.95},
		{"NaN sd", 1, math.NaN(), 10, 0.95},
		{"infinite sd", 1, math.Inf(1), 10, 0.95},
		{"NaN mean", math.NaN(), 1, 10, 0.95},
		{"confidence one", 1, 1, 10, 1},
		{"confidence zero", 1, 1, 10, 0},
	} {
		if _, err := MeanT(tc.mean, tc.sd, tc.n, tc.confidence); err == nil {
			t.Errorf("MeanT(%s): got nil error", tc.desc)
		}
	}
}

func TestProportionZ(t *testing.T) {
	for _, tc := range []struct {
		desc string
		pHat float64
		n    int
		want Interval
	}{
		{
			desc: "interior",
			pHat: 0.9,
			n:    100,
			want: Interval{
				PointEstimate:   0.9,
				StandardError:   0.03,
				CriticalValue:   1.959963984540054,
				MarginOfError:   0.058798919536201616,
				LowerBound:      0.8412010804637984,
				UpperBound:      0.9587989195362017,
				ConfidenceLevel: 0.95,
			},
		},
		{
			desc: "clipped above",
			pHat: 0.99,
			n:    10,
			want: Interval{
				PointEstimate:   0.99,
				StandardError:   0.03146426544510455,
				CriticalValue:   1.959963984540054,
				MarginOfError:   1.959963984540054 * 0.03146426544510455,
				LowerBound:      0.9283311729275869,
				UpperBound:      1,
				ConfidenceLevel: 0.95,
			},
		},
		{
			desc: "all conforming",
			pHat: 1,
			n:    50,
			want: Interval{
				PointEstimate:   1,
				CriticalValue:   1.959963984540054,
				LowerBound:      1,
				UpperBound:      1,
				ConfidenceLevel: 0.95,
			},
		},
	} {
		got, err := ProportionZ(tc.pHat, tc.n, 0.95)
		if err != nil {
			t.Fatalf("ProportionZ(%s): got err %v", tc.desc, err)
		}
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
			t.Errorf("ProportionZ(%s): unexpected interval (-want +got):\n%s", tc.desc, diff)
		}
	}
}

func TestProportionZStaysInUnitInterval(t *testing.T) {
	for _, n := range []int{1, 2, 5, 30, 1623} {
		for _, p := range []float64{0, 0.01, 0.2, 0.5, 0.8, 0.99, 1} {
			got, err := ProportionZ(p, n, 0.99)
			if err != nil {
				t.Fatalf("ProportionZ(%f, %d): got err %v", p, n, err)
			}
			if got.LowerBound < 0 || got.UpperBound > 1 || got.LowerBound > got.UpperBound {
				t.Errorf("ProportionZ(%f, %d) = [%f, %f], want a sub-interval of [0, 1]", p, n, got.LowerBound, got.UpperBound)
			}
		}
	}
}

func TestProportionZErrors(t *testing.T) {
	for _, tc := range []struct {
		desc       string
		pHat       float64
		n          int
		confidence float64
	}{
		{"no trials", 0.5, 0, 0.95},
		{"negative proportion", -0.1, 10, 0.95},
		{"proportion above one", 1.1, 10, 0.95},
		{"NaN proportion", math.NaN(), 10, 0.95},
		{"NaN confidence", 0.5, 10, math.NaN()},
	} {
		if _, err := ProportionZ(tc.pHat, tc.n, tc.confidence); err == nil {
			t.Errorf("ProportionZ(%s): got nil error", tc.desc)
		}
	}
}
