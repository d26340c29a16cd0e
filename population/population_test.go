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

package population

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/lot-quality-control/rand"
	"github.com/grd/stat"
)

func nearEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestGenerateStatistics(t *testing.T) {
	for _, tc := range []struct {
		desc      string
		mean, sd  float64
		dimension bool
	}{
		{"weight", 150, 5, false},
		{"dimension", 25.0, 0.8, true},
	} {
		opt := DefaultOptions()
		opt.Size = 20000
		opt.Source = rand.NewSource(7)
		p, err := Generate(opt)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		column := p.Weights()
		if tc.dimension {
			column = p.Dimensions()
		}
		samples := stat.Float64Slice(column)
		sampleMean, sampleVariance := stat.Mean(samples), stat.Variance(samples)
		variance := tc.sd * tc.sd
		// The sample mean is approximately Gaussian with standard deviation
		// sqrt(variance / n). meanErrorTolerance is its 99.9995% quantile, so the
		// test falsely rejects with a probability of 10⁻⁵.
		meanErrorTolerance := 4.41717 * math.Sqrt(variance/float64(opt.Size))
		// For Gaussian samples the sample variance has a standard deviation of
		// sqrt(2) * variance / sqrt(n).
		varianceErrorTolerance := 4.41717 * math.Sqrt2 * variance / math.Sqrt(float64(opt.Size))
		if !nearEqual(sampleMean, tc.mean, meanErrorTolerance) {
			t.Errorf("%s: got mean = %f, want %f", tc.desc, sampleMean, tc.mean)
		}
		if !nearEqual(sampleVariance, variance, varianceErrorTolerance) {
			t.Errorf("%s: got variance = %f, want %f", tc.desc, sampleVariance, variance)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	opt := DefaultOptions()
	opt.Source = rand.NewSource(42)
	p1, err := Generate(opt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	opt.Source = rand.NewSource(42)
	p2, err := Generate(opt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if diff := cmp.Diff(p1.Parts(), p2.Parts()); diff != "" {
		t.Errorf("Generate with equal seeds: parts differ (-first +second):\n%s", diff)
	}
	if p1.Len() != 5000 {
		t.Errorf("Len: got %d, want 5000", p1.Len())
	}
	if p1.Indices() != nil {
		t.Errorf("Indices of a generated population: got %v, want nil", p1.Indices())
	}
}

func TestGenerateNilOptions(t *testing.T) {
	p, err := Generate(nil)
	if err != nil {
		t.Fatalf("Generate(nil): %v", err)
	}
	if p.Len() != DefaultOptions().Size {
		t.Errorf("Generate(nil).Len(): got %d, want %d", p.Len(), DefaultOptions().Size)
	}
}

func TestGenerateInvalidOptions(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		modify func(*Options)
	}{
		{"size of one", func(o *Options) { o.Size = 1 }},
		{"zero weight sd", func(o *Options) { o.WeightStdDev = 0 }},
		{"negative dimension sd", func(o *Options) { o.DimensionStdDev = -0.8 }},
		{"NaN weight mean", func(o *Options) { o.WeightMean = math.NaN() }},
		{"infinite dimension mean", func(o *Options) { o.DimensionMean = math.Inf(1) }},
	} {
		opt := DefaultOptions()
		tc.modify(opt)
		if _, err := Generate(opt); err == nil {
			t.Errorf("Generate with %s: got nil error, want error", tc.desc)
		}
	}
}

func TestSubset(t *testing.T) {
	p, err := New([]float64{1, 2, 3, 4}, []float64{10, 20, 30, 40})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	s, err := p.Subset([]int{3, 1})
	if err != nil {
		t.Fatalf("Subset: %v", err)
	}
	want := []Part{{Weight: 4, Dimension: 40}, {Weight: 2, Dimension: 20}}
	if diff := cmp.Diff(want, s.Parts()); diff != "" {
		t.Errorf("Subset: parts differ (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{3, 1}, s.Indices()); diff != "" {
		t.Errorf("Subset: indices differ (-want +got):\n%s", diff)
	}
	if _, err := p.Subset([]int{4}); err == nil {
		t.Errorf("Subset with row out of range: got nil error, want error")
	}
}

func TestColumnsAreCopies(t *testing.T) {
	w := []float64{1, 2}
	p, err := New(w, []float64{3, 4})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	w[0] = 100
	got := p.Weights()
	got[1] = 200
	if diff := cmp.Diff([]float64{1, 2}, p.Weights()); diff != "" {
		t.Errorf("Weights after mutating inputs and outputs (-want +got):\n%s", diff)
	}
}

func TestNewLengthMismatch(t *testing.T) {
	if _, err := New([]float64{1}, []float64{1, 2}); err == nil {
		t.Errorf("New with mismatched columns: got nil error, want error")
	}
}

func TestSummary(t *testing.T) {
	p, err := New([]float64{140, 150, 160}, []float64{24, 25, 26})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := Summary{Size: 3, WeightMean: 150, DimensionMean: 25}
	if diff := cmp.Diff(want, p.Summary()); diff != "" {
		t.Errorf("Summary (-want +got):\n%s", diff)
	}
}
