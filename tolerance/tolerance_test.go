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

package tolerance

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/lot-quality-control/population"
	"github.com/google/lot-quality-control/rand"
	"github.com/google/lot-quality-control/sampling"
	"github.com/google/lot-quality-control/stattestutils"
)

func TestBoundsAreInclusive(t *testing.T) {
	b := DefaultBounds()
	for _, tc := range []struct {
		part population.Part
		want bool
	}{
		{population.Part{Weight: 150, Dimension: 25}, true},
		{population.Part{Weight: 140, Dimension: 23.5}, true},
		{population.Part{Weight: 160, Dimension: 26.5}, true},
		{population.Part{Weight: 139.999, Dimension: 25}, false},
		{population.Part{Weight: 160.001, Dimension: 25}, false},
		{population.Part{Weight: 150, Dimension: 23.499}, false},
		{population.Part{Weight: 150, Dimension: 26.501}, false},
		{population.Part{Weight: 170, Dimension: 20}, false},
		{population.Part{Weight: math.NaN(), Dimension: 25}, false},
	} {
		if got := b.Check(tc.part); got != tc.want {
			t.Errorf("Check(%+v) = %t, want %t", tc.part, got, tc.want)
		}
	}
}

func TestBoundsValidate(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		b       Bounds
		wantErr bool
	}{
		{"default", DefaultBounds(), false},
		{"inverted weight", Bounds{WeightMin: 160, WeightMax: 140, DimensionMin: 23.5, DimensionMax: 26.5}, true},
		{"empty dimension", Bounds{WeightMin: 140, WeightMax: 160, DimensionMin: 25, DimensionMax: 25}, true},
		{"NaN limit", Bounds{WeightMin: math.NaN(), WeightMax: 160, DimensionMin: 23.5, DimensionMax: 26.5}, true},
		{"infinite limit", Bounds{WeightMin: 140, WeightMax: 160, DimensionMin: 23.5, DimensionMax: math.Inf(1)}, true},
	} {
		if err := tc.b.Validate(); (err != nil) != tc.wantErr {
			t.Errorf("Validate(%s): got err %v, wantErr %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestTargetsValidate(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		tg      Targets
		wantErr bool
	}{
		{"default", DefaultTargets(), false},
		{"NaN weight", Targets{WeightMean: math.NaN(), DimensionMean: 25, Conforming: 0.95}, true},
		{"infinite dimension", Targets{WeightMean: 150, DimensionMean: math.Inf(-1), Conforming: 0.95}, true},
		{"conforming one", Targets{WeightMean: 150, DimensionMean: 25, Conforming: 1}, true},
	} {
		if err := tc.tg.Validate(); (err != nil) != tc.wantErr {
			t.Errorf("Validate(%s): got err %v, wantErr %t", tc.desc, err, tc.wantErr)
		}
	}
}

func TestEvaluate(t *testing.T) {
	sample, err := population.New(
		[]float64{150, 140, 161, 155, 139, 160},
		[]float64{25, 23.4, 25, 26.5, 30, 23.5},
	)
	if err != nil {
		t.Fatalf("population.New: got err %v", err)
	}
	got, err := Evaluate(sample, DefaultBounds())
	if err != nil {
		t.Fatalf("Evaluate: got err %v", err)
	}
	want := Conformity{
		N:                   6,
		WeightConforming:    4,
		DimensionConforming: 4,
		Conforming:          3,
		Mask:                []bool{true, false, false, true, false, true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Evaluate: unexpected conformity (-want +got):\n%s", diff)
	}
	if got.Proportion() != 0.5 {
		t.Errorf("Proportion() = %f, want 0.5", got.Proportion())
	}
	if p := got.WeightProportion(); math.Abs(p-4.0/6.0) > 1e-12 {
		t.Errorf("WeightProportion() = %f, want %f", p, 4.0/6.0)
	}
	if p := got.DimensionProportion(); math.Abs(p-4.0/6.0) > 1e-12 {
		t.Errorf("DimensionProportion() = %f, want %f", p, 4.0/6.0)
	}
}

// The conforming proportion equals the number of parts passing all four
// limit checks divided by the sample size.
func TestConformityProportionMatchesCount(t *testing.T) {
	pop, err := population.Generate(&population.Options{
		Size:            3000,
		WeightMean:      150,
		WeightStdDev:    6,
		DimensionMean:   25,
		DimensionStdDev: 1,
		Source:          rand.NewSource(7),
	})
	if err != nil {
		t.Fatalf("Generate: got err %v", err)
	}
	sample, err := sampling.Draw(pop, 1000, rand.NewSource(8))
	if err != nil {
		t.Fatalf("Draw: got err %v", err)
	}
	b := DefaultBounds()
	got, err := Evaluate(sample, b)
	if err != nil {
		t.Fatalf("Evaluate: got err %v", err)
	}
	parts := sample.Parts()
	want := stattestutils.CountIf(len(parts), func(i int) bool {
		p := parts[i]
		return p.Weight >= b.WeightMin && p.Weight <= b.WeightMax &&
			p.Dimension >= b.DimensionMin && p.Dimension <= b.DimensionMax
	})
	if got.Conforming != want {
		t.Errorf("Conforming = %d, want %d", got.Conforming, want)
	}
	if p, wantP := got.Proportion(), float64(want)/float64(sample.Len()); p != wantP {
		t.Errorf("Proportion() = %f, want %f", p, wantP)
	}
	masked := stattestutils.CountIf(len(got.Mask), func(i int) bool { return got.Mask[i] })
	if masked != got.Conforming {
		t.Errorf("Mask has %d conforming parts, want %d", masked, got.Conforming)
	}
}

func TestEvaluateErrors(t *testing.T) {
	empty, err := population.New(nil, nil)
	if err != nil {
		t.Fatalf("population.New: got err %v", err)
	}
	one, err := population.New([]float64{150}, []float64{25})
	if err != nil {
		t.Fatalf("population.New: got err %v", err)
	}
	for _, tc := range []struct {
		desc   string
		sample *population.Population
		b      Bounds
	}{
		{"nil sample", nil, DefaultBounds()},
		{"empty sample", empty, DefaultBounds()},
		{"invalid bounds", one, Bounds{WeightMin: 1, WeightMax: 0, DimensionMin: 0, DimensionMax: 1}},
	} {
		if _, err := Evaluate(tc.sample, tc.b); err == nil {
			t.Errorf("Evaluate(%s): got nil error", tc.desc)
		}
	}
}
