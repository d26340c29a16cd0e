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

// Package report prints a lot analysis as a plain-text report.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/lot-quality-control/descriptive"
	"github.com/google/lot-quality-control/hypothesis"
	"github.com/google/lot-quality-control/interval"
	"github.com/google/lot-quality-control/lot"
)

// printer remembers the first write error so that sections can be printed
// without checking every call.
type printer struct {
	w   io.Writer
	err error

	heading, approved, rejected lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	// Styles degrade to plain text when w is not a terminal.
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:        w,
		heading:  r.NewStyle().Bold(true),
		approved: r.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		rejected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
	}
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) section(width int, title string) {
	rule := strings.Repeat("=", width)
	p.printf("\n%s\n%s\n%s\n", rule, p.heading.Render(title), rule)
}

func (p *printer) subsection(title string) {
	p.printf("\n%s\n%s\n", p.heading.Render(title), strings.Repeat("-", len([]rune(title))))
}

// Write prints every section of the analysis to w.
func Write(w io.Writer, a *lot.Analysis) error {
	p := newPrinter(w)
	header(p, a)
	samplingSection(p, a)
	descriptiveSection(p, a)
	testSection(p, a)
	inferenceSection(p, a)
	decisionSection(p, a)
	summarySection(p, a)
	return p.err
}

func header(p *printer, a *lot.Analysis) {
	p.section(60, "QUALITY CONTROL - STATISTICAL ANALYSIS")
	p.printf("Lot: %d parts produced\n", a.Population.Len())
	p.printf("Variables analysed: Weight and Dimension\n")

	s := a.Population.Summary()
	p.section(50, "1. POPULATION")
	p.printf("Total population: %d parts\n", s.Size)
	p.printf("Population mean weight: %.2fg\n", s.WeightMean)
	p.printf("Population mean dimension: %.2fmm\n", s.DimensionMean)
}

func samplingSection(p *printer, a *lot.Analysis) {
	b := a.Config.Bounds
	plan := a.Plan
	p.section(50, "2. SAMPLING")
	p.printf("Product specifications:\n")
	p.printf("  weight_min: %g g\n  weight_max: %g g\n", b.WeightMin, b.WeightMax)
	p.printf("  dimension_min: %g mm\n  dimension_max: %g mm\n", b.DimensionMin, b.DimensionMax)

	p.printf("\nSample size computation:\n")
	p.printf("  Population (N): %d\n", plan.PopulationSize)
	p.printf("  Confidence level: %g%% (z = %.4g)\n", 100*plan.ConfidenceLevel, plan.Z)
	p.printf("  Estimated proportion: %g\n", plan.EstimatedProportion)
	p.printf("  Margin of error: %g%%\n", 100*plan.MarginOfError)
	p.printf("  Computed sample size: %d parts (%.2f rounded up)\n", plan.SampleSize, plan.Unrounded)
	p.printf("\nSample drawn: %d parts\n", a.Sample.Len())
	p.printf("Method: simple random sampling without replacement\n")
}

func descriptiveSection(p *printer, a *lot.Analysis) {
	p.section(50, "3. DESCRIPTIVE ANALYSIS OF THE SAMPLE")
	summary(p, "DESCRIPTIVE STATISTICS - WEIGHT (grams)", a.Weight)
	summary(p, "DESCRIPTIVE STATISTICS - DIMENSION (mm)", a.Dimension)
}

func summary(p *printer, title string, s descriptive.Summary) {
	p.subsection(title)
	p.printf("N: %d\n", s.N)
	for _, row := range []struct {
		name  string
		value float64
	}{
		{"Mean", s.Mean},
		{"Median", s.Median},
		{"Mode", s.Mode},
		{"Standard deviation", s.StdDev},
		{"Variance", s.Variance},
		{"Coefficient of variation (%)", s.CoefficientOfVariation},
		{"Minimum", s.Min},
		{"Maximum", s.Max},
		{"Range", s.Range},
		{"First quartile", s.Q1},
		{"Third quartile", s.Q3},
		{"Interquartile range", s.IQR},
		{"Skewness", s.Skewness},
		{"Kurtosis", s.Kurtosis},
	} {
		p.printf("%s: %.3f\n", row.name, row.value)
	}
}

func testSection(p *printer, a *lot.Analysis) {
	p.section(50, "4. HYPOTHESIS TESTS")
	meanTest(p, "TEST 1: WEIGHT OF THE PARTS", "weight", "g", a.WeightTest)
	meanTest(p, "TEST 2: DIMENSION OF THE PARTS", "dimension", "mm", a.DimensionTest)

	c := a.Conformity
	p.subsection("TEST 3: CONFORMITY WITH THE SPECIFICATIONS")
	p.printf("Parts with conforming weight: %d/%d (%.1f%%)\n", c.WeightConforming, c.N, 100*c.WeightProportion())
	p.printf("Parts with conforming dimension: %d/%d (%.1f%%)\n", c.DimensionConforming, c.N, 100*c.DimensionProportion())
	p.printf("Fully conforming parts: %d/%d (%.1f%%)\n", c.Conforming, c.N, 100*c.Proportion())

	r := a.ConformityTest
	required := 100 * a.Config.Targets.Conforming
	p.printf("\nH0: %s (at least %g%% of the parts conform)\n", r.Null, required)
	p.printf("H1: %s (less than %g%% of the parts conform)\n", r.Alternative, required)
	p.printf("Test: %s\n", r.Tail)
	p.printf("\nResults - PROPORTION:\n")
	p.printf("  Observed proportion: %.4f\n", c.Proportion())
	p.printf("  Z statistic: %.4f\n", r.Statistic)
	p.printf("  p-value: %.6f\n", r.PValue)
	p.printf("  Critical value: %.4f\n", r.CriticalValue)
	if r.Reject {
		p.printf("  Decision: Reject H0\n  Conclusion: LESS than %g%% of the parts conform\n", required)
	} else {
		p.printf("  Decision: Do not reject H0\n  Conclusion: AT LEAST %g%% of the parts conform\n", required)
	}
}

func meanTest(p *printer, title, quantity, unit string, r hypothesis.Result) {
	p.subsection(title)
	p.printf("H0: %s%s (the mean %s conforms to the standard)\n", r.Null, unit, quantity)
	p.printf("H1: %s%s (the mean %s does not conform to the standard)\n", r.Alternative, unit, quantity)
	p.printf("Significance level: α = %g\n", r.Alpha)
	p.printf("Test: %s\n", r.Tail)
	p.printf("\nResults - %s:\n", strings.ToUpper(quantity))
	p.printf("  t statistic: %.4f\n", r.Statistic)
	p.printf("  p-value: %.6f\n", r.PValue)
	p.printf("  Degrees of freedom: %g\n", r.DegreesOfFreedom)
	p.printf("  Critical value (±): %.4f\n", r.CriticalValue)
	if r.Reject {
		p.printf("  Decision: Reject H0\n  Conclusion: The mean %s of the parts does NOT conform to the standard\n", quantity)
	} else {
		p.printf("  Decision: Do not reject H0\n  Conclusion: The mean %s of the parts conforms to the standard\n", quantity)
	}
}

func inferenceSection(p *printer, a *lot.Analysis) {
	p.section(50, "5. STATISTICAL INFERENCE")
	meanInterval(p, "WEIGHT", "g", a.WeightInterval)
	meanInterval(p, "DIMENSION", "mm", a.DimensionInterval)

	ci := a.ConformityInterval
	p.subsection(fmt.Sprintf("CONFIDENCE INTERVAL - PROPORTION (%g%%)", 100*ci.ConfidenceLevel))
	p.printf("  Sample proportion: %.4f\n", ci.PointEstimate)
	p.printf("  Standard error: %.4f\n", ci.StandardError)
	p.printf("  Margin of error: ±%.4f\n", ci.MarginOfError)
	p.printf("  CI: [%.4f, %.4f]\n", ci.LowerBound, ci.UpperBound)
}

func meanInterval(p *printer, quantity, unit string, ci interval.Interval) {
	p.subsection(fmt.Sprintf("CONFIDENCE INTERVAL - %s (%g%%)", quantity, 100*ci.ConfidenceLevel))
	p.printf("  Sample mean: %.3f%s\n", ci.PointEstimate, unit)
	p.printf("  Standard error: %.3f\n", ci.StandardError)
	p.printf("  Margin of error: ±%.3f\n", ci.MarginOfError)
	p.printf("  CI: [%.3f, %.3f]\n", ci.LowerBound, ci.UpperBound)
}

func decisionSection(p *printer, a *lot.Analysis) {
	d := a.Decision
	p.section(60, "6. FINAL DECISION ON THE LOT")
	p.printf("APPROVAL CRITERIA:\n")
	p.printf("  ✓ Mean weight conforms (|t| ≤ t_crit): %t\n", d.WeightMeanOK)
	p.printf("  ✓ Mean dimension conforms (|t| ≤ t_crit): %t\n", d.DimensionMeanOK)
	p.printf("  ✓ Conformity ≥ %g%% (p-value ≥ α): %t\n", 100*d.Conforming, d.ConformityOK)

	style := p.rejected
	if d.Approved() {
		style = p.approved
	}
	p.printf("\nFINAL DECISION:\n%s\n", style.Render("LOT "+d.Label()))

	p.printf("\nJUSTIFICATION:\n")
	for _, line := range d.Justification() {
		p.printf("  • %s\n", line)
	}
	p.printf("\nRECOMMENDATIONS:\n")
	for i, line := range d.Recommendations() {
		p.printf("  %d. %s\n", i+1, line)
	}
}

func summarySection(p *printer, a *lot.Analysis) {
	level := 100 * a.Config.IntervalConfidence
	p.section(50, "FINAL STATISTICAL SUMMARY")
	p.printf("Sample size: %d parts\n", a.Sample.Len())
	p.printf("Weight: μ = %.2f±%.2fg (%g%% CI)\n", a.Weight.Mean, a.WeightInterval.MarginOfError, level)
	p.printf("Dimension: μ = %.2f±%.2fmm (%g%% CI)\n", a.Dimension.Mean, a.DimensionInterval.MarginOfError, level)
	p.printf("Conformity: %.1f%% of the parts\n", 100*a.Conformity.Proportion())
	p.printf("Lot status: %s\n", a.Decision.Label())
	p.section(60, "ANALYSIS COMPLETE")
}
