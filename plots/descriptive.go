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

package plots

import (
	"fmt"
	"image/color"

	"github.com/google/lot-quality-control/descriptive"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// HistogramBins is the number of bins of the distribution panels.
const HistogramBins = 30

// Variable is one measured quantity of the sample together with its
// specification limits.
type Variable struct {
	Name         string // e.g. "Weight"
	Unit         string // e.g. "g"
	Values       []float64
	Mean         float64
	Lower, Upper float64
}

func (v Variable) axisLabel() string {
	return fmt.Sprintf("%s (%s)", v.Name, v.Unit)
}

// Descriptive returns a figure with one row per variable and three panels per
// row: a histogram with the mean and the limits, a box plot and a normal
// Q-Q plot.
func Descriptive(vars []Variable, theme Theme) (*Figure, error) {
	if len(vars) == 0 {
		return nil, fmt.Errorf("couldn't draw descriptive figure: no variables")
	}
	f := &Figure{
		Title:  "Descriptive analysis of the sample",
		Width:  18 * vg.Inch,
		Height: vg.Length(6*len(vars)) * vg.Inch,
	}
	for i, v := range vars {
		hist, err := histogramPanel(v, theme, i)
		if err != nil {
			return nil, fmt.Errorf("couldn't draw %s histogram: %w", v.Name, err)
		}
		box, err := boxPanel(v, theme)
		if err != nil {
			return nil, fmt.Errorf("couldn't draw %s box plot: %w", v.Name, err)
		}
		qq, err := qqPanel(v, theme)
		if err != nil {
			return nil, fmt.Errorf("couldn't draw %s Q-Q plot: %w", v.Name, err)
		}
		f.Panels = append(f.Panels, []*plot.Plot{hist, box, qq})
	}
	return f, nil
}

// verticalLine returns a segment at x spanning [0, height].
func verticalLine(x, height float64, c color.Color, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: height}})
	if err != nil {
		return nil, err
	}
	l.Color = c
	l.Width = vg.Points(1.5)
	l.Dashes = dashes
	return l, nil
}

func histogramPanel(v Variable, theme Theme, row int) (*plot.Plot, error) {
	p := theme.newPlot("Distribution of "+v.Name, v.axisLabel(), "Frequency")
	h, err := plotter.NewHist(plotter.Values(v.Values), HistogramBins)
	if err != nil {
		return nil, err
	}
	h.FillColor = theme.color(row)
	h.Color = color.Black
	p.Add(h)

	var top float64
	for _, b := range h.Bins {
		if b.Weight > top {
			top = b.Weight
		}
	}
	mean, err := verticalLine(v.Mean, top, theme.Accent, plotutil.Dashes(1))
	if err != nil {
		return nil, err
	}
	lower, err := verticalLine(v.Lower, top, theme.Limit, plotutil.Dashes(2))
	if err != nil {
		return nil, err
	}
	upper, err := verticalLine(v.Upper, top, theme.Limit, plotutil.Dashes(2))
	if err != nil {
		return nil, err
	}
	p.Add(mean, lower, upper)
	p.Legend.Add(fmt.Sprintf("Mean: %.2f", v.Mean), mean)
	p.Legend.Add("Lower limit", lower)
	p.Legend.Add("Upper limit", upper)
	p.Legend.Top = true
	return p, nil
}

func boxPanel(v Variable, theme Theme) (*plot.Plot, error) {
	p := theme.newPlot("Box plot of "+v.Name, "", v.axisLabel())
	b, err := plotter.NewBoxPlot(vg.Points(60), 0, plotter.Values(v.Values))
	if err != nil {
		return nil, err
	}
	b.FillColor = theme.Background
	p.Add(b)
	p.NominalX(v.Name)
	return p, nil
}

func qqPanel(v Variable, theme Theme) (*plot.Plot, error) {
	p := theme.newPlot("Q-Q plot of "+v.Name, "Theoretical quantiles", "Ordered values")
	prob, err := descriptive.NormalProbability(v.Values)
	if err != nil {
		return nil, err
	}
	pts := make(plotter.XYs, len(prob.Ordered))
	for i := range pts {
		pts[i].X = prob.Theoretical[i]
		pts[i].Y = prob.Ordered[i]
	}
	s, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	s.GlyphStyle = draw.GlyphStyle{Color: theme.color(0), Radius: vg.Points(2), Shape: draw.CircleGlyph{}}

	first, last := prob.Theoretical[0], prob.Theoretical[len(prob.Theoretical)-1]
	fit, err := plotter.NewLine(plotter.XYs{
		{X: first, Y: prob.Intercept + prob.Slope*first},
		{X: last, Y: prob.Intercept + prob.Slope*last},
	})
	if err != nil {
		return nil, err
	}
	fit.Color = theme.Accent
	fit.Width = vg.Points(1.5)
	p.Add(s, fit)
	p.Legend.Add(fmt.Sprintf("R² = %.4f", prob.R*prob.R), fit)
	p.Legend.Top = true
	return p, nil
}
