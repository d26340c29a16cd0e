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

	"github.com/google/lot-quality-control/population"
	"github.com/google/lot-quality-control/tolerance"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Conformity returns a figure with two panels: the conformity rate per
// criterion against the required rate, and weight against dimension with
// conforming and nonconforming parts told apart.
func Conformity(sample *population.Population, c tolerance.Conformity, b tolerance.Bounds, required float64, theme Theme) (*Figure, error) {
	if sample == nil || sample.Len() == 0 {
		return nil, fmt.Errorf("couldn't draw conformity figure: empty sample")
	}
	if len(c.Mask) != sample.Len() {
		return nil, fmt.Errorf("couldn't draw conformity figure: %d conformity flags for %d parts", len(c.Mask), sample.Len())
	}
	bars, err := ratePanel(c, required, theme)
	if err != nil {
		return nil, fmt.Errorf("couldn't draw conformity rates: %w", err)
	}
	scatter, err := scatterPanel(sample, c.Mask, b, theme)
	if err != nil {
		return nil, fmt.Errorf("couldn't draw weight vs dimension: %w", err)
	}
	return &Figure{
		Title:  "Conformity of the sample",
		Panels: [][]*plot.Plot{{bars, scatter}},
		Width:  15 * vg.Inch,
		Height: 6 * vg.Inch,
	}, nil
}

func ratePanel(c tolerance.Conformity, required float64, theme Theme) (*plot.Plot, error) {
	p := theme.newPlot("Conformity rate per criterion", "", "Conformity (%)")
	rates := []float64{100 * c.WeightProportion(), 100 * c.DimensionProportion(), 100 * c.Proportion()}
	labels := plotter.XYLabels{XYs: make(plotter.XYs, len(rates)), Labels: make([]string, len(rates))}
	for i, r := range rates {
		// One chart per bar so that each criterion gets its own colour.
		bar, err := plotter.NewBarChart(plotter.Values{r}, vg.Points(60))
		if err != nil {
			return nil, err
		}
		bar.XMin = float64(i)
		bar.Color = theme.color(i + 1)
		bar.LineStyle.Color = color.Black
		p.Add(bar)
		labels.XYs[i] = plotter.XY{X: float64(i), Y: r + 1}
		labels.Labels[i] = fmt.Sprintf("%.1f%%", r)
	}
	values, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range values.TextStyle {
		values.TextStyle[i].XAlign = draw.XCenter
	}
	p.Add(values)

	line := plotter.NewFunction(func(float64) float64 { return 100 * required })
	line.Color = theme.Accent
	line.Width = vg.Points(1.5)
	line.Dashes = plotutil.Dashes(1)
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("Required minimum (%g%%)", 100*required), line)
	p.Legend.Top = true
	p.Legend.Left = true

	p.NominalX("Weight conforming", "Dimension conforming", "Fully conforming")
	p.Y.Min = 0
	p.Y.Max = 105
	return p, nil
}

func scatterPanel(sample *population.Population, mask []bool, b tolerance.Bounds, theme Theme) (*plot.Plot, error) {
	p := theme.newPlot("Weight vs dimension", "Weight (g)", "Dimension (mm)")
	var ok, nok plotter.XYs
	for i, part := range sample.Parts() {
		xy := plotter.XY{X: part.Weight, Y: part.Dimension}
		if mask[i] {
			ok = append(ok, xy)
		} else {
			nok = append(nok, xy)
		}
	}
	for _, series := range []struct {
		name string
		xys  plotter.XYs
		c    color.Color
	}{
		{"Conforming", ok, color.RGBA{R: 0x1a, G: 0x98, B: 0x50, A: 0xb0}},
		{"Nonconforming", nok, color.RGBA{R: 0xd7, G: 0x30, B: 0x27, A: 0xb0}},
	} {
		if len(series.xys) == 0 {
			continue
		}
		s, err := plotter.NewScatter(series.xys)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{Color: series.c, Radius: vg.Points(2.5), Shape: draw.CircleGlyph{}}
		p.Add(s)
		p.Legend.Add(fmt.Sprintf("%s (%d)", series.name, len(series.xys)), s)
	}

	weights, dims := sample.Weights(), sample.Dimensions()
	xMin, xMax := min(floats.Min(weights), b.WeightMin), max(floats.Max(weights), b.WeightMax)
	yMin, yMax := min(floats.Min(dims), b.DimensionMin), max(floats.Max(dims), b.DimensionMax)
	segments := [][2]plotter.XY{
		{{X: b.WeightMin, Y: yMin}, {X: b.WeightMin, Y: yMax}},
		{{X: b.WeightMax, Y: yMin}, {X: b.WeightMax, Y: yMax}},
		{{X: xMin, Y: b.DimensionMin}, {X: xMax, Y: b.DimensionMin}},
		{{X: xMin, Y: b.DimensionMax}, {X: xMax, Y: b.DimensionMax}},
	}
	for i, seg := range segments {
		l, err := plotter.NewLine(plotter.XYs{seg[0], seg[1]})
		if err != nil {
			return nil, err
		}
		l.Color = theme.Limit
		l.Width = vg.Points(1)
		l.Dashes = plotutil.Dashes(2)
		p.Add(l)
		if i == 0 {
			p.Legend.Add("Specification limits", l)
		}
	}
	p.Legend.Top = true
	return p, nil
}
