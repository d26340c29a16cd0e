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
	"image/color"
	"sort"

	log "github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
)

// DefaultTheme is used when a requested theme is unavailable.
const DefaultTheme = "default"

// Theme is the visual style of a figure.
type Theme struct {
	Name string
	// Palette colours the data series; it has at least four entries.
	Palette []color.Color
	// Background fills the data area of every panel.
	Background color.Color
	// Grid draws major grid lines behind the data.
	Grid bool
	// Accent colours mean and requirement lines, Limit the specification limits.
	Accent, Limit color.Color
}

var themes = map[string]Theme{
	DefaultTheme: {
		Name:       DefaultTheme,
		Palette:    plotutil.DarkColors,
		Background: color.White,
		Accent:     color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
		Limit:      color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	},
	"seaborn": {
		Name:       "seaborn",
		Palette:    plotutil.SoftColors,
		Background: color.RGBA{R: 0xea, G: 0xea, B: 0xf2, A: 0xff},
		Grid:       true,
		Accent:     color.RGBA{R: 0xc4, G: 0x4e, B: 0x52, A: 0xff},
		Limit:      color.RGBA{R: 0xdd, G: 0x84, B: 0x52, A: 0xff},
	},
}

// Themes returns the names of the available themes in lexical order.
func Themes() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme. An unknown name logs a warning and
// yields the default theme.
func LookupTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	log.Warningf("Theme %q is not available, using %q; available themes: %v", name, DefaultTheme, Themes())
	return themes[DefaultTheme]
}

func (t Theme) color(i int) color.Color {
	return t.Palette[i%len(t.Palette)]
}

// newPlot returns an empty panel styled by t.
func (t Theme) newPlot(title, xLabel, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.BackgroundColor = t.Background
	if t.Grid {
		g := plotter.NewGrid()
		g.Vertical.Color = color.White
		g.Horizontal.Color = color.White
		p.Add(g)
	}
	return p
}
