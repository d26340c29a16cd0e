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

// Package plots renders the descriptive and conformity figures of a lot
// analysis as multi-panel images.
package plots

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/golang/glog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	// Register the image formats a figure can be written as.
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Figure is a grid of panels with an optional title.
type Figure struct {
	Title string
	// Panels[row][col]; every row has the same number of columns.
	Panels        [][]*plot.Plot
	Width, Height vg.Length
}

func (f *Figure) tiles() (draw.Tiles, error) {
	if len(f.Panels) == 0 || len(f.Panels[0]) == 0 {
		return draw.Tiles{}, fmt.Errorf("figure %q has no panels", f.Title)
	}
	cols := len(f.Panels[0])
	for i, row := range f.Panels {
		if len(row) != cols {
			return draw.Tiles{}, fmt.Errorf("figure %q: row %d has %d panels, want %d", f.Title, i, len(row), cols)
		}
	}
	return draw.Tiles{
		Rows:      len(f.Panels),
		Cols:      cols,
		PadTop:    vg.Millimeter * 2,
		PadBottom: vg.Millimeter * 2,
		PadLeft:   vg.Millimeter * 2,
		PadRight:  vg.Millimeter * 2,
		PadX:      vg.Millimeter * 6,
		PadY:      vg.Millimeter * 6,
	}, nil
}

// WriterTo renders the figure in the given format: png, jpg, jpeg, tif, tiff,
// svg or pdf.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	tiles, err := f.tiles()
	if err != nil {
		return nil, err
	}
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, strings.ToLower(format))
	if err != nil {
		return nil, err
	}
	dc := draw.New(c)
	dc.FillPolygon(color.White, []vg.Point{
		dc.Min, {X: dc.Max.X, Y: dc.Min.Y}, dc.Max, {X: dc.Min.X, Y: dc.Max.Y},
	})
	if f.Title != "" {
		style := text.Style{
			Color:   color.Black,
			Font:    font.From(plot.DefaultFont, 16),
			XAlign:  draw.XCenter,
			YAlign:  draw.YTop,
			Handler: plot.DefaultTextHandler,
		}
		dc.FillText(style, vg.Point{X: dc.Center().X, Y: dc.Max.Y - vg.Millimeter*2}, f.Title)
		dc.Max.Y -= style.Height(f.Title) + vg.Millimeter*4
	}
	canvases := plot.Align(f.Panels, tiles, dc)
	for j, row := range f.Panels {
		for i, p := range row {
			p.Draw(canvases[j][i])
		}
	}
	return c, nil
}

// Save writes the figure to file, choosing the format from its extension.
func (f *Figure) Save(file string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(file), ".")
	if format == "" {
		return fmt.Errorf("couldn't determine image format of %q: missing extension", file)
	}
	wt, err := f.WriterTo(format)
	if err != nil {
		return fmt.Errorf("couldn't render figure %q: %w", f.Title, err)
	}
	out, err := os.Create(file)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if _, err = wt.WriteTo(out); err != nil {
		return fmt.Errorf("couldn't write figure to %q: %w", file, err)
	}
	log.Infof("Wrote figure %q to %s", f.Title, file)
	return nil
}
