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

package lot

import (
	"github.com/google/lot-quality-control/plots"
)

// DescriptiveFigure returns the histograms, box plots and Q-Q plots of the
// sample.
func (a *Analysis) DescriptiveFigure(theme plots.Theme) (*plots.Figure, error) {
	b := a.Config.Bounds
	return plots.Descriptive([]plots.Variable{
		{Name: "Weight", Unit: "g", Values: a.Sample.Weights(), Mean: a.Weight.Mean, Lower: b.WeightMin, Upper: b.WeightMax},
		{Name: "Dimension", Unit: "mm", Values: a.Sample.Dimensions(), Mean: a.Dimension.Mean, Lower: b.DimensionMin, Upper: b.DimensionMax},
	}, theme)
}

// ConformityFigure returns the conformity rates and the weight vs dimension
// scatter of the sample.
func (a *Analysis) ConformityFigure(theme plots.Theme) (*plots.Figure, error) {
	return plots.Conformity(a.Sample, a.Conformity, a.Config.Bounds, a.Config.Targets.Conforming, theme)
}
