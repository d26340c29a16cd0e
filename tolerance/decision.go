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
	"fmt"

	log "github.com/golang/glog"
	"github.com/google/lot-quality-control/checks"
	"github.com/google/lot-quality-control/hypothesis"
)

// Labels of the final decision.
const (
	ApprovedLabel = "APPROVED"
	RejectedLabel = "REJECTED"
)

// Decision is the acceptance verdict for a lot. The lot is approved only if
// all three criteria hold.
type Decision struct {
	// WeightMeanOK is true if the weight t statistic is within ±t_crit.
	WeightMeanOK bool
	// DimensionMeanOK is true if the dimension t statistic is within ±t_crit.
	DimensionMeanOK bool
	// ConformityOK is true if the conformity test p-value is at least α.
	ConformityOK bool
	// Conforming is the required proportion, used in the justification text.
	Conforming float64
}

// Decide combines the two mean tests and the conformity test into a decision.
// The mean tests are accepted when their statistic lies in the acceptance
// region, the conformity test when its p-value is not below alpha.
func Decide(weight, dimension, conformity hypothesis.Result, alpha, conforming float64) (Decision, error) {
	if err := checks.CheckSignificance(alpha); err != nil {
		return Decision{}, err
	}
	if err := checks.CheckProportionStrict(conforming, "Conforming"); err != nil {
		return Decision{}, err
	}
	d := Decision{
		WeightMeanOK:    weight.InAcceptanceRegion(),
		DimensionMeanOK: dimension.InAcceptanceRegion(),
		ConformityOK:    conformity.PValue >= alpha,
		Conforming:      conforming,
	}
	log.Infof("Lot %s (weight mean ok: %t, dimension mean ok: %t, conformity ok: %t)",
		d.Label(), d.WeightMeanOK, d.DimensionMeanOK, d.ConformityOK)
	return d, nil
}

// Approved reports whether every criterion holds.
func (d Decision) Approved() bool {
	return d.WeightMeanOK && d.DimensionMeanOK && d.ConformityOK
}

// Label returns ApprovedLabel or RejectedLabel.
func (d Decision) Label() string {
	if d.Approved() {
		return ApprovedLabel
	}
	return RejectedLabel
}

// Justification explains each criterion, one line per criterion.
func (d Decision) Justification() []string {
	return []string{
		justify(d.WeightMeanOK, "Mean weight"),
		justify(d.DimensionMeanOK, "Mean dimension"),
		conformityLine(d.ConformityOK, d.Conforming),
	}
}

func justify(ok bool, quantity string) string {
	if ok {
		return quantity + " is within the expected standard"
	}
	return quantity + " is NOT within the expected standard"
}

func conformityLine(ok bool, conforming float64) string {
	if ok {
		return fmt.Sprintf("Conformity rate meets the required minimum (≥%g%%)", 100*conforming)
	}
	return fmt.Sprintf("Conformity rate does NOT meet the required minimum (≥%g%%)", 100*conforming)
}

// Recommendations lists the follow-up actions for the decision.
func (d Decision) Recommendations() []string {
	if d.Approved() {
		return []string{
			"The lot can be shipped to the customer",
			"Keep monitoring the process continuously",
			"Archive the documentation for traceability",
		}
	}
	return []string{
		"Do NOT ship the lot to the customer",
		"Investigate the causes of the nonconformities",
		"Implement corrective actions in the process",
		"Draw a new sample after the corrections",
	}
}
