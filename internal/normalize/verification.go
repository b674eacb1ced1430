// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"sort"

	"github.com/google/uuid"

	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// Verification maps a forensic verification response onto
// types.VerificationReport. The body must carry "authenticityScore";
// anomalies are ordered by severity, highest first, preserving the
// service's order within a grade.
func Verification(body []byte) (*types.VerificationReport, []Warning, error) {
	d, err := parse(body)
	if err != nil {
		return nil, nil, err
	}
	if !d.has("authenticityScore") {
		return nil, nil, &EnvelopeError{Key: "authenticityScore"}
	}

	r := &types.VerificationReport{
		AuthenticityScore: d.ClampedNumber("authenticityScore", 0, 100, 0),
		Anomalies:         []types.Anomaly{},
	}

	for _, rec := range d.Records("anomalies") {
		a := types.Anomaly{
			ID:          rec.String("id"),
			Title:       rec.String("title"),
			Description: rec.String("description"),
		}
		sev, known := types.ParseSeverity(rec.String("severity"))
		if !known {
			rec.warn("severity", RuleCoerced, "unknown severity, graded low")
		}
		a.Severity = sev
		if a.ID == "" {
			a.ID = uuid.NewString()
			rec.warn("id", RuleGenerated, "missing anomaly id minted locally")
		}
		r.Anomalies = append(r.Anomalies, a)
	}

	sort.SliceStable(r.Anomalies, func(i, j int) bool {
		return r.Anomalies[i].Severity.Rank() > r.Anomalies[j].Severity.Rank()
	})

	return r, d.taken(), nil
}
