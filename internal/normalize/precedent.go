// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"sort"

	"github.com/google/uuid"

	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// PrecedentAnalysis maps a precedent search response onto
// types.PrecedentAnalysis. Precedents are ordered by match score,
// highest first.
func PrecedentAnalysis(body []byte) (*types.PrecedentAnalysis, []Warning, error) {
	d, err := parse(body)
	if err != nil {
		return nil, nil, err
	}

	a := &types.PrecedentAnalysis{
		RawFacts:           d.String("raw_facts"),
		Parties:            d.StringMap("parties"),
		Chronology:         d.StringList("chronology"),
		LegalIssues:        d.StringList("legal_issues"),
		Precedents:         []types.Precedent{},
		LegalMemo:          d.String("legal_memo"),
		InteractionHistory: d.StringList("interaction_history"),
	}

	for _, rec := range d.Records("precedents") {
		p := types.Precedent{
			ID:         rec.String("id"),
			Title:      rec.String("title"),
			Citation:   rec.String("citation"),
			MatchScore: rec.ClampedNumber("matchScore", 0, 100, 0),
			Summary:    rec.String("summary"),
			Tags:       rec.StringList("tags"),
			Date:       rec.String("date"),
			Court:      rec.String("court"),
		}
		if p.ID == "" {
			p.ID = uuid.NewString()
			rec.warn("id", RuleGenerated, "missing precedent id minted locally")
		}
		a.Precedents = append(a.Precedents, p)
	}

	sort.SliceStable(a.Precedents, func(i, j int) bool {
		return a.Precedents[i].MatchScore > a.Precedents[j].MatchScore
	})

	return a, d.taken(), nil
}
