// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// Summary maps a summarization service response onto types.Summary. The
// body must carry a top-level "summary" object; everything inside it is
// coerced field by field.
func Summary(body []byte) (*types.Summary, []Warning, error) {
	d, err := parse(body)
	if err != nil {
		return nil, nil, err
	}

	env := d.Child("summary")
	if env == nil {
		return nil, nil, &EnvelopeError{Key: "summary"}
	}

	s := &types.Summary{
		SessionID:        d.String("session_id"),
		CaseName:         env.String("case_name"),
		NeutralCitation:  env.String("neutral_citation"),
		DateOfJudgment:   env.String("date_of_judgment"),
		CourtName:        env.String("court_name"),
		Bench:            env.StringList("bench"),
		Facts:            env.StringList("facts"),
		LegalIssues:      env.StringList("legal_issues"),
		StatutesCited:    env.StringList("statutes_cited"),
		PrecedentsCited:  env.StringList("precedents_cited"),
		RatioDecidendi:   env.String("ratio_decidendi"),
		FinalOrder:       env.String("final_order"),
		ConfidenceScore:  env.ClampedNumber("confidence_score", 0, 1, 0),
		CritiqueFeedback: env.String("critique_feedback"),
	}
	return s, d.taken(), nil
}
