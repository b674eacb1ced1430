// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package normalize

import (
	"github.com/google/uuid"

	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// Draft maps a drafting service response onto types.DraftResult. The body
// must carry "status". Revision suggestions are optional; services not yet
// running the interactive validator simply omit them.
func Draft(body []byte) (*types.DraftResult, []Warning, error) {
	d, err := parse(body)
	if err != nil {
		return nil, nil, err
	}
	if !d.has("status") {
		return nil, nil, &EnvelopeError{Key: "status"}
	}

	r := &types.DraftResult{
		Status:      d.String("status"),
		DownloadURL: d.String("download_url"),
		FileName:    d.String("file_name"),
		Message:     d.String("message"),
		Revisions:   []types.RevisionSuggestion{},
	}

	for _, rec := range d.Records("revisions") {
		rev := types.RevisionSuggestion{
			ID:              rec.String("id"),
			OriginalText:    rec.String("originalText"),
			SuggestedText:   rec.String("suggestedText"),
			PrecedentSource: rec.String("precedentSource"),
			Reasoning:       rec.String("reasoning"),
		}
		if rev.ID == "" {
			rev.ID = uuid.NewString()
			rec.warn("id", RuleGenerated, "missing revision id minted locally")
		}
		r.Revisions = append(r.Revisions, rev)
	}

	return r, d.taken(), nil
}
