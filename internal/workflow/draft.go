// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package workflow

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// DraftStage names a position in the drafting workflow.
type DraftStage string

const (
	StageRequirements DraftStage = "requirements"
	StageDrafting     DraftStage = "drafting"
	StageRevision     DraftStage = "revision"
)

// ErrNoRequirements is returned when drafting is started with empty
// requirements.
var ErrNoRequirements = errors.New("drafting requirements are empty")

// seedState tracks whether requirements were auto-populated from an
// upstream summary. Seeding transitions notSeeded to seededOnce exactly
// once; re-entry is rejected regardless of how often the trigger recurs.
type seedState uint8

const (
	notSeeded seedState = iota
	seededOnce
)

// DraftWorkflow drives the three-stage drafting flow: Requirements,
// Drafting, and Revision. Progression is strictly forward on success;
// the user may regress from the draft back to Requirements without
// losing the entered text.
type DraftWorkflow struct {
	stage      DraftStage
	seed       seedState
	generation uint64
	loading    bool

	requirements string
	docType      string
	jurisdiction string

	content       string
	statusMessage string
	errorMessage  string
	file          *types.GeneratedFile
	pending       []types.RevisionSuggestion
}

// NewDraftWorkflow returns a workflow in the Requirements stage.
func NewDraftWorkflow(docType, jurisdiction string) *DraftWorkflow {
	return &DraftWorkflow{
		stage:        StageRequirements,
		docType:      docType,
		jurisdiction: jurisdiction,
	}
}

// Stage returns the current stage.
func (w *DraftWorkflow) Stage() DraftStage { return w.stage }

// Loading reports whether a drafting call is outstanding.
func (w *DraftWorkflow) Loading() bool { return w.loading }

// Requirements returns the current requirements text.
func (w *DraftWorkflow) Requirements() string { return w.requirements }

// DocType returns the configured document form.
func (w *DraftWorkflow) DocType() string { return w.docType }

// Jurisdiction returns the configured jurisdiction.
func (w *DraftWorkflow) Jurisdiction() string { return w.jurisdiction }

// Content returns the working draft content.
func (w *DraftWorkflow) Content() string { return w.content }

// StatusMessage returns the progress text.
func (w *DraftWorkflow) StatusMessage() string { return w.statusMessage }

// ErrorMessage returns the failure text from the last drafting call.
func (w *DraftWorkflow) ErrorMessage() string { return w.errorMessage }

// File returns the generated artifact reference, nil until a draft
// completes.
func (w *DraftWorkflow) File() *types.GeneratedFile { return w.file }

// Pending returns a copy of the pending revision suggestions.
func (w *DraftWorkflow) Pending() []types.RevisionSuggestion {
	out := make([]types.RevisionSuggestion, len(w.pending))
	copy(out, w.pending)
	return out
}

// SetRequirements records a user edit. Edits are ignored while a
// drafting call is outstanding.
func (w *DraftWorkflow) SetRequirements(text string) {
	if w.loading {
		return
	}
	w.requirements = text
}

// SeedFromSummary populates the requirements from an upstream judgment
// summary, at most once per workflow and only while the requirements are
// still empty. It reports whether seeding happened; once it has, later
// summaries never overwrite what the user sees.
func (w *DraftWorkflow) SeedFromSummary(s *types.Summary) bool {
	if s == nil || w.seed == seededOnce || strings.TrimSpace(w.requirements) != "" {
		return false
	}
	w.requirements = composeRequirements(s)
	w.seed = seededOnce
	return true
}

func composeRequirements(s *types.Summary) string {
	lines := []string{
		"Case Name: " + s.CaseName,
		"Facts: " + strings.Join(s.Facts, ", "),
		"Legal Issues: " + strings.Join(s.LegalIssues, ", "),
		"Ratio Decidendi: " + s.RatioDecidendi,
		"Final Order: " + s.FinalOrder,
	}
	return strings.Join(lines, "\n")
}

// BeginDrafting starts a drafting call and returns its generation token.
// It requires non-empty requirements and no outstanding call. Entering
// the Drafting stage clears previously generated content, the artifact
// reference, and any pending revisions.
func (w *DraftWorkflow) BeginDrafting() (uint64, error) {
	if w.loading {
		return 0, ErrBusy
	}
	if strings.TrimSpace(w.requirements) == "" {
		return 0, ErrNoRequirements
	}
	w.generation++
	w.loading = true
	w.stage = StageDrafting
	w.content = ""
	w.file = nil
	w.pending = nil
	w.errorMessage = ""
	w.statusMessage = "Drafting agent is converting requirements into legal form..."
	return w.generation, nil
}

// CompleteDraft records the drafting service's result for the given
// generation. A completed draft advances to the Revision stage with the
// artifact exposed; an incomplete one stays in Drafting with the
// service's message. Stale generations are discarded.
func (w *DraftWorkflow) CompleteDraft(gen uint64, r *types.DraftResult) bool {
	if !w.loading || gen != w.generation {
		return false
	}
	w.loading = false

	if !r.Completed() {
		w.statusMessage = ""
		w.content = fmt.Sprintf("Drafting completed, but no document was returned. Message: %s", r.Message)
		return true
	}

	name := r.FileName
	if name == "" {
		name = "Legal_Draft.docx"
	}
	w.stage = StageRevision
	w.statusMessage = "Draft generated and validated successfully."
	w.file = &types.GeneratedFile{URL: r.DownloadURL, Name: name}
	w.content = "Draft generated successfully. Download the document to review the final validated agreement."
	w.pending = append([]types.RevisionSuggestion(nil), r.Revisions...)
	return true
}

// FailDraft records a failed drafting call for the given generation. The
// workflow stays in the Drafting stage with loading false so the user can
// edit the requirements and retry. Stale generations are discarded.
func (w *DraftWorkflow) FailDraft(gen uint64, err error) bool {
	if !w.loading || gen != w.generation {
		return false
	}
	w.loading = false
	w.statusMessage = ""
	w.errorMessage = err.Error()
	return true
}

// EditRequirements regresses to the Requirements stage without discarding
// the entered text. It is a no-op while a call is outstanding.
func (w *DraftWorkflow) EditRequirements() {
	if w.loading {
		return
	}
	w.stage = StageRequirements
}

// ApplyRevision replaces every occurrence of the suggestion's original
// text with its suggested text in the working content. A suggestion whose
// original text no longer occurs is a silent no-op; either way the
// suggestion leaves the pending set. It reports whether the id was known.
func (w *DraftWorkflow) ApplyRevision(id string) bool {
	rev, ok := w.takePending(id)
	if !ok {
		return false
	}
	if rev.OriginalText != "" {
		w.content = strings.ReplaceAll(w.content, rev.OriginalText, rev.SuggestedText)
	}
	return true
}

// DismissRevision removes a suggestion from the pending set without
// applying it. It reports whether the id was known.
func (w *DraftWorkflow) DismissRevision(id string) bool {
	_, ok := w.takePending(id)
	return ok
}

func (w *DraftWorkflow) takePending(id string) (types.RevisionSuggestion, bool) {
	for i, rev := range w.pending {
		if rev.ID == id {
			w.pending = append(w.pending[:i], w.pending[i+1:]...)
			return rev, true
		}
	}
	return types.RevisionSuggestion{}, false
}
