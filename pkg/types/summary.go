// Package types defines the normalized view models shared between the
// gateway, the workflows, and the CLI, plus the configuration structs.
// Every list field is always a non-nil slice after normalization, so
// renderers never branch on field shape.
package types

// Summary is the normalized judgment dashboard produced by the
// summarization service.
type Summary struct {
	// SessionID identifies the summarization session on the backend.
	SessionID string `json:"session_id,omitempty" yaml:"session_id,omitempty"`

	CaseName        string   `json:"case_name" yaml:"case_name"`
	NeutralCitation string   `json:"neutral_citation" yaml:"neutral_citation"`
	DateOfJudgment  string   `json:"date_of_judgment" yaml:"date_of_judgment"`
	CourtName       string   `json:"court_name" yaml:"court_name"`
	Bench           []string `json:"bench" yaml:"bench"`
	Facts           []string `json:"facts" yaml:"facts"`
	LegalIssues     []string `json:"legal_issues" yaml:"legal_issues"`
	StatutesCited   []string `json:"statutes_cited" yaml:"statutes_cited"`
	PrecedentsCited []string `json:"precedents_cited" yaml:"precedents_cited"`
	RatioDecidendi  string   `json:"ratio_decidendi" yaml:"ratio_decidendi"`
	FinalOrder      string   `json:"final_order" yaml:"final_order"`

	// ConfidenceScore is clamped to [0, 1].
	ConfidenceScore  float64 `json:"confidence_score" yaml:"confidence_score"`
	CritiqueFeedback string  `json:"critique_feedback" yaml:"critique_feedback"`
}
