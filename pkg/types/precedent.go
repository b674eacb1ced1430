package types

// Precedent is one matching authority returned by the precedent search
// service.
type Precedent struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Citation string `json:"citation" yaml:"citation"`

	// MatchScore is clamped to [0, 100].
	MatchScore float64  `json:"match_score" yaml:"match_score"`
	Summary    string   `json:"summary" yaml:"summary"`
	Tags       []string `json:"tags" yaml:"tags"`
	Date       string   `json:"date,omitempty" yaml:"date,omitempty"`
	Court      string   `json:"court,omitempty" yaml:"court,omitempty"`
}

// PrecedentAnalysis is the normalized result of a precedent search.
// Precedents are ordered by match score, highest first.
type PrecedentAnalysis struct {
	RawFacts    string            `json:"raw_facts" yaml:"raw_facts"`
	Parties     map[string]string `json:"parties" yaml:"parties"`
	Chronology  []string          `json:"chronology" yaml:"chronology"`
	LegalIssues []string          `json:"legal_issues" yaml:"legal_issues"`
	Precedents  []Precedent       `json:"precedents" yaml:"precedents"`
	LegalMemo   string            `json:"legal_memo" yaml:"legal_memo"`

	// InteractionHistory is the agent's dialogue trace, kept only for
	// diagnostics display.
	InteractionHistory []string `json:"interaction_history" yaml:"interaction_history"`
}
