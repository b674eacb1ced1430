package types

// DraftRequest carries the user's drafting instructions to the drafting
// service. The gateway composes the wire-level requirements string from
// the document type, jurisdiction, and free-form requirements.
type DraftRequest struct {
	Requirements string `json:"requirements" yaml:"requirements"`
	DocType      string `json:"doc_type" yaml:"doc_type"`
	Jurisdiction string `json:"jurisdiction" yaml:"jurisdiction"`
	UserContext  string `json:"user_context" yaml:"user_context"`
}

// GeneratedFile references a downloadable artifact produced by the
// drafting service.
type GeneratedFile struct {
	URL  string `json:"url" yaml:"url"`
	Name string `json:"name" yaml:"name"`
}

// RevisionSuggestion is a proposed literal substitution in the working
// draft, applied or dismissed by ID.
type RevisionSuggestion struct {
	ID              string `json:"id" yaml:"id"`
	OriginalText    string `json:"originalText" yaml:"original_text"`
	SuggestedText   string `json:"suggestedText" yaml:"suggested_text"`
	PrecedentSource string `json:"precedentSource" yaml:"precedent_source"`
	Reasoning       string `json:"reasoning" yaml:"reasoning"`
}

// DraftResult is the normalized response of the drafting service.
type DraftResult struct {
	Status      string               `json:"status" yaml:"status"`
	DownloadURL string               `json:"download_url" yaml:"download_url"`
	FileName    string               `json:"file_name" yaml:"file_name"`
	Message     string               `json:"message" yaml:"message"`
	Revisions   []RevisionSuggestion `json:"revisions" yaml:"revisions"`
}

// Completed reports whether the service produced a downloadable document.
func (r *DraftResult) Completed() bool {
	return r.Status == "completed" && r.DownloadURL != ""
}
