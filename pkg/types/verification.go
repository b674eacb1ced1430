package types

import "strings"

// Severity grades a forensic anomaly.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ParseSeverity maps a service-supplied severity string onto one of the
// three grades. Unknown values map to SeverityLow and the second return is
// false so the caller can record the coercion.
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(strings.ToLower(strings.TrimSpace(s))) {
	case SeverityHigh:
		return SeverityHigh, true
	case SeverityMedium:
		return SeverityMedium, true
	case SeverityLow:
		return SeverityLow, true
	}
	return SeverityLow, false
}

// Rank orders severities for display, highest first.
func (s Severity) Rank() int {
	switch s {
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	}
	return 0
}

// Anomaly is one forensic finding reported by the verification service.
type Anomaly struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"severity" yaml:"severity"`
}

// VerificationReport is the normalized result of a forensic scan.
// Anomalies are ordered by severity, highest first.
type VerificationReport struct {
	// AuthenticityScore is clamped to [0, 100].
	AuthenticityScore float64   `json:"authenticity_score" yaml:"authenticity_score"`
	Anomalies         []Anomaly `json:"anomalies" yaml:"anomalies"`
}
