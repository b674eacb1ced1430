package types

import "time"

// HTTPConfig holds shared HTTP settings used by gateway calls.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gavel-workbench/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GatewayConfig holds the endpoints of the four backend services. It is
// passed into the gateway client at construction time so tests can point
// individual services at local servers without mutating shared state.
type GatewayConfig struct {
	HTTPConfig `yaml:",inline"`

	// SummarizeURL is the summarization service endpoint.
	SummarizeURL string `json:"summarize_url" yaml:"summarize_url"`

	// VerifyURL is the forensic verification service endpoint.
	VerifyURL string `json:"verify_url" yaml:"verify_url"`

	// SearchURL is the precedent search service endpoint.
	SearchURL string `json:"search_url" yaml:"search_url"`

	// DraftURL is the drafting service endpoint.
	DraftURL string `json:"draft_url" yaml:"draft_url"`

	// APIKey, when set, is sent as the X-API-Key header on every call.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// DefaultGatewayBase is the gateway used when no endpoints are configured.
const DefaultGatewayBase = "http://localhost:8000"

// DefaultGatewayConfig returns a config pointing every service at the
// local gateway with a 60 s timeout.
func DefaultGatewayConfig() GatewayConfig {
	return GatewayConfig{
		HTTPConfig: HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "gavel-workbench/0.1",
		},
		SummarizeURL: DefaultGatewayBase + "/summarize",
		VerifyURL:    DefaultGatewayBase + "/verify",
		SearchURL:    DefaultGatewayBase + "/search",
		DraftURL:     DefaultGatewayBase + "/draft",
	}
}
