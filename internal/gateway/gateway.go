// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gateway invokes the four backend services. Each operation is
// exactly one POST to its configured endpoint: the services are not
// idempotent, so there are no implicit retries. Transport failures,
// non-2xx statuses, and malformed bodies all fold into a returned error
// at this boundary; normalization warnings stream to the diagnostics
// writer.
package gateway

import (
	"io"
	"net/http"

	"github.com/gavelhq/gavel-workbench/internal/normalize"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// Client calls the backend services described by a GatewayConfig.
type Client struct {
	// Config holds the service endpoints and HTTP settings.
	Config types.GatewayConfig

	// HTTP is the underlying client. New fills in one with the
	// configured timeout.
	HTTP *http.Client

	// Diag receives normalization warnings, one per line. Defaults to
	// io.Discard.
	Diag io.Writer
}

// New returns a Client for the given config, defaulting any unset
// endpoint or HTTP setting.
func New(cfg types.GatewayConfig) *Client {
	def := types.DefaultGatewayConfig()
	if cfg.Timeout <= 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.SummarizeURL == "" {
		cfg.SummarizeURL = def.SummarizeURL
	}
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = def.VerifyURL
	}
	if cfg.SearchURL == "" {
		cfg.SearchURL = def.SearchURL
	}
	if cfg.DraftURL == "" {
		cfg.DraftURL = def.DraftURL
	}

	return &Client{
		Config: cfg,
		HTTP:   &http.Client{Timeout: cfg.Timeout},
		Diag:   io.Discard,
	}
}

// header returns the common request headers.
func (c *Client) header() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", c.Config.UserAgent)
	if c.Config.APIKey != "" {
		h.Set("X-API-Key", c.Config.APIKey)
	}
	return h
}

// report writes normalization warnings to the diagnostics writer.
func (c *Client) report(op string, warnings []normalize.Warning) {
	for _, w := range warnings {
		io.WriteString(c.Diag, "warning: "+op+": "+w.String()+"\n")
	}
}
