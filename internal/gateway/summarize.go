// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gavelhq/gavel-workbench/internal/httputil"
	"github.com/gavelhq/gavel-workbench/internal/normalize"
	"github.com/gavelhq/gavel-workbench/internal/payload"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// Summarize submits the payload as a multipart upload to the
// summarization service and returns the normalized judgment dashboard.
func (c *Client) Summarize(ctx context.Context, p *payload.Payload) (*types.Summary, error) {
	var body bytes.Buffer
	contentType, err := p.WriteMultipart(&body)
	if err != nil {
		return nil, fmt.Errorf("encoding upload: %w", err)
	}

	raw, err := httputil.PostMultipart(ctx, c.HTTP, c.Config.SummarizeURL, contentType, &body, c.header())
	if err != nil {
		return nil, fmt.Errorf("summarization service: %w", err)
	}

	s, warnings, err := normalize.Summary(raw)
	if err != nil {
		return nil, fmt.Errorf("summarization service: %w", err)
	}
	c.report("summarize", warnings)
	return s, nil
}
