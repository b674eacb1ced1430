// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"fmt"

	"github.com/gavelhq/gavel-workbench/internal/httputil"
	"github.com/gavelhq/gavel-workbench/internal/normalize"
	"github.com/gavelhq/gavel-workbench/internal/payload"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

// Verify submits the payload in its base64 JSON form to the forensic
// verification service and returns the normalized report.
func (c *Client) Verify(ctx context.Context, p *payload.Payload) (*types.VerificationReport, error) {
	raw, err := httputil.PostJSON(ctx, c.HTTP, c.Config.VerifyURL, p.VerifyRequest(), c.header())
	if err != nil {
		return nil, fmt.Errorf("verification service: %w", err)
	}

	r, warnings, err := normalize.Verification(raw)
	if err != nil {
		return nil, fmt.Errorf("verification service: %w", err)
	}
	c.report("verify", warnings)
	return r, nil
}
