// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package gateway

import (
	"context"
	"fmt"
	"strings"

	"github.com/gavelhq/gavel-workbench/internal/httputil"
	"github.com/gavelhq/gavel-workbench/internal/normalize"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

type draftRequest struct {
	Requirements string `json:"requirements"`
	UserContext  string `json:"user_context"`
}

// Draft submits drafting instructions to the drafting service and returns
// the normalized result. The wire-level requirements string folds in the
// document type and jurisdiction the way the service expects.
func (c *Client) Draft(ctx context.Context, req types.DraftRequest) (*types.DraftResult, error) {
	if strings.TrimSpace(req.Requirements) == "" {
		return nil, fmt.Errorf("drafting requirements are empty")
	}

	wire := draftRequest{
		Requirements: fmt.Sprintf("Type: %s. Jurisdiction: %s. Requirements: %s",
			req.DocType, req.Jurisdiction, req.Requirements),
		UserContext: req.UserContext,
	}

	raw, err := httputil.PostJSON(ctx, c.HTTP, c.Config.DraftURL, wire, c.header())
	if err != nil {
		return nil, fmt.Errorf("drafting service: %w", err)
	}

	r, warnings, err := normalize.Draft(raw)
	if err != nil {
		return nil, fmt.Errorf("drafting service: %w", err)
	}
	c.report("draft", warnings)
	return r, nil
}
