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

type searchRequest struct {
	Facts string `json:"facts"`
}

// SearchPrecedents submits case facts to the precedent search service and
// returns the normalized analysis.
func (c *Client) SearchPrecedents(ctx context.Context, facts string) (*types.PrecedentAnalysis, error) {
	if strings.TrimSpace(facts) == "" {
		return nil, fmt.Errorf("case facts are empty")
	}

	raw, err := httputil.PostJSON(ctx, c.HTTP, c.Config.SearchURL, searchRequest{Facts: facts}, c.header())
	if err != nil {
		return nil, fmt.Errorf("precedent search service: %w", err)
	}

	a, warnings, err := normalize.PrecedentAnalysis(raw)
	if err != nil {
		return nil, fmt.Errorf("precedent search service: %w", err)
	}
	c.report("search", warnings)
	return a, nil
}
