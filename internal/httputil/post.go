// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides single-shot HTTP POST helpers shared by the
// gateway. Every helper issues exactly one request: the backend services
// are not idempotent, so failed calls are never replayed automatically.
package httputil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxBodySize caps how much of a response body is read (16 MiB). Service
// responses are small JSON documents; anything larger is misbehavior.
const maxBodySize = 16 << 20

// StatusError reports a non-2xx response. Detail carries the
// human-readable reason extracted from the error body when available,
// otherwise the transport-level status text.
type StatusError struct {
	StatusCode int
	Detail     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Detail)
}

// PostJSON marshals body as JSON, POSTs it, and returns the raw response
// body after confirming it parses as a JSON object.
func PostJSON(ctx context.Context, client *http.Client, url string, body any, hdr http.Header) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}
	return post(ctx, client, url, "application/json", bytes.NewReader(data), hdr)
}

// PostMultipart POSTs a prebuilt multipart body with the given
// Content-Type and returns the raw response body after confirming it
// parses as a JSON object.
func PostMultipart(ctx context.Context, client *http.Client, url, contentType string, body io.Reader, hdr http.Header) ([]byte, error) {
	return post(ctx, client, url, contentType, body, hdr)
}

func post(ctx context.Context, client *http.Client, url, contentType string, body io.Reader, hdr http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	for key, values := range hdr {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Detail:     errorDetail(raw, resp.Status),
		}
	}

	// The body must at least be a JSON object; its schema is the
	// normalizer's concern.
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("response is not a JSON object: %w", err)
	}

	return raw, nil
}

// errorDetail extracts the "detail" field the services attach to error
// responses. When the body carries no usable detail the transport status
// text is returned instead.
func errorDetail(body []byte, status string) string {
	var env struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &env); err == nil && env.Detail != nil {
		switch d := env.Detail.(type) {
		case string:
			if s := strings.TrimSpace(d); s != "" {
				return s
			}
		default:
			if s, err := json.Marshal(d); err == nil {
				return string(s)
			}
		}
	}
	return status
}
