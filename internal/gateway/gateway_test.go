package gateway

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gavelhq/gavel-workbench/internal/httputil"
	"github.com/gavelhq/gavel-workbench/internal/normalize"
	"github.com/gavelhq/gavel-workbench/internal/payload"
	"github.com/gavelhq/gavel-workbench/pkg/types"
)

func testClient(srv *httptest.Server) *Client {
	return New(types.GatewayConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "gavel-workbench/test",
		},
		SummarizeURL: srv.URL + "/summarize",
		VerifyURL:    srv.URL + "/verify",
		SearchURL:    srv.URL + "/search",
		DraftURL:     srv.URL + "/draft",
		APIKey:       "test-key",
	})
}

func filePayload(t *testing.T, name, mimeType, content string) *payload.Payload {
	t.Helper()
	p, err := payload.Resolve(payload.Input{File: &payload.FileInput{
		Name:     name,
		MIMEType: mimeType,
		Data:     []byte(content),
	}}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return p
}

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/summarize" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("X-API-Key"); got != "test-key" {
			t.Errorf("X-API-Key = %q", got)
		}
		if got := r.Header.Get("User-Agent"); got != "gavel-workbench/test" {
			t.Errorf("User-Agent = %q", got)
		}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart: %v", err)
		}
		file, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file part: %v", err)
		}
		defer file.Close()
		if hdr.Filename != "judgment.pdf" {
			t.Errorf("filename = %q", hdr.Filename)
		}
		data, _ := io.ReadAll(file)
		if string(data) != "%PDF-judgment" {
			t.Errorf("file content = %q", data)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"session_id": "s1",
			"summary": map[string]any{
				"case_name": "Alpha v. Beta",
				"facts":     []string{"f1"},
			},
		})
	}))
	defer srv.Close()

	c := testClient(srv)
	s, err := c.Summarize(context.Background(), filePayload(t, "judgment.pdf", "application/pdf", "%PDF-judgment"))
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if s.SessionID != "s1" || s.CaseName != "Alpha v. Beta" || len(s.Facts) != 1 {
		t.Errorf("summary = %+v", s)
	}
}

func TestSummarizeMissingEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"session_id": "s1"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Summarize(context.Background(), filePayload(t, "j.pdf", "application/pdf", "x"))
	var ee *normalize.EnvelopeError
	if !errors.As(err, &ee) {
		t.Fatalf("Summarize() error = %v, want EnvelopeError", err)
	}
}

func TestVerify(t *testing.T) {
	const content = "fake scan bytes"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req payload.VerifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		if req.FileName != "scan.png" || req.MIMEType != "image/png" {
			t.Errorf("request = %+v", req)
		}
		decoded, err := base64.StdEncoding.DecodeString(req.Base64Data)
		if err != nil || string(decoded) != content {
			t.Errorf("base64 payload = %q (%v)", decoded, err)
		}

		w.Write([]byte(`{"authenticityScore": 62, "anomalies": [{"id": "a1", "title": "Font mismatch", "severity": "medium"}]}`))
	}))
	defer srv.Close()

	r, err := testClient(srv).Verify(context.Background(), filePayload(t, "scan.png", "image/png", content))
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if r.AuthenticityScore != 62 || len(r.Anomalies) != 1 {
		t.Errorf("report = %+v", r)
	}
}

func TestSearchPrecedents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Facts string `json:"facts"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		if req.Facts != "delivery dispute" {
			t.Errorf("facts = %q", req.Facts)
		}
		w.Write([]byte(`{"legal_memo": "memo", "precedents": [{"id": "p1", "title": "T", "matchScore": 80}]}`))
	}))
	defer srv.Close()

	a, err := testClient(srv).SearchPrecedents(context.Background(), "delivery dispute")
	if err != nil {
		t.Fatalf("SearchPrecedents() error = %v", err)
	}
	if a.LegalMemo != "memo" || len(a.Precedents) != 1 {
		t.Errorf("analysis = %+v", a)
	}
}

func TestSearchPrecedentsRejectsEmptyFacts(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	_, err := testClient(srv).SearchPrecedents(context.Background(), "   ")
	if err == nil {
		t.Fatal("SearchPrecedents() accepted empty facts")
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0 (fail before any network call)", requests)
	}
}

func TestDraftComposesWireRequirements(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Requirements string `json:"requirements"`
			UserContext  string `json:"user_context"`
		}
		json.NewDecoder(r.Body).Decode(&req)
		want := "Type: NDA. Jurisdiction: Delaware. Requirements: protect trade secrets"
		if req.Requirements != want {
			t.Errorf("requirements = %q\nwant %q", req.Requirements, want)
		}
		if req.UserContext == "" {
			t.Error("user_context is empty")
		}
		w.Write([]byte(`{"status": "completed", "download_url": "https://files/d.docx", "file_name": "d.docx"}`))
	}))
	defer srv.Close()

	res, err := testClient(srv).Draft(context.Background(), types.DraftRequest{
		Requirements: "protect trade secrets",
		DocType:      "NDA",
		Jurisdiction: "Delaware",
		UserContext:  "test run",
	})
	if err != nil {
		t.Fatalf("Draft() error = %v", err)
	}
	if !res.Completed() || res.FileName != "d.docx" {
		t.Errorf("result = %+v", res)
	}
}

func TestErrorDetailSurfaced(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "file is not a valid PDF"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv).Verify(context.Background(), filePayload(t, "x.pdf", "application/pdf", "x"))
	var se *httputil.StatusError
	if !errors.As(err, &se) {
		t.Fatalf("Verify() error = %v, want StatusError", err)
	}
	if !strings.Contains(err.Error(), "file is not a valid PDF") {
		t.Errorf("error = %v, want the service detail surfaced", err)
	}
}

func TestNormalizationWarningsStreamToDiag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"summary": {"bench": "Justice Solo"}}`))
	}))
	defer srv.Close()

	c := testClient(srv)
	var diag bytes.Buffer
	c.Diag = &diag

	if _, err := c.Summarize(context.Background(), filePayload(t, "j.pdf", "application/pdf", "x")); err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if !strings.Contains(diag.String(), "warning: summarize") || !strings.Contains(diag.String(), "bench") {
		t.Errorf("diagnostics = %q", diag.String())
	}
}
