package httputil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostJSONSuccess(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	body, err := PostJSON(context.Background(), srv.Client(), srv.URL, map[string]string{"facts": "x"}, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
	assert.Equal(t, 1, requests)
}

func TestPostJSONForwardsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sekrit", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "gavel-workbench/test", r.Header.Get("User-Agent"))
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	hdr := make(http.Header)
	hdr.Set("X-API-Key", "sekrit")
	hdr.Set("User-Agent", "gavel-workbench/test")

	_, err := PostJSON(context.Background(), srv.Client(), srv.URL, struct{}{}, hdr)
	require.NoError(t, err)
}

func TestPostJSONErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "file is not a valid PDF"}`))
	}))
	defer srv.Close()

	_, err := PostJSON(context.Background(), srv.Client(), srv.URL, struct{}{}, nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnprocessableEntity, se.StatusCode)
	assert.Equal(t, "file is not a valid PDF", se.Detail)
}

func TestPostJSONErrorStructuredDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": [{"loc": ["body", "facts"], "msg": "field required"}]}`))
	}))
	defer srv.Close()

	_, err := PostJSON(context.Background(), srv.Client(), srv.URL, struct{}{}, nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Detail, "field required")
}

func TestPostJSONErrorFallsBackToStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	}))
	defer srv.Close()

	_, err := PostJSON(context.Background(), srv.Client(), srv.URL, struct{}{}, nil)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Detail, "500")
}

func TestPostJSONRejectsNonObjectBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[1, 2, 3]`))
	}))
	defer srv.Close()

	_, err := PostJSON(context.Background(), srv.Client(), srv.URL, struct{}{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a JSON object")
}

func TestPostNoRetryOnFailure(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := PostJSON(context.Background(), srv.Client(), srv.URL, struct{}{}, nil)
	require.Error(t, err)
	assert.Equal(t, 1, requests, "exactly one request per call, no retries")
}

func TestPostMultipart(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data; boundary="))
		w.Write([]byte(`{"session_id": "s1"}`))
	}))
	defer srv.Close()

	body := strings.NewReader("--x--")
	raw, err := PostMultipart(context.Background(), srv.Client(), srv.URL, "multipart/form-data; boundary=x", body, nil)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "s1")
}

func TestPostTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	_, err := PostJSON(context.Background(), http.DefaultClient, srv.URL, struct{}{}, nil)
	require.Error(t, err)
	var se *StatusError
	assert.False(t, errors.As(err, &se), "transport failures are not StatusErrors")
}
