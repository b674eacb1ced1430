// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package payload encodes user input (a document file or free-form text)
// into a single transport payload. When both a file and text are supplied
// the file takes precedence, but only after the caller confirms discarding
// the text; an empty submission is rejected before any network activity.
package payload

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

var (
	// ErrNoInput is returned when neither a file nor text was provided.
	ErrNoInput = errors.New("no input: provide a document file or text")

	// ErrAborted is returned when the user declines to discard the text
	// portion of a dual file-and-text submission.
	ErrAborted = errors.New("submission aborted")
)

// defaultMIMEType is assumed for files with no declared content type,
// matching what the services expect most of the time.
const defaultMIMEType = "application/pdf"

// syntheticName is the filename given to bare text wrapped as an
// attachment so the invocation path is uniform regardless of origin.
const syntheticName = "input.txt"

// FileInput is a user-supplied document.
type FileInput struct {
	Name     string
	MIMEType string
	Data     []byte
}

// Input is one submission's raw material. At most one of File and Text is
// authoritative; Resolve decides which.
type Input struct {
	File *FileInput
	Text string
}

// ConfirmFunc asks the user a yes/no question and reports their answer.
// It is invoked at most once per Resolve, only for dual input.
type ConfirmFunc func(prompt string) bool

// Payload is a resolved, transport-ready attachment.
type Payload struct {
	name      string
	mimeType  string
	data      []byte
	synthetic bool
}

// Resolve turns raw input into a transport payload. A file wins over text
// once confirm approves discarding the text; bare text becomes a synthetic
// plain-text attachment; an empty input fails with ErrNoInput.
func Resolve(in Input, confirm ConfirmFunc) (*Payload, error) {
	text := strings.TrimSpace(in.Text)

	if in.File == nil && text == "" {
		return nil, ErrNoInput
	}

	if in.File != nil && text != "" {
		if confirm == nil || !confirm("Both text and file provided. The file will take precedence. Continue?") {
			return nil, ErrAborted
		}
	}

	if in.File != nil {
		mt := in.File.MIMEType
		if mt == "" {
			mt = defaultMIMEType
		}
		return &Payload{name: in.File.Name, mimeType: mt, data: in.File.Data}, nil
	}

	return &Payload{
		name:      syntheticName,
		mimeType:  "text/plain",
		data:      []byte(in.Text),
		synthetic: true,
	}, nil
}

// Name returns the attachment filename.
func (p *Payload) Name() string { return p.name }

// MIMEType returns the declared content type.
func (p *Payload) MIMEType() string { return p.mimeType }

// Size returns the attachment size in bytes.
func (p *Payload) Size() int { return len(p.data) }

// Synthetic reports whether the payload was fabricated from bare text.
func (p *Payload) Synthetic() bool { return p.synthetic }

// WriteMultipart writes the payload as a multipart/form-data body with a
// single "file" part and returns the Content-Type header value for it.
func (p *Payload) WriteMultipart(w io.Writer) (string, error) {
	mw := multipart.NewWriter(w)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, p.name))
	hdr.Set("Content-Type", p.mimeType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		return "", fmt.Errorf("creating file part: %w", err)
	}
	if _, err := part.Write(p.data); err != nil {
		return "", fmt.Errorf("writing file part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("finalizing multipart body: %w", err)
	}
	return mw.FormDataContentType(), nil
}

// VerifyRequest is the JSON transport form used by services that cannot
// accept multipart bodies: the raw bytes travel base64-encoded alongside
// the declared content type and original filename.
type VerifyRequest struct {
	FileName   string `json:"file_name"`
	MIMEType   string `json:"mime_type"`
	Base64Data string `json:"base64_data"`
}

// VerifyRequest returns the base64 transport form of the payload.
func (p *Payload) VerifyRequest() VerifyRequest {
	return VerifyRequest{
		FileName:   p.name,
		MIMEType:   p.mimeType,
		Base64Data: base64.StdEncoding.EncodeToString(p.data),
	}
}
