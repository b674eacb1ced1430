package payload

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"testing"
)

func TestResolveRejectsEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"nothing", Input{}},
		{"whitespace text", Input{Text: "   \n\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirm := func(string) bool {
				t.Fatal("confirm called for empty input")
				return false
			}
			_, err := Resolve(tt.input, confirm)
			if !errors.Is(err, ErrNoInput) {
				t.Errorf("Resolve() error = %v, want ErrNoInput", err)
			}
		})
	}
}

func TestResolveTextOnly(t *testing.T) {
	p, err := Resolve(Input{Text: "the appellant filed for breach"}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.Name() != "input.txt" {
		t.Errorf("Name() = %q, want input.txt", p.Name())
	}
	if p.MIMEType() != "text/plain" {
		t.Errorf("MIMEType() = %q, want text/plain", p.MIMEType())
	}
	if !p.Synthetic() {
		t.Error("Synthetic() = false, want true")
	}
	if p.Size() != len("the appellant filed for breach") {
		t.Errorf("Size() = %d", p.Size())
	}
}

func TestResolveFileOnly(t *testing.T) {
	file := &FileInput{Name: "judgment.pdf", Data: []byte("%PDF-1.4")}
	p, err := Resolve(Input{File: file}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if p.Name() != "judgment.pdf" {
		t.Errorf("Name() = %q", p.Name())
	}
	// Undeclared content type defaults to PDF.
	if p.MIMEType() != "application/pdf" {
		t.Errorf("MIMEType() = %q, want application/pdf", p.MIMEType())
	}
	if p.Synthetic() {
		t.Error("Synthetic() = true, want false")
	}
}

func TestResolveDualInput(t *testing.T) {
	in := Input{
		File: &FileInput{Name: "scan.png", MIMEType: "image/png", Data: []byte{1, 2}},
		Text: "pasted text",
	}

	t.Run("declined aborts", func(t *testing.T) {
		_, err := Resolve(in, func(string) bool { return false })
		if !errors.Is(err, ErrAborted) {
			t.Errorf("Resolve() error = %v, want ErrAborted", err)
		}
	})

	t.Run("nil confirm aborts", func(t *testing.T) {
		_, err := Resolve(in, nil)
		if !errors.Is(err, ErrAborted) {
			t.Errorf("Resolve() error = %v, want ErrAborted", err)
		}
	})

	t.Run("accepted prefers file", func(t *testing.T) {
		asked := false
		p, err := Resolve(in, func(prompt string) bool {
			asked = true
			return true
		})
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if !asked {
			t.Error("confirm was not invoked for dual input")
		}
		if p.Name() != "scan.png" || p.MIMEType() != "image/png" {
			t.Errorf("payload = %s (%s), want the file", p.Name(), p.MIMEType())
		}
	})
}

func TestWriteMultipart(t *testing.T) {
	p, err := Resolve(Input{File: &FileInput{
		Name:     "contract.pdf",
		MIMEType: "application/pdf",
		Data:     []byte("fake pdf bytes"),
	}}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	var body bytes.Buffer
	contentType, err := p.WriteMultipart(&body)
	if err != nil {
		t.Fatalf("WriteMultipart() error = %v", err)
	}

	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		t.Fatalf("parsing content type: %v", err)
	}
	if mediaType != "multipart/form-data" {
		t.Errorf("media type = %q", mediaType)
	}

	mr := multipart.NewReader(&body, params["boundary"])
	part, err := mr.NextPart()
	if err != nil {
		t.Fatalf("reading part: %v", err)
	}
	if part.FormName() != "file" {
		t.Errorf("form name = %q, want file", part.FormName())
	}
	if part.FileName() != "contract.pdf" {
		t.Errorf("filename = %q", part.FileName())
	}
	if ct := part.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("part content type = %q", ct)
	}
	data, _ := io.ReadAll(part)
	if string(data) != "fake pdf bytes" {
		t.Errorf("part data = %q", data)
	}
	if _, err := mr.NextPart(); err != io.EOF {
		t.Errorf("expected exactly one part, got err = %v", err)
	}
}

func TestVerifyRequest(t *testing.T) {
	raw := []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xFF}
	p, err := Resolve(Input{File: &FileInput{Name: "doc.pdf", MIMEType: "application/pdf", Data: raw}}, nil)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	req := p.VerifyRequest()
	if req.FileName != "doc.pdf" || req.MIMEType != "application/pdf" {
		t.Errorf("request = %+v", req)
	}
	decoded, err := base64.StdEncoding.DecodeString(req.Base64Data)
	if err != nil {
		t.Fatalf("decoding base64: %v", err)
	}
	if !bytes.Equal(decoded, raw) {
		t.Errorf("decoded = %v, want %v", decoded, raw)
	}
}
