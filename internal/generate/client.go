// Package generate submits the report document to the external rendering
// backend and hands back the produced file.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/moboufenzi-dev/rapport-stage-generator/internal/report"
)

// Format is an output format accepted by the rendering backend.
type Format string

const (
	FormatDOCX Format = "docx"
	FormatPDF  Format = "pdf"
)

// Valid reports whether the format is one the backend renders.
func (f Format) Valid() bool {
	return f == FormatDOCX || f == FormatPDF
}

var contentTypes = map[Format]string{
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	FormatPDF:  "application/pdf",
}

// Result is a rendered report file.
type Result struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Client talks to the rendering backend over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the backend at baseURL. A zero timeout
// defaults to two minutes; document rendering is slow.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Generate posts the document to the backend's /generate endpoint and returns
// the rendered file. The backend receives the full document as JSON plus the
// requested format; a non-2xx response surfaces the backend's message.
func (c *Client) Generate(ctx context.Context, doc *report.ReportDocument, format Format) (*Result, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	body, err := json.Marshal(struct {
		*report.ReportDocument
		Format Format `json:"format"`
	}{doc, format})
	if err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling generator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, backendError(resp)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading generated file: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = contentTypes[format]
	}
	return &Result{
		Filename:    Filename(doc, format),
		ContentType: contentType,
		Data:        data,
	}, nil
}

// Filename derives the download name from the student's last name, falling
// back to a generic stem when it is blank.
func Filename(doc *report.ReportDocument, format Format) string {
	nom := "rapport"
	if doc != nil {
		if n := strings.TrimSpace(doc.LastName); n != "" {
			nom = sanitizeStem(n)
		}
	}
	return "rapport_stage_" + nom + "." + string(format)
}

// sanitizeStem keeps the name usable as a filename across platforms.
func sanitizeStem(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == ' ':
			b.WriteRune('_')
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			// dropped
		default:
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "rapport"
	}
	return b.String()
}

// backendError extracts the backend's failure message. FastAPI-style bodies
// carry it under "detail"; anything else falls back to the raw body.
func backendError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	var payload struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Detail != "" {
			msg = payload.Detail
		} else if payload.Error != "" {
			msg = payload.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(raw))
	}
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("generator returned %d: %s", resp.StatusCode, msg)
}
