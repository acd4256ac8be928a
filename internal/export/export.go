// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package export renders report summaries for printing, sharing and
// machine consumption.
package export

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io"
	"strings"
	texttemplate "text/template"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

const (
	htmlTemplate  = "report.html.tmpl"
	shareTemplate = "share.txt.tmpl"

	reportTitle = "Fire Protection Inspection Report"
)

// Format names an output format of [Renderer.Render].
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatText Format = "text"
	FormatHTML Format = "html"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat resolves a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatYAML, FormatText, FormatHTML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	case "txt", "share":
		return FormatText, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// ContentType returns the MIME type of documents in format f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Renderer renders summaries using templates embedded in the package.
type Renderer struct {
	html *htmltemplate.Template
	text *texttemplate.Template
	now  func() time.Time
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	html, err := htmltemplate.New("report").Funcs(htmltemplate.FuncMap(funcs)).ParseFS(templatesFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse html templates: %w", err)
	}
	text, err := texttemplate.New("share").Funcs(funcs).ParseFS(templatesFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse text templates: %w", err)
	}
	return &Renderer{html: html, text: text, now: time.Now}, nil
}

// Render writes s to w in the given format.
func (r *Renderer) Render(w io.Writer, format Format, s models.Summary) error {
	switch format {
	case FormatJSON:
		return r.JSON(w, s)
	case FormatYAML:
		return r.YAML(w, s)
	case FormatHTML:
		return r.HTML(w, s)
	case FormatText:
		text, err := r.ShareText(s)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, text)
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// HTML writes the printable report: header, status table, defect list and
// photo evidence.
func (r *Renderer) HTML(w io.Writer, s models.Summary) error {
	if err := r.html.ExecuteTemplate(w, htmlTemplate, r.view(s)); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

// ShareText returns a plain text digest suited for messaging apps.
func (r *Renderer) ShareText(s models.Summary) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := r.text.ExecuteTemplate(buf, shareTemplate, r.view(s)); err != nil {
		return "", fmt.Errorf("render share text: %w", err)
	}
	return buf.String(), nil
}

// YAML writes s as a YAML document. Photos are left out.
func (r *Renderer) YAML(w io.Writer, s models.Summary) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode yaml summary: %w", err)
	}
	return enc.Close()
}

// JSON writes s as indented JSON.
func (r *Renderer) JSON(w io.Writer, s models.Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode json summary: %w", err)
	}
	return nil
}
