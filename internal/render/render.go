// Package render writes evaluation results for people and for scripts.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/baditaflorin/go_palindrome/internal/core/domain"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Labels are the words shown for each verdict.
type Labels struct {
	Yes string
	No  string
}

// DefaultLabels matches the original widget's Spanish labels.
var DefaultLabels = Labels{Yes: "Si", No: "No"}

// For returns the label for a verdict.
func (l Labels) For(palindrome bool) string {
	if palindrome {
		return l.Yes
	}
	return l.No
}

// Record is the structured form of a result.
type Record struct {
	Line       int    `json:"line,omitempty" yaml:"line,omitempty"`
	Text       string `json:"text" yaml:"text"`
	Normalized string `json:"normalized" yaml:"normalized"`
	Palindrome bool   `json:"palindrome" yaml:"palindrome"`
	Length     int    `json:"length" yaml:"length"`
	Label      string `json:"label" yaml:"label"`
}

// Renderer writes results in one format.
type Renderer struct {
	w      io.Writer
	format Format
	labels Labels
}

// New creates a renderer. Unknown formats are rejected.
func New(w io.Writer, format Format, labels Labels) (*Renderer, error) {
	switch format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
	if labels.Yes == "" || labels.No == "" {
		labels = DefaultLabels
	}
	return &Renderer{w: w, format: format, labels: labels}, nil
}

// Labels returns the labels in use.
func (r *Renderer) Labels() Labels {
	return r.labels
}

// Result writes one result. line is 0 when the result is not part of a stream.
// JSON is written one object per line; YAML as one document per result.
func (r *Renderer) Result(line int, result domain.Result) error {
	rec := Record{
		Line:       line,
		Text:       result.Input,
		Normalized: result.Normalized,
		Palindrome: result.Palindrome,
		Length:     result.Length,
		Label:      r.labels.For(result.Palindrome),
	}

	switch r.format {
	case FormatJSON:
		return json.NewEncoder(r.w).Encode(rec)
	case FormatYAML:
		out, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = fmt.Fprintf(r.w, "---\n%s", out)
		return err
	default:
		var err error
		if line > 0 {
			_, err = fmt.Fprintf(r.w, "%d\t%s\t%s\n", line, rec.Label, rec.Text)
		} else {
			_, err = fmt.Fprintln(r.w, rec.Label)
		}
		return err
	}
}

// NormalizedRecord is the structured form of a normalize call.
type NormalizedRecord struct {
	Text       string `json:"text" yaml:"text"`
	Normalized string `json:"normalized" yaml:"normalized"`
}

// Normalized writes text next to its normalized form. The text format
// prints only the normalized form.
func (r *Renderer) Normalized(text, normalized string) error {
	rec := NormalizedRecord{Text: text, Normalized: normalized}

	switch r.format {
	case FormatJSON:
		return json.NewEncoder(r.w).Encode(rec)
	case FormatYAML:
		out, err := yaml.Marshal(rec)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		_, err = fmt.Fprintf(r.w, "---\n%s", out)
		return err
	default:
		_, err := fmt.Fprintln(r.w, normalized)
		return err
	}
}
