package report

import (
	"encoding/json"
	"io"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// JSONWriter outputs all reports as one indented JSON array.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// Write implements Writer.
func (w *JSONWriter) Write(reports []*models.Report) error {
	enc := json.NewEncoder(w.output)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(reports)
}
