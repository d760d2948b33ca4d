package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
)

// TableWriter prints each report as a titled console table followed by a blank line.
type TableWriter struct {
	output io.Writer
	pretty bool
}

// NewTableWriter creates a TableWriter. With pretty set, salaries are humanized and
// coloured and the title is bold; otherwise the output is plain text.
func NewTableWriter(output io.Writer, pretty bool) *TableWriter {
	return &TableWriter{output: output, pretty: pretty}
}

// Write implements Writer.
func (w *TableWriter) Write(reports []*models.Report) error {
	for _, r := range reports {
		if err := w.WriteReport(r); err != nil {
			return err
		}
	}
	return nil
}

// WriteReport renders a single report.
func (w *TableWriter) WriteReport(r *models.Report) error {
	salary := strconv.Itoa
	title := r.Title
	if w.pretty {
		salary = ui.ColorizeSalary
		title = pterm.Bold.Sprint(title)
	}

	data := pterm.TableData{Header}
	data = append(data, rows(r, salary)...)

	table, err := pterm.DefaultTable.
		WithHasHeader().
		WithHeaderRowSeparator("-").
		WithBoxed().
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("render %s table: %w", r.Source, err)
	}
	if !w.pretty {
		table = pterm.RemoveColorFromString(table)
	}

	_, err = fmt.Fprintf(w.output, "%s\n%s\n\n", title, table)
	return err
}
