package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// Header is the column row of every rendered report.
var Header = []string{"Language", "Vacancies Found", "Vacancies Processed", "Average Salary"}

// Writer outputs a set of source reports.
type Writer interface {
	Write(reports []*models.Report) error
}

// New returns the writer for format.
func New(format string, w io.Writer, pretty bool) (Writer, error) {
	switch format {
	case config.FormatTable, "":
		return NewTableWriter(w, pretty), nil
	case config.FormatMarkdown:
		return NewMarkdownWriter(w), nil
	case config.FormatJSON:
		return NewJSONWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}
}

// rows turns a report into string cells, one row per language.
func rows(r *models.Report, salary func(int) string) [][]string {
	out := make([][]string, len(r.Stats))
	for i, s := range r.Stats {
		out[i] = []string{
			s.Language,
			strconv.Itoa(s.VacanciesFound),
			strconv.Itoa(s.VacanciesProcessed),
			salary(s.AverageSalary),
		}
	}
	return out
}
