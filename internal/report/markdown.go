package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// MarkdownWriter outputs reports as GitHub flavoured Markdown tables.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write implements Writer.
func (w *MarkdownWriter) Write(reports []*models.Report) error {
	md := markdown.NewMarkdown(w.output)
	md.H1("Developer salaries")
	md.PlainText("")

	for _, r := range reports {
		md.H2(r.Title)
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: Header,
			Rows:   rows(r, strconv.Itoa),
		})
		md.PlainText("")
		w.writeSummary(md, r)
	}

	return md.Build()
}

// writeSummary adds a short bullet list with the share of usable vacancies and the top language.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, r *models.Report) {
	var found, processed int
	var top models.LanguageStats
	for _, s := range r.Stats {
		found += s.VacanciesFound
		processed += s.VacanciesProcessed
		if s.AverageSalary > top.AverageSalary {
			top = s
		}
	}

	items := []string{
		"Vacancies with a usable salary: " + strconv.Itoa(processed) +
			" (" + strconv.Itoa(utils.Percent(processed, found)) + "% of found)",
	}
	if top.Language != "" {
		items = append(items, "Highest average salary: "+top.Language+" ("+utils.FormatSalary(top.AverageSalary)+")")
	}
	md.BulletList(items...)
	md.PlainText("")
}
