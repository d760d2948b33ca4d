package models

// LanguageStats holds the aggregated vacancy numbers for one programming language
type LanguageStats struct {
	Language           string `json:"language"`
	VacanciesFound     int    `json:"vacancies_found"`
	VacanciesProcessed int    `json:"vacancies_processed"`
	AverageSalary      int    `json:"average_salary"`
}

// Report is the per-language statistics of one job board, in language list order
type Report struct {
	Title  string          `json:"title"`
	Source string          `json:"source"`
	Stats  []LanguageStats `json:"stats"`
}

// NewReport creates a report with one zeroed entry per language
func NewReport(source, title string, languages []string) *Report {
	r := &Report{
		Title:  title,
		Source: source,
		Stats:  make([]LanguageStats, len(languages)),
	}
	for i, lang := range languages {
		r.Stats[i].Language = lang
	}
	return r
}

// Get returns the stats for a language
func (r *Report) Get(language string) (LanguageStats, bool) {
	for _, s := range r.Stats {
		if s.Language == language {
			return s, true
		}
	}
	return LanguageStats{}, false
}

// Languages returns the language names in report order
func (r *Report) Languages() []string {
	out := make([]string, len(r.Stats))
	for i, s := range r.Stats {
		out[i] = s.Language
	}
	return out
}
