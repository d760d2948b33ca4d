package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

// SourceFetcher produces the statistics of one language for one job board.
type SourceFetcher interface {
	Name() string
	Title() string
	FetchStats(ctx context.Context, language string) (models.LanguageStats, error)
}

// Page is one decoded search result page with provider sentinels already removed.
type Page struct {
	// Found is the provider's total number of matches for the query.
	Found int
	// Listings holds the salary part of every vacancy on the page; nil entries have no salary.
	Listings []*salary.Listing
	// More is SuperJob's "more pages follow" flag.
	More bool
	// Pages is HeadHunter's total page count.
	Pages int
}

// PageResponse is a raw provider response that can be checked and converted to a Page.
type PageResponse interface {
	Page() (Page, error)
}

// RequestBuilder returns the URL for one page of a search.
type RequestBuilder func(query string, page int) (string, error)

// Continuation decides whether page index next should be requested after p.
type Continuation func(p Page, next int) bool

// ByMoreFlag continues while the provider sets its "more" flag.
func ByMoreFlag(p Page, _ int) bool {
	return p.More
}

// ByPageCount continues until the page index reaches the provider's page count.
func ByPageCount(p Page, next int) bool {
	return next < p.Pages
}

// PagedFetcher walks every result page of a search and aggregates salary estimates.
type PagedFetcher struct {
	name          string
	title         string
	queryTemplate string
	httpClient    *http.Client
	headers       http.Header
	buildURL      RequestBuilder
	newResponse   func() PageResponse
	next          Continuation
	estimate      salary.Estimator
}

// Name implements SourceFetcher.
func (f *PagedFetcher) Name() string {
	return f.name
}

// Title implements SourceFetcher.
func (f *PagedFetcher) Title() string {
	return f.title
}

// FetchStats implements SourceFetcher.
func (f *PagedFetcher) FetchStats(ctx context.Context, language string) (models.LanguageStats, error) {
	stats := models.LanguageStats{Language: language}
	query := fmt.Sprintf(f.queryTemplate, language)

	var acc salary.Accumulator
	for page := 0; ; page++ {
		p, err := f.fetchPage(ctx, query, page)
		if err != nil {
			return stats, fmt.Errorf("%s: %s page %d: %w", f.name, language, page, err)
		}

		if page == 0 {
			stats.VacanciesFound = p.Found
		}
		n := acc.AddListings(p.Listings, f.estimate)

		slog.Debug("page processed",
			"source", f.name,
			"language", language,
			"page", page,
			"listings", len(p.Listings),
			"estimated", n,
		)

		if !f.next(p, page+1) {
			break
		}
	}

	stats.VacanciesProcessed = acc.Count()
	stats.AverageSalary = acc.Average()
	return stats, nil
}

func (f *PagedFetcher) fetchPage(ctx context.Context, query string, page int) (Page, error) {
	rawURL, err := f.buildURL(query, page)
	if err != nil {
		return Page{}, fmt.Errorf("build URL failed: %w", err)
	}

	resp := f.newResponse()
	if err := client.GetJSON(ctx, f.httpClient, rawURL, f.headers, resp); err != nil {
		return Page{}, err
	}
	return resp.Page()
}
