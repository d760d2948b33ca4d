package scraper

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/salary"
)

// headHunterResponse represents one page of the HH.ru vacancies API
type headHunterResponse struct {
	Found *int                 `json:"found"`
	Pages *int                 `json:"pages"`
	Items *[]headHunterVacancy `json:"items"`
}

type headHunterVacancy struct {
	ID     string            `json:"id"`
	Salary *headHunterSalary `json:"salary"`
}

// headHunterSalary uses null, not 0, for a bound the employer did not state.
type headHunterSalary struct {
	From     *int   `json:"from"`
	To       *int   `json:"to"`
	Currency string `json:"currency"`
}

// Page implements PageResponse.
func (r *headHunterResponse) Page() (Page, error) {
	switch {
	case r.Found == nil:
		return Page{}, errors.New("missing field found")
	case r.Pages == nil:
		return Page{}, errors.New("missing field pages")
	case r.Items == nil:
		return Page{}, errors.New("missing field items")
	}

	listings := make([]*salary.Listing, len(*r.Items))
	for i, v := range *r.Items {
		if v.Salary == nil {
			continue
		}
		listings[i] = &salary.Listing{
			Currency: v.Salary.Currency,
			From:     salary.Nullable(v.Salary.From),
			To:       salary.Nullable(v.Salary.To),
		}
	}
	return Page{Found: *r.Found, Listings: listings, Pages: *r.Pages}, nil
}

// NewHeadHunter creates a fetcher for api.hh.ru. Pagination stops at the reported page count.
func NewHeadHunter(cfg *config.Config, httpClient *http.Client) *PagedFetcher {
	hh := cfg.HeadHunter

	return &PagedFetcher{
		name:          config.SourceHeadHunter,
		title:         hh.Title,
		queryTemplate: cfg.QueryTemplate,
		httpClient:    httpClient,
		headers:       client.DefaultHeaders(cfg.UserAgent),
		buildURL: func(query string, page int) (string, error) {
			u, err := url.Parse(hh.BaseURL)
			if err != nil {
				return "", err
			}
			q := u.Query()
			q.Set("text", query)
			if hh.Area > 0 {
				q.Set("area", strconv.Itoa(hh.Area))
			}
			if hh.SearchPeriod > 0 {
				q.Set("search_period", strconv.Itoa(hh.SearchPeriod))
			}
			q.Set("per_page", strconv.Itoa(hh.PerPage))
			q.Set("page", strconv.Itoa(page))
			u.RawQuery = q.Encode()
			return u.String(), nil
		},
		newResponse: func() PageResponse { return &headHunterResponse{} },
		next:        ByPageCount,
		estimate:    salary.ForCurrency(salary.CurrencyHeadHunter),
	}
}
