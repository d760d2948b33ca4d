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

// superJobResponse represents one page of the SuperJob vacancies API
type superJobResponse struct {
	Total   *int               `json:"total"`
	More    *bool              `json:"more"`
	Objects *[]superJobVacancy `json:"objects"`
}

// superJobVacancy represents a vacancy object from SuperJob.
// payment_from and payment_to are 0 when the employer did not state them.
type superJobVacancy struct {
	ID          int    `json:"id"`
	PaymentFrom int    `json:"payment_from"`
	PaymentTo   int    `json:"payment_to"`
	Currency    string `json:"currency"`
}

// Page implements PageResponse.
func (r *superJobResponse) Page() (Page, error) {
	switch {
	case r.Total == nil:
		return Page{}, errors.New("missing field total")
	case r.More == nil:
		return Page{}, errors.New("missing field more")
	case r.Objects == nil:
		return Page{}, errors.New("missing field objects")
	}

	listings := make([]*salary.Listing, len(*r.Objects))
	for i, v := range *r.Objects {
		listings[i] = &salary.Listing{
			Currency: v.Currency,
			From:     salary.NonZero(v.PaymentFrom),
			To:       salary.NonZero(v.PaymentTo),
		}
	}
	return Page{Found: *r.Total, Listings: listings, More: *r.More}, nil
}

// NewSuperJob creates a fetcher for api.superjob.ru. Pagination follows the "more" flag.
func NewSuperJob(cfg *config.Config, httpClient *http.Client) *PagedFetcher {
	sj := cfg.SuperJob
	headers := client.DefaultHeaders(cfg.UserAgent)
	headers.Set("X-Api-App-Id", sj.APIKey)

	return &PagedFetcher{
		name:          config.SourceSuperJob,
		title:         sj.Title,
		queryTemplate: cfg.QueryTemplate,
		httpClient:    httpClient,
		headers:       headers,
		buildURL: func(query string, page int) (string, error) {
			u, err := url.Parse(sj.BaseURL)
			if err != nil {
				return "", err
			}
			q := u.Query()
			q.Set("keyword", query)
			if sj.ProfessionOnly {
				q.Set("profession_only", "1")
			}
			if sj.Town > 0 {
				q.Set("town", strconv.Itoa(sj.Town))
			}
			q.Set("page", strconv.Itoa(page))
			q.Set("count", strconv.Itoa(sj.PerPage))
			u.RawQuery = q.Encode()
			return u.String(), nil
		},
		newResponse: func() PageResponse { return &superJobResponse{} },
		next:        ByMoreFlag,
		estimate:    salary.ForCurrency(salary.CurrencySuperJob),
	}
}
