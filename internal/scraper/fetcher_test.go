package scraper

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
)

// pagedServer serves pages[i] for ?page=i and counts requests.
func pagedServer(t *testing.T, pages []string, check func(r *http.Request)) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if check != nil {
			check(r)
		}
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 0 || page >= len(pages) {
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(pages[page]))
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func testConfig(baseURL string) *config.Config {
	cfg := config.NewConfig()
	cfg.SuperJob.BaseURL = baseURL
	cfg.SuperJob.APIKey = "sj-test-key"
	cfg.HeadHunter.BaseURL = baseURL
	return cfg
}

func TestSuperJobFetchStats(t *testing.T) {
	t.Parallel()

	t.Run("follows more flag and aggregates", func(t *testing.T) {
		t.Parallel()
		pages := []string{
			`{"total": 3, "more": true, "objects": [
				{"id": 1, "currency": "rub", "payment_from": 100000, "payment_to": 0},
				{"id": 2, "currency": "usd", "payment_from": 3000, "payment_to": 5000}
			]}`,
			`{"total": 999, "more": false, "objects": [
				{"id": 3, "currency": "rub", "payment_from": 0, "payment_to": 150000},
				{"id": 4, "currency": "rub", "payment_from": 0, "payment_to": 0}
			]}`,
		}
		srv, calls := pagedServer(t, pages, func(r *http.Request) {
			q := r.URL.Query()
			if got := r.Header.Get("X-Api-App-Id"); got != "sj-test-key" {
				t.Errorf("expected api key header, got %q", got)
			}
			if got := q.Get("keyword"); got != "программист Go" {
				t.Errorf("unexpected keyword %q", got)
			}
			if q.Get("profession_only") != "1" || q.Get("town") != "4" || q.Get("count") != "100" {
				t.Errorf("unexpected query %v", q)
			}
		})

		f := NewSuperJob(testConfig(srv.URL), srv.Client())
		stats, err := f.FetchStats(context.Background(), "Go")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 2 {
			t.Errorf("expected 2 requests, got %d", calls.Load())
		}
		if stats.Language != "Go" {
			t.Errorf("expected language Go, got %q", stats.Language)
		}
		if stats.VacanciesFound != 3 {
			t.Errorf("expected found from first page (3), got %d", stats.VacanciesFound)
		}
		if stats.VacanciesProcessed != 2 {
			t.Errorf("expected 2 processed, got %d", stats.VacanciesProcessed)
		}
		if stats.AverageSalary != 120000 {
			t.Errorf("expected average 120000, got %d", stats.AverageSalary)
		}
	})

	t.Run("single page when more is false", func(t *testing.T) {
		t.Parallel()
		srv, calls := pagedServer(t, []string{`{"total": 0, "more": false, "objects": []}`}, nil)

		stats, err := NewSuperJob(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "Scala")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("expected 1 request, got %d", calls.Load())
		}
		if stats.VacanciesProcessed != 0 || stats.AverageSalary != 0 {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("missing field is an error", func(t *testing.T) {
		t.Parallel()
		srv, _ := pagedServer(t, []string{`{"total": 1, "objects": []}`}, nil)

		_, err := NewSuperJob(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "Go")
		if err == nil {
			t.Fatal("expected error for missing more field")
		}
	})

	t.Run("non-2xx is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		_, err := NewSuperJob(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "Go")
		var statusErr *client.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusForbidden {
			t.Errorf("expected 403 StatusError, got %v", err)
		}
	})
}

func TestHeadHunterFetchStats(t *testing.T) {
	t.Parallel()

	t.Run("stops after last page", func(t *testing.T) {
		t.Parallel()
		pages := []string{
			`{"found": 42, "pages": 2, "items": [
				{"id": "1", "salary": null},
				{"id": "2", "salary": {"from": 100000, "to": null, "currency": "RUR"}},
				{"id": "3", "salary": {"from": 100000, "to": 150000, "currency": "RUR"}}
			]}`,
			`{"found": 40, "pages": 2, "items": [
				{"id": "4", "salary": {"from": null, "to": 147500, "currency": "RUR"}},
				{"id": "5", "salary": {"from": 2000, "to": 3000, "currency": "USD"}},
				{"id": "6", "salary": {"from": null, "to": null, "currency": "RUR"}}
			]}`,
		}
		srv, calls := pagedServer(t, pages, func(r *http.Request) {
			q := r.URL.Query()
			if got := q.Get("text"); got != "программист Python" {
				t.Errorf("unexpected text %q", got)
			}
			if q.Get("area") != "1" || q.Get("search_period") != "30" || q.Get("per_page") != "100" {
				t.Errorf("unexpected query %v", q)
			}
			if r.Header.Get("X-Api-App-Id") != "" {
				t.Error("HeadHunter requests must not carry the SuperJob key")
			}
			if r.Header.Get("User-Agent") == "" {
				t.Error("expected User-Agent header")
			}
		})

		stats, err := NewHeadHunter(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "Python")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 2 {
			t.Errorf("expected 2 requests, got %d", calls.Load())
		}
		if stats.VacanciesFound != 42 {
			t.Errorf("expected found 42, got %d", stats.VacanciesFound)
		}
		if stats.VacanciesProcessed != 3 {
			t.Errorf("expected 3 processed, got %d", stats.VacanciesProcessed)
		}
		// 120000, 125000, 118000
		if stats.AverageSalary != 121000 {
			t.Errorf("expected average 121000, got %d", stats.AverageSalary)
		}
	})

	t.Run("zero pages makes one request", func(t *testing.T) {
		t.Parallel()
		srv, calls := pagedServer(t, []string{`{"found": 0, "pages": 0, "items": []}`}, nil)

		stats, err := NewHeadHunter(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "Swift")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls.Load() != 1 {
			t.Errorf("expected 1 request, got %d", calls.Load())
		}
		if stats.AverageSalary != 0 {
			t.Errorf("expected average 0, got %d", stats.AverageSalary)
		}
	})

	t.Run("genuine zero bound counts", func(t *testing.T) {
		t.Parallel()
		srv, _ := pagedServer(t, []string{
			`{"found": 1, "pages": 1, "items": [{"id": "1", "salary": {"from": 0, "to": null, "currency": "RUR"}}]}`,
		}, nil)

		stats, err := NewHeadHunter(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "C")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if stats.VacanciesProcessed != 1 || stats.AverageSalary != 0 {
			t.Errorf("expected one estimate of 0, got %+v", stats)
		}
	})

	t.Run("missing items is an error", func(t *testing.T) {
		t.Parallel()
		srv, _ := pagedServer(t, []string{`{"found": 1, "pages": 1}`}, nil)

		if _, err := NewHeadHunter(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "C"); err == nil {
			t.Error("expected error for missing items")
		}
	})

	t.Run("server error is an error", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewHeadHunter(testConfig(srv.URL), srv.Client()).FetchStats(context.Background(), "C")
		var statusErr *client.StatusError
		if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500 StatusError, got %v", err)
		}
	})
}

func TestContinuations(t *testing.T) {
	t.Parallel()

	t.Run("ByMoreFlag", func(t *testing.T) {
		t.Parallel()
		if !ByMoreFlag(Page{More: true}, 1) {
			t.Error("expected to continue when more is true")
		}
		if ByMoreFlag(Page{More: false}, 1) {
			t.Error("expected to stop when more is false")
		}
	})

	t.Run("ByPageCount", func(t *testing.T) {
		t.Parallel()
		if !ByPageCount(Page{Pages: 3}, 2) {
			t.Error("expected to continue before the last page")
		}
		if ByPageCount(Page{Pages: 3}, 3) {
			t.Error("expected to stop after page pages-1")
		}
		if ByPageCount(Page{Pages: 0}, 1) {
			t.Error("expected to stop when there are no pages")
		}
	})
}
