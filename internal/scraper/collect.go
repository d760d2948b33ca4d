package scraper

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/fr4nk3nst1ner/devsalary/internal/models"
)

// CollectOptions controls how Collect walks the language list.
type CollectOptions struct {
	// Workers is the number of languages fetched at once. Values below 2 fetch sequentially.
	Workers int
	// OnLanguage is called after each language finishes. It may be nil.
	OnLanguage func(models.LanguageStats)
}

// Collect fetches every language from one source and returns the report in language order.
// The first error stops the collection and is returned.
func Collect(ctx context.Context, f SourceFetcher, languages []string, opts CollectOptions) (*models.Report, error) {
	report := models.NewReport(f.Name(), f.Title(), languages)

	if opts.Workers < 2 {
		for i, lang := range languages {
			stats, err := f.FetchStats(ctx, lang)
			if err != nil {
				return nil, err
			}
			report.Stats[i] = stats
			done(opts, stats)
		}
		return report, nil
	}

	// Each goroutine writes only its own index; mu serialises the callback.
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, lang := range languages {
		g.Go(func() error {
			stats, err := f.FetchStats(gctx, lang)
			if err != nil {
				return err
			}
			report.Stats[i] = stats
			mu.Lock()
			done(opts, stats)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}

func done(opts CollectOptions, stats models.LanguageStats) {
	slog.Debug("language processed",
		"language", stats.Language,
		"found", stats.VacanciesFound,
		"processed", stats.VacanciesProcessed,
		"average", stats.AverageSalary,
	)
	if opts.OnLanguage != nil {
		opts.OnLanguage(stats)
	}
}
