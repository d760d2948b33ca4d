package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/devsalary/internal/client"
	"github.com/fr4nk3nst1ner/devsalary/internal/config"
	"github.com/fr4nk3nst1ner/devsalary/internal/log"
	"github.com/fr4nk3nst1ner/devsalary/internal/models"
	"github.com/fr4nk3nst1ner/devsalary/internal/report"
	"github.com/fr4nk3nst1ner/devsalary/internal/scraper"
	"github.com/fr4nk3nst1ner/devsalary/internal/ui"
	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

// runRootCmd executes a full run: both job boards, then the report.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.Verbose)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ui.PrintBanner(cmd.ErrOrStderr(), cfg.Silence)

	out := cmd.OutOrStdout()
	if cfg.Output != "" {
		f, err := createOutputFile(cfg.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	return runSalaries(ctx, cfg, out, cmd.ErrOrStderr())
}

// buildConfig layers defaults, the config file, the environment and flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly given file must exist; the default locations are optional.
	if path := config.FindConfigFile(cfg.ConfigFilePath); path != "" {
		if err := config.LoadFile(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	envFile, err := flags.GetString("env-file")
	if err != nil {
		return nil, err
	}
	if err := config.LoadEnv(cfg, envFile); err != nil {
		return nil, err
	}

	if flags.Changed("source") {
		if cfg.Sources, err = flags.GetStringSlice("source"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("languages") {
		if cfg.Languages, err = flags.GetStringSlice("languages"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("format") {
		if cfg.Format, err = flags.GetString("format"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.Output, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("timeout") {
		if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.Proxy, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("pretty") {
		if cfg.Pretty, err = flags.GetBool("pretty"); err != nil {
			return nil, err
		}
	}

	if cfg.NoProgress, err = flags.GetBool("no-progress"); err != nil {
		return nil, err
	}
	silence, err := flags.GetBool("silence")
	if err != nil {
		return nil, err
	}
	noBanner, err := flags.GetBool("nobanner")
	if err != nil {
		return nil, err
	}
	cfg.Silence = silence || noBanner
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// newFetchers builds one fetcher per selected source, in the configured order.
func newFetchers(cfg *config.Config) ([]scraper.SourceFetcher, error) {
	httpClient, err := client.CreateProxyHTTPClient(cfg.Proxy, cfg.Timeout)
	if err != nil {
		return nil, err
	}

	fetchers := make([]scraper.SourceFetcher, 0, len(cfg.Sources))
	for _, src := range cfg.Sources {
		switch src {
		case config.SourceSuperJob:
			fetchers = append(fetchers, scraper.NewSuperJob(cfg, httpClient))
		case config.SourceHeadHunter:
			fetchers = append(fetchers, scraper.NewHeadHunter(cfg, httpClient))
		default:
			return nil, fmt.Errorf("%w: %q", config.ErrUnknownSource, src)
		}
	}
	return fetchers, nil
}

// runSalaries fetches every selected source in turn and writes the report to out.
// Table output is written as soon as a source finishes.
func runSalaries(ctx context.Context, cfg *config.Config, out, progressOut io.Writer) error {
	slog.Debug("starting",
		"sources", cfg.Sources,
		"languages", cfg.Languages,
		"workers", cfg.Workers,
		slog.Group("superjob", "api_key", cfg.SuperJob.APIKey, "town", cfg.SuperJob.Town),
		slog.Group("headhunter", "area", cfg.HeadHunter.Area, "search_period", cfg.HeadHunter.SearchPeriod),
	)

	fetchers, err := newFetchers(cfg)
	if err != nil {
		return err
	}

	writer, err := report.New(cfg.Format, out, cfg.Pretty)
	if err != nil {
		return err
	}
	table, streaming := writer.(*report.TableWriter)

	reports := make([]*models.Report, 0, len(fetchers))
	for _, f := range fetchers {
		progress := ui.NewProgress(progressOut, f.Name(), len(cfg.Languages), cfg.NoProgress)
		r, err := scraper.Collect(ctx, f, cfg.Languages, scraper.CollectOptions{
			Workers: cfg.Workers,
			OnLanguage: func(s models.LanguageStats) {
				progress.Done(s.Language)
			},
		})
		progress.Finish()
		if err != nil {
			return err
		}
		logSummary(r)

		if streaming {
			if err := table.WriteReport(r); err != nil {
				return err
			}
			continue
		}
		reports = append(reports, r)
	}

	if streaming {
		return nil
	}
	return writer.Write(reports)
}

func logSummary(r *models.Report) {
	var found, processed int
	for _, s := range r.Stats {
		found += s.VacanciesFound
		processed += s.VacanciesProcessed
	}
	slog.Info("source finished",
		"source", r.Source,
		"found", found,
		"processed", processed,
		"usable_percent", utils.Percent(processed, found),
	)
	for _, s := range r.Stats {
		slog.Debug("language average", "source", r.Source, "language", s.Language, "average", utils.FormatSalary(s.AverageSalary))
	}
}

// createOutputFile creates the report file and its parent directories.
func createOutputFile(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, nil
}
