package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fr4nk3nst1ner/devsalary/internal/config"
)

// NewRootCmd creates the root command for devsalary.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devsalary",
		Short: "Average developer salaries per programming language from SuperJob and HeadHunter",
		Long: `devsalary queries the SuperJob and HeadHunter vacancy APIs for every language
in its language list, predicts a rouble salary for each vacancy and prints, per
job board, how many vacancies were found, how many had a usable salary and the
average predicted salary.

The SuperJob API key is read from SUPERJOB_API_KEY (a .env file in the working
directory is loaded first). HeadHunter needs no key.

Examples:
  # Both job boards, plain tables
  devsalary

  # HeadHunter only, four languages at a time, coloured output
  devsalary --source hh --workers 4 --pretty

  # Markdown report written to a file
  devsalary --format markdown --output report.md

Configuration file (.devsalary.yaml) example:
  languages: [Go, Rust, Python]
  timeout: 1m
  headhunter:
    area: 2
    title: HeadHunter Saint Petersburg`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.Flags().StringSliceP("source", "s", nil,
		"Job boards to query (superjob, hh); default both")
	cmd.Flags().StringSliceP("languages", "l", nil,
		"Comma separated language list overriding the built-in one")
	cmd.Flags().StringP("format", "f", config.FormatTable,
		"Report format: table, markdown or json")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to a file instead of stdout")
	cmd.Flags().IntP("workers", "w", config.DefaultWorkers,
		"Number of languages fetched concurrently per job board")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"HTTP timeout for each request")
	cmd.Flags().String("proxy", "", "Proxy URL to use")
	cmd.Flags().Bool("pretty", false, "Humanize and colour salaries in table output")
	cmd.Flags().Bool("no-progress", false, "Do not show progress bars")
	cmd.Flags().Bool("silence", false, "Silence the banner")
	cmd.Flags().Bool("nobanner", false, "Silence the banner (alias for --silence)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .devsalary.yaml or the XDG config directory)")
	cmd.Flags().String("env-file", ".env", "Dotenv file to load before reading "+config.APIKeyEnv)

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
