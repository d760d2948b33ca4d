package config

import (
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

// Source names accepted by --source and the sources list of the config file.
const (
	SourceSuperJob   = "superjob"
	SourceHeadHunter = "hh"
)

// Report formats.
const (
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

const (
	// AppName is used for the XDG config directory.
	AppName = "devsalary"

	// APIKeyEnv is the environment variable holding the SuperJob application key.
	APIKeyEnv = "SUPERJOB_API_KEY"

	// DefaultQueryTemplate is the free-text search phrase; %s is replaced by the language.
	DefaultQueryTemplate = "программист %s"

	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "devsalary/1.0 (+https://github.com/fr4nk3nst1ner/devsalary)"
	DefaultWorkers   = 1

	// MaxPerPage is the largest page size both job boards accept.
	MaxPerPage = 100

	// MoscowTownID is SuperJob's town id for Moscow.
	MoscowTownID = 4
	// MoscowAreaID is HeadHunter's area id for Moscow.
	MoscowAreaID = 1
	// DefaultSearchPeriod limits HeadHunter results to vacancies published in the last 30 days.
	DefaultSearchPeriod = 30
)

// DefaultLanguages is the language list both job boards are queried for.
var DefaultLanguages = []string{
	"JavaScript", "Java", "Python",
	"Ruby", "PHP", "C++", "C#", "C",
	"Go", "Swift", "Scala",
}

// Config holds all options for one run.
type Config struct {
	Languages     []string      `yaml:"languages"`
	QueryTemplate string        `yaml:"query_template"`
	Sources       []string      `yaml:"sources"`
	Timeout       time.Duration `yaml:"timeout"`
	UserAgent     string        `yaml:"user_agent"`
	Proxy         string        `yaml:"proxy"`
	Workers       int           `yaml:"workers"`

	Format string `yaml:"format"`
	Output string `yaml:"output"`
	Pretty bool   `yaml:"pretty"`

	SuperJob   SuperJobConfig   `yaml:"superjob"`
	HeadHunter HeadHunterConfig `yaml:"headhunter"`

	// Set from flags only.
	Verbose        bool   `yaml:"-"`
	NoProgress     bool   `yaml:"-"`
	Silence        bool   `yaml:"-"`
	ConfigFilePath string `yaml:"-"`
}

// SuperJobConfig configures requests to api.superjob.ru.
type SuperJobConfig struct {
	Title          string `yaml:"title"`
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Town           int    `yaml:"town"`
	PerPage        int    `yaml:"per_page"`
	ProfessionOnly bool   `yaml:"profession_only"`
}

// HeadHunterConfig configures requests to api.hh.ru.
type HeadHunterConfig struct {
	Title        string `yaml:"title"`
	BaseURL      string `yaml:"base_url"`
	Area         int    `yaml:"area"`
	PerPage      int    `yaml:"per_page"`
	SearchPeriod int    `yaml:"search_period"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Languages:     slices.Clone(DefaultLanguages),
		QueryTemplate: DefaultQueryTemplate,
		Sources:       []string{SourceSuperJob, SourceHeadHunter},
		Timeout:       DefaultTimeout,
		UserAgent:     DefaultUserAgent,
		Workers:       DefaultWorkers,
		Format:        FormatTable,
		SuperJob: SuperJobConfig{
			Title:          "SuperJob Moscow",
			BaseURL:        "https://api.superjob.ru/2.0/vacancies/",
			Town:           MoscowTownID,
			PerPage:        MaxPerPage,
			ProfessionOnly: true,
		},
		HeadHunter: HeadHunterConfig{
			Title:        "HeadHunter Moscow",
			BaseURL:      "https://api.hh.ru/vacancies",
			Area:         MoscowAreaID,
			PerPage:      MaxPerPage,
			SearchPeriod: DefaultSearchPeriod,
		},
	}
}

// XDGConfigDir returns the XDG config directory for devsalary.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// HasSource reports whether the named source is selected.
func (c *Config) HasSource(name string) bool {
	return slices.Contains(c.Sources, name)
}

// Validate checks the configuration and returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Languages) == 0 {
		return ErrNoLanguages
	}
	if strings.Count(c.QueryTemplate, "%s") != 1 {
		return ErrInvalidQueryTemplate
	}
	if len(c.Sources) == 0 {
		return ErrNoSources
	}
	for _, s := range c.Sources {
		if !IsValidSource(s) {
			return ErrUnknownSource
		}
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Workers < 1 {
		return ErrInvalidWorkers
	}
	if !IsValidFormat(c.Format) {
		return ErrUnknownFormat
	}
	if c.HasSource(SourceSuperJob) {
		if c.SuperJob.APIKey == "" {
			return ErrMissingAPIKey
		}
		if c.SuperJob.PerPage < 1 || c.SuperJob.PerPage > MaxPerPage {
			return ErrInvalidPerPage
		}
	}
	if c.HasSource(SourceHeadHunter) {
		if c.HeadHunter.PerPage < 1 || c.HeadHunter.PerPage > MaxPerPage {
			return ErrInvalidPerPage
		}
	}
	return nil
}

// IsValidSource checks if the source is supported
func IsValidSource(source string) bool {
	switch source {
	case SourceSuperJob, SourceHeadHunter:
		return true
	}
	return false
}

// IsValidFormat checks if the report format is supported
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatMarkdown, FormatJSON:
		return true
	}
	return false
}
