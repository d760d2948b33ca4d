package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrMissingAPIKey is returned when SuperJob is selected but no application key is set.
	ErrMissingAPIKey = errors.New("missing SuperJob API key: set " + APIKeyEnv + " or superjob.api_key")

	ErrNoLanguages          = errors.New("no languages configured")
	ErrInvalidQueryTemplate = errors.New("invalid query template: must contain exactly one %s")
	ErrNoSources            = errors.New("no sources selected")
	ErrUnknownSource        = errors.New("unknown source: must be one of superjob, hh")
	ErrInvalidTimeout       = errors.New("invalid timeout: must be positive")
	ErrInvalidWorkers       = errors.New("invalid workers: must be at least 1")
	ErrUnknownFormat        = errors.New("unknown format: must be one of table, markdown, json")
	ErrInvalidPerPage       = errors.New("invalid per_page: must be between 1 and 100")
)
