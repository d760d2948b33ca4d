// Package config holds the settings for a devsalary run.
//
// Values come from three layers, later ones winning: built-in defaults from
// NewConfig, an optional YAML file, and command-line flags. The SuperJob API
// key is read from the SUPERJOB_API_KEY environment variable, which may be
// provided through a .env file in the working directory.
package config
