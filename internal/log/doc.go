// Package log configures slog for devsalary and keeps credentials out of log output.
package log
