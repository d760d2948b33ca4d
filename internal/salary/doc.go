// Package salary turns vacancy salary forks into a single comparable figure
// and averages those figures per language.
package salary
