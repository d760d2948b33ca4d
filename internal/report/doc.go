// Package report renders per-language salary statistics.
//
// Three formats are available: a console table (the default), GitHub
// flavoured Markdown and JSON. Reports are always written in language list
// order.
package report
