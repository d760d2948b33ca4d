package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"
)

func TestPrintBanner(t *testing.T) {
	t.Parallel()

	t.Run("silenced", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		PrintBanner(&buf, true)
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}
	})

	t.Run("printed", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		PrintBanner(&buf, false)
		if !strings.Contains(pterm.RemoveColorFromString(buf.String()), "@fr4nk3nst1ner") {
			t.Error("expected banner text")
		}
	})
}

func TestColorizeSalary(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 50000, 150000, 250000, 400000} {
		got := pterm.RemoveColorFromString(ColorizeSalary(v))
		if v == 0 && got != "No Data" {
			t.Errorf("expected No Data, got %q", got)
		}
		if v == 150000 && got != "150,000 ₽" {
			t.Errorf("expected 150,000 ₽, got %q", got)
		}
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()

	t.Run("disabled progress is a no-op", func(t *testing.T) {
		t.Parallel()
		p := NewProgress(&bytes.Buffer{}, "hh", 3, true)
		if p != nil {
			t.Fatal("expected nil progress when disabled")
		}
		p.Done("Go")
		p.Finish()
	})

	t.Run("writes to the given writer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		p := NewProgress(&buf, "hh", 2, false)
		p.Done("Go")
		p.Done("C")
		p.Finish()
		if !strings.Contains(buf.String(), "2 / 2") {
			t.Errorf("expected finished counter, got %q", buf.String())
		}
	})
}
