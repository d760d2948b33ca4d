package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/devsalary/internal/utils"
)

const bannerText = `
██████╗ ███████╗██╗   ██╗    ███████╗ █████╗ ██╗      █████╗ ██████╗ ██╗   ██╗
██╔══██╗██╔════╝██║   ██║    ██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗╚██╗ ██╔╝
██║  ██║█████╗  ██║   ██║    ███████╗███████║██║     ███████║██████╔╝ ╚████╔╝
██║  ██║██╔══╝  ╚██╗ ██╔╝    ╚════██║██╔══██║██║     ██╔══██║██╔══██╗  ╚██╔╝
██████╔╝███████╗ ╚████╔╝     ███████║██║  ██║███████╗██║  ██║██║  ██║   ██║
╚═════╝ ╚══════╝  ╚═══╝      ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝
 @fr4nk3nst1ner
`

// Salary bands in roubles used by ColorizeSalary.
const (
	highSalary   = 300000
	goodSalary   = 200000
	mediumSalary = 100000
)

// ColorizeText applies a random colour fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	firstPoint := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	half := len(chars) / 2
	if half == 0 {
		half = 1
	}

	var b strings.Builder
	for i, c := range chars {
		b.WriteString(startColor.Fade(0, float32(len(chars)), float32(i%half), firstPoint).Sprint(c))
	}
	return b.String()
}

// PrintBanner writes the application banner to w unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if silence {
		return
	}
	fmt.Fprintln(w, ColorizeText(bannerText))
}

// ColorizeSalary formats a rouble amount and colours it by salary band
func ColorizeSalary(salary int) string {
	formatted := utils.FormatSalary(salary)

	switch {
	case salary == 0:
		return pterm.Red(formatted)
	case salary >= highSalary:
		return pterm.Green(formatted)
	case salary >= goodSalary:
		return pterm.LightGreen(formatted)
	case salary >= mediumSalary:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}
