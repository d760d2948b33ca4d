package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatSalary formats a rouble amount with thousands separators, e.g. "120,000 ₽"
func FormatSalary(salary int) string {
	if salary == 0 {
		return "No Data"
	}
	return fmt.Sprintf("%s ₽", humanize.Comma(int64(salary)))
}

// Percent returns part as a whole-number percentage of total, 0 when total is 0
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
