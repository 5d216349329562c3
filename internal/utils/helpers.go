package utils

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// experienceLevels maps dataset experience codes to readable names
var experienceLevels = map[string]string{
	"EN": "Entry-level",
	"MI": "Mid-level",
	"SE": "Senior",
	"EX": "Executive",
}

// ExperienceLevelName returns the readable name for a level code, or the code itself
func ExperienceLevelName(code string) string {
	if name, ok := experienceLevels[code]; ok {
		return name
	}
	return code
}

// FormatSalary formats a USD amount as $123,457
func FormatSalary(usd float64) string {
	if math.IsNaN(usd) || math.IsInf(usd, 0) {
		return "Not Available"
	}
	return fmt.Sprintf("$%s", humanize.Comma(int64(math.Round(usd))))
}
