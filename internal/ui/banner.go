package ui

import (
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
	"github.com/fr4nk3nst1ner/dssalaries/internal/utils"
)

const bannerText = `
██████╗ ███████╗    ███████╗ █████╗ ██╗      █████╗ ██████╗ ██╗███████╗███████╗
██╔══██╗██╔════╝    ██╔════╝██╔══██╗██║     ██╔══██╗██╔══██╗██║██╔════╝██╔════╝
██║  ██║███████╗    ███████╗███████║██║     ███████║██████╔╝██║█████╗  ███████╗
██║  ██║╚════██║    ╚════██║██╔══██║██║     ██╔══██║██╔══██╗██║██╔══╝  ╚════██║
██████╔╝███████║    ███████║██║  ██║███████╗██║  ██║██║  ██║██║███████╗███████║
╚═════╝ ╚══════╝    ╚══════╝╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═╝  ╚═╝╚═╝╚══════╝╚══════╝
 @fr4nk3nst1ner
`

// ColorizeText applies a random color fade to the input text
func ColorizeText(text string) string {
	random := rand.New(rand.NewSource(time.Now().UnixNano()))

	startColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))
	endColor := pterm.NewRGB(uint8(random.Intn(256)), uint8(random.Intn(256)), uint8(random.Intn(256)))

	chars := strings.Split(text, "")
	steps := float32(len(chars))

	var b strings.Builder
	for i, ch := range chars {
		b.WriteString(startColor.Fade(0, steps, float32(i), endColor).Sprint(ch))
	}
	return b.String()
}

// PrintBanner writes the application banner to w unless silenced
func PrintBanner(w io.Writer, silence bool) {
	if !silence {
		fmt.Fprintln(w, ColorizeText(bannerText))
	}
}

// ColorizeSalary applies color formatting to a USD salary
func ColorizeSalary(usd float64) string {
	formatted := utils.FormatSalary(usd)

	switch {
	case usd >= 300000:
		return pterm.Green(formatted)
	case usd >= 200000:
		return pterm.LightGreen(formatted)
	case usd >= 100000:
		return pterm.Yellow(formatted)
	default:
		return pterm.Red(formatted)
	}
}

// RenderTable renders the projected salaries as a table titled by experience level
func RenderTable(rows []models.SeniorSalary, level string) (string, error) {
	data := pterm.TableData{
		{"Year", "Job Title", utils.ExperienceLevelName(level) + " Salary (USD)"},
	}
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.WorkYear),
			r.JobTitle,
			ColorizeSalary(r.SalaryUSD),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
