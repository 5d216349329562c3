package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pterm/pterm"

	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
)

func TestPrintBanner_Silenced(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, true)
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}

	PrintBanner(&buf, false)
	if buf.Len() == 0 {
		t.Errorf("expected banner output")
	}
}

func TestRenderTable(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	rows := []models.SeniorSalary{
		{WorkYear: 2021, JobTitle: "Data Scientist", SalaryUSD: 100000},
		{WorkYear: 2022, JobTitle: "ML Engineer", SalaryUSD: 150000},
	}

	out, err := RenderTable(rows, "SE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"Senior Salary (USD)", "Data Scientist", "ML Engineer", "$100,000", "$150,000", "2022"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestColorizeSalary(t *testing.T) {
	pterm.DisableColor()
	defer pterm.EnableColor()

	if got := ColorizeSalary(250000.5); !strings.Contains(got, "$250,001") {
		t.Errorf("expected $250,001, got %q", got)
	}
}
