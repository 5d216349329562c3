package dataset

import (
	"math"
	"reflect"
	"testing"

	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
)

func record(year int, level, title string, usd float64) models.SalaryRecord {
	return models.SalaryRecord{
		WorkYear:        year,
		ExperienceLevel: level,
		EmploymentType:  "FT",
		JobTitle:        title,
		Salary:          usd,
		SalaryCurrency:  "USD",
		SalaryInUSD:     usd,
		RemoteRatio:     100,
		CompanySize:     "M",
	}
}

// TestFilterAndProject_ScenarioA verifies the senior rows are kept in order and rounded.
func TestFilterAndProject_ScenarioA(t *testing.T) {
	records, err := Parse(scenarioA)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := FilterAndProject(records)
	expected := []models.SeniorSalary{
		{WorkYear: 2021, JobTitle: "Data Scientist", SalaryUSD: 100000},
		{WorkYear: 2022, JobTitle: "ML Engineer", SalaryUSD: 150000},
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}

// TestFilterAndProject_Empty verifies no input yields an empty, non-nil result.
func TestFilterAndProject_Empty(t *testing.T) {
	got := FilterAndProject(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty slice, got %v", got)
	}
}

// TestFilterAndProject_ExactMatch verifies only the literal "SE" code passes.
func TestFilterAndProject_ExactMatch(t *testing.T) {
	levels := []string{"SE", "se", " SE", "SE ", "MI", "EN", "EX", "", "SEN"}

	var records []models.SalaryRecord
	for i, level := range levels {
		records = append(records, record(2020+i, level, level+" title", float64(i)))
	}

	got := FilterAndProject(records)
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %v", got)
	}
	if got[0].JobTitle != "SE title" {
		t.Errorf("unexpected match: %v", got[0])
	}
}

// TestFilterAndProject_Rounding verifies round half away from zero on salary_in_usd.
func TestFilterAndProject_Rounding(t *testing.T) {
	testCases := []struct {
		input    float64
		expected float64
	}{
		{150000.4, 150000},
		{150000.5, 150001},
		{150000.6, 150001},
		{99999.49, 99999},
		{0.5, 1},
		{-0.5, -1},
		{-2.5, -3},
		{2.5, 3},
		{42, 42},
	}

	for _, tc := range testCases {
		got := FilterAndProject([]models.SalaryRecord{record(2021, "SE", "x", tc.input)})
		if len(got) != 1 {
			t.Fatalf("input %v: expected one row, got %v", tc.input, got)
		}
		if got[0].SalaryUSD != tc.expected {
			t.Errorf("input %v: expected %v, got %v", tc.input, tc.expected, got[0].SalaryUSD)
		}
		if got[0].SalaryUSD != math.Trunc(got[0].SalaryUSD) {
			t.Errorf("input %v: result %v is not integral", tc.input, got[0].SalaryUSD)
		}
	}
}

// TestFilterAndProject_OrderAndPurity verifies stable order, subset length and idempotence.
func TestFilterAndProject_OrderAndPurity(t *testing.T) {
	records := []models.SalaryRecord{
		record(2020, "SE", "a", 1),
		record(2021, "MI", "b", 2),
		record(2022, "SE", "c", 3),
		record(2022, "SE", "c", 3),
		record(2023, "EX", "d", 4),
		record(2024, "SE", "e", 5),
	}
	snapshot := append([]models.SalaryRecord(nil), records...)

	first := FilterAndProject(records)
	second := FilterAndProject(records)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(records, snapshot) {
		t.Errorf("input was mutated")
	}
	if len(first) > len(records) {
		t.Errorf("output longer than input")
	}

	titles := []string{}
	for _, r := range first {
		titles = append(titles, r.JobTitle)
	}
	if !reflect.DeepEqual(titles, []string{"a", "c", "c", "e"}) {
		t.Errorf("unexpected order: %v", titles)
	}
}

// TestFilterByLevel verifies a different level code can be selected.
func TestFilterByLevel(t *testing.T) {
	records := []models.SalaryRecord{
		record(2020, "SE", "a", 1),
		record(2021, "MI", "b", 2.5),
	}
	got := FilterByLevel(records, "MI")
	expected := []models.SeniorSalary{{WorkYear: 2021, JobTitle: "b", SalaryUSD: 3}}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
