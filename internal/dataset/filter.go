package dataset

import (
	"math"

	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
)

// SeniorLevel is the experience level code for senior positions
const SeniorLevel = "SE"

// FilterAndProject keeps records whose experience level equals SeniorLevel
func FilterAndProject(records []models.SalaryRecord) []models.SeniorSalary {
	return FilterByLevel(records, SeniorLevel)
}

// FilterByLevel keeps records whose experience level exactly matches level and
// projects them to (work year, job title, rounded USD salary), preserving order.
// Rounding is half away from zero.
func FilterByLevel(records []models.SalaryRecord, level string) []models.SeniorSalary {
	result := []models.SeniorSalary{}
	for _, rec := range records {
		if rec.ExperienceLevel != level {
			continue
		}
		result = append(result, models.SeniorSalary{
			WorkYear:  rec.WorkYear,
			JobTitle:  rec.JobTitle,
			SalaryUSD: math.Round(rec.SalaryInUSD),
		})
	}
	return result
}
