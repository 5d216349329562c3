package models

import (
	"fmt"
	"strconv"
	"strings"
)

// CSVColumns lists the dataset header in file order
var CSVColumns = []string{
	"work_year",
	"experience_level",
	"employment_type",
	"job_title",
	"salary",
	"salary_currency",
	"salary_in_usd",
	"employee_residence",
	"remote_ratio",
	"company_location",
	"company_size",
}

// SalaryRecord represents one row of the salaries dataset
type SalaryRecord struct {
	WorkYear          int     `json:"work_year"`
	ExperienceLevel   string  `json:"experience_level"`
	EmploymentType    string  `json:"employment_type"`
	JobTitle          string  `json:"job_title"`
	Salary            float64 `json:"salary"`
	SalaryCurrency    string  `json:"salary_currency"`
	SalaryInUSD       float64 `json:"salary_in_usd"`
	EmployeeResidence string  `json:"employee_residence"`
	RemoteRatio       float64 `json:"remote_ratio"`
	CompanyLocation   string  `json:"company_location"`
	CompanySize       string  `json:"company_size"`
}

// SeniorSalary is the projection kept for records matching the experience level filter
type SeniorSalary struct {
	WorkYear  int     `json:"work_year"`
	JobTitle  string  `json:"job_title"`
	SalaryUSD float64 `json:"salary_usd"`
}

// String renders the tuple as (2021, "Data Scientist", 100000.0)
func (s SeniorSalary) String() string {
	return fmt.Sprintf("(%d, %s, %s)", s.WorkYear, strconv.Quote(s.JobTitle), formatFloat(s.SalaryUSD))
}

// FormatSeniorSalaries renders a tuple list as [(..), (..)]
func FormatSeniorSalaries(rows []SeniorSalary) string {
	parts := make([]string, 0, len(rows))
	for _, r := range rows {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// formatFloat keeps a trailing .0 on integral values
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
