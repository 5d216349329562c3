package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
)

// ErrMissingColumn is wrapped by ParseError when the header lacks a schema column
var ErrMissingColumn = errors.New("missing required column")

const utf8BOM = "\uFEFF"

// Parse converts CSV text into salary records in file order.
// Columns are matched by header name; the first bad row aborts the whole load.
func Parse(csvText string) ([]models.SalaryRecord, error) {
	reader := csv.NewReader(strings.NewReader(strings.TrimPrefix(csvText, utf8BOM)))
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err == io.EOF {
		return []models.SalaryRecord{}, nil
	}
	if err != nil {
		return nil, wrapCSVError(err)
	}

	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	records := []models.SalaryRecord{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err)
		}

		line, _ := reader.FieldPos(0)
		record, err := decodeRow(row, index, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// columnIndex maps every schema column to its position in the header
func columnIndex(header []string) (map[string]int, error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	index := make(map[string]int, len(models.CSVColumns))
	for _, col := range models.CSVColumns {
		pos, ok := positions[col]
		if !ok {
			return nil, &ParseError{Line: 1, Column: col, Err: ErrMissingColumn}
		}
		index[col] = pos
	}
	return index, nil
}

func decodeRow(row []string, index map[string]int, line int) (models.SalaryRecord, error) {
	var (
		rec      models.SalaryRecord
		firstErr error
	)

	text := func(col string) string {
		return row[index[col]]
	}
	integer := func(col string) int {
		v, err := strconv.Atoi(text(col))
		if err != nil && firstErr == nil {
			firstErr = &ParseError{Line: line, Column: col, Err: fmt.Errorf("invalid integer %q", text(col))}
		}
		return v
	}
	float := func(col string) float64 {
		v, err := strconv.ParseFloat(text(col), 64)
		if err != nil && firstErr == nil {
			firstErr = &ParseError{Line: line, Column: col, Err: fmt.Errorf("invalid float %q", text(col))}
		}
		return v
	}

	rec.WorkYear = integer("work_year")
	rec.ExperienceLevel = text("experience_level")
	rec.EmploymentType = text("employment_type")
	rec.JobTitle = text("job_title")
	rec.Salary = float("salary")
	rec.SalaryCurrency = text("salary_currency")
	rec.SalaryInUSD = float("salary_in_usd")
	rec.EmployeeResidence = text("employee_residence")
	rec.RemoteRatio = float("remote_ratio")
	rec.CompanyLocation = text("company_location")
	rec.CompanySize = text("company_size")

	if firstErr != nil {
		return models.SalaryRecord{}, firstErr
	}
	return rec, nil
}

// wrapCSVError converts encoding/csv failures (field count, quoting) into ParseError
func wrapCSVError(err error) error {
	var csvErr *csv.ParseError
	if errors.As(err, &csvErr) {
		return &ParseError{Line: csvErr.Line, Err: csvErr.Err}
	}
	return &ParseError{Err: err}
}
