package dataset

import (
	"context"
	"errors"

	"github.com/fr4nk3nst1ner/dssalaries/internal/models"
)

// Fetcher obtains the raw CSV text for a URL.
// Tests substitute a fixture source here.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// FetcherFunc adapts a plain function to Fetcher
type FetcherFunc func(ctx context.Context, url string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}

// Result holds every parsed record plus the filtered projection
type Result struct {
	Records   []models.SalaryRecord
	Projected []models.SeniorSalary
}

// Run fetches, parses and filters the dataset in sequence.
// A fetch failure stops before parsing; a parse failure stops before filtering.
// The returned error is always a *FetchError or a *ParseError.
func Run(ctx context.Context, fetcher Fetcher, url, level string) (Result, error) {
	text, err := fetcher.Fetch(ctx, url)
	if err != nil {
		var fetchErr *FetchError
		if !errors.As(err, &fetchErr) {
			err = &FetchError{URL: url, Err: err}
		}
		return Result{}, err
	}

	records, err := Parse(text)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Records:   records,
		Projected: FilterByLevel(records, level),
	}, nil
}
