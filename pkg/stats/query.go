package stats

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/anrid/dog-stats/pkg/logger"
)

// StatisticsResult holds everything computed for one breed query.
// Percentages are ratios in [0,1]; per-year maps only hold years the breed
// appears in.
type StatisticsResult struct {
	ID    string
	Breed string

	// Years of the whole dataset, so absent years can be reported too.
	DatasetYears []int

	YearsPresent        []int
	TotalRegistrations  int
	PercentOfYear       map[int]float64
	PercentOfAll        float64
	PopularMonths       []time.Month
	PopularMonthsByYear map[int][]time.Month
}

// Present reports whether the breed has records in year.
func (r *StatisticsResult) Present(year int) bool {
	_, found := r.PercentOfYear[year]
	return found
}

// RunQuery validates the raw breed name and computes all statistics for it.
// An unrecognized breed is an *UnknownBreedError; any other error means the
// dataset itself is unusable.
func RunQuery(input string, ds *Dataset) (*StatisticsResult, error) {
	sel, err := ValidateBreed(input, ds)
	if err != nil {
		return nil, err
	}

	res := &StatisticsResult{
		ID:                  uuid.NewString(),
		Breed:               sel.Breed(),
		DatasetYears:        ds.Years(),
		YearsPresent:        YearsPresent(ds, sel),
		TotalRegistrations:  TotalRegistrations(ds, sel),
		PercentOfYear:       make(map[int]float64),
		PopularMonthsByYear: make(map[int][]time.Month),
	}

	logger.Debug("Query %s: breed '%s' present in %v", res.ID, res.Breed, res.YearsPresent)

	for _, year := range res.YearsPresent {
		pct, err := PercentOfYear(ds, sel, year)
		if err != nil {
			return nil, fmt.Errorf("percent of year %d: %w", year, err)
		}
		res.PercentOfYear[year] = pct

		months, err := PopularMonths(ds, sel, InYear(year))
		if err != nil {
			return nil, fmt.Errorf("popular months of year %d: %w", year, err)
		}
		res.PopularMonthsByYear[year] = months
	}

	if res.PercentOfAll, err = PercentOfAll(ds, sel); err != nil {
		return nil, fmt.Errorf("percent of all years: %w", err)
	}

	if res.PopularMonths, err = PopularMonths(ds, sel, AllYears); err != nil {
		return nil, fmt.Errorf("popular months: %w", err)
	}

	return res, nil
}
