package stats

import (
	"fmt"
	"sort"
	"time"
)

// Scope restricts an aggregation to a single year, or to all years.
type Scope struct {
	Year    int
	Overall bool
}

// AllYears is the scope covering every year of the dataset.
var AllYears = Scope{Overall: true}

// InYear is the scope covering a single year.
func InYear(year int) Scope {
	return Scope{Year: year}
}

func (s Scope) Contains(year int) bool {
	return s.Overall || s.Year == year
}

func (s Scope) String() string {
	if s.Overall {
		return "all years"
	}
	return fmt.Sprintf("year %d", s.Year)
}

func sumTotals(records []Record, scope Scope) int {
	var sum int
	for _, r := range records {
		if scope.Contains(r.Year) {
			sum += r.Total
		}
	}
	return sum
}

// YearsPresent returns the distinct years, ascending, in which the selected
// breed has at least one record.
func YearsPresent(ds *Dataset, sel BreedSelection) []int {
	seen := make(map[int]bool)
	var years []int
	for _, r := range ds.breedRecords(sel.Breed()) {
		if !seen[r.Year] {
			seen[r.Year] = true
			years = append(years, r.Year)
		}
	}
	sort.Ints(years)
	return years
}

// TotalRegistrations sums the registrations of the selected breed.
func TotalRegistrations(ds *Dataset, sel BreedSelection) int {
	return sumTotals(ds.breedRecords(sel.Breed()), AllYears)
}

// PercentOfAll is the selected breed's share of all registrations, in [0,1].
func PercentOfAll(ds *Dataset, sel BreedSelection) (float64, error) {
	all := ds.GrandTotal()
	if all == 0 {
		return 0, ErrDivisionUndefined
	}
	return float64(TotalRegistrations(ds, sel)) / float64(all), nil
}

// PercentOfYear is the selected breed's share of all registrations in year,
// in [0,1]. A breed absent that year yields 0. A year without registrations
// of any breed is a *YearNotPresentError.
func PercentOfYear(ds *Dataset, sel BreedSelection, year int) (float64, error) {
	all := ds.YearTotal(year)
	if all == 0 {
		return 0, &YearNotPresentError{Year: year}
	}
	breed := sumTotals(ds.breedRecords(sel.Breed()), InYear(year))
	return float64(breed) / float64(all), nil
}

// PopularMonths sums the selected breed's registrations per month within the
// scope and returns every month tied at the maximum, in calendar order.
func PopularMonths(ds *Dataset, sel BreedSelection, scope Scope) ([]time.Month, error) {
	byMonth := make(map[time.Month]int)
	for _, r := range ds.breedRecords(sel.Breed()) {
		if scope.Contains(r.Year) {
			byMonth[r.Month] += r.Total
		}
	}
	if len(byMonth) == 0 {
		return nil, &NoDataForScopeError{Breed: sel.Breed(), Scope: scope}
	}

	top := -1
	for _, total := range byMonth {
		if total > top {
			top = total
		}
	}

	var months []time.Month
	for m, total := range byMonth {
		if total == top {
			months = append(months, m)
		}
	}
	sort.Slice(months, func(i, j int) bool {
		return months[i] < months[j]
	})

	return months, nil
}
