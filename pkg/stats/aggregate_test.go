package stats

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

const tolerance = 1e-9

func mustSelect(t *testing.T, ds *Dataset, breed string) BreedSelection {
	t.Helper()
	sel, err := ValidateBreed(breed, ds)
	if err != nil {
		t.Fatalf("ValidateBreed(%q): %v", breed, err)
	}
	return sel
}

func TestYearsPresent(t *testing.T) {
	ds := sampleDataset()

	tests := []struct {
		breed string
		want  []int
	}{
		{"BOXER", []int{2021, 2022}},
		{"PUG", []int{2021, 2022, 2023}},
		{"LABRADOR RETRIEVER", []int{2023}},
	}
	for _, tt := range tests {
		got := YearsPresent(ds, mustSelect(t, ds, tt.breed))
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("YearsPresent(%s): got %v, want %v", tt.breed, got, tt.want)
		}
	}
}

func TestYearsPresentSortsNumerically(t *testing.T) {
	ds := NewDataset([]Record{
		{Year: 2023, Month: time.January, Breed: "X", Total: 1},
		{Year: 999, Month: time.January, Breed: "X", Total: 1},
		{Year: 2021, Month: time.January, Breed: "X", Total: 1},
		{Year: 2023, Month: time.March, Breed: "X", Total: 1},
	})
	got := YearsPresent(ds, mustSelect(t, ds, "x"))
	if want := []int{999, 2021, 2023}; !reflect.DeepEqual(got, want) {
		t.Errorf("YearsPresent: got %v, want %v", got, want)
	}
}

func TestYearsPresentEveryBreed(t *testing.T) {
	ds := sampleDataset()
	for breed := range ds.DistinctBreeds() {
		years := YearsPresent(ds, mustSelect(t, ds, breed))
		if len(years) == 0 {
			t.Errorf("%s: no years present", breed)
		}
		for i := 1; i < len(years); i++ {
			if years[i] <= years[i-1] {
				t.Errorf("%s: years not strictly ascending: %v", breed, years)
			}
		}
	}
}

func TestTotalRegistrations(t *testing.T) {
	ds := sampleDataset()
	if got := TotalRegistrations(ds, mustSelect(t, ds, "boxer")); got != 210 {
		t.Errorf("BOXER total: got %d, want 210", got)
	}
	if got := TotalRegistrations(ds, BreedSelection{}); got != 0 {
		t.Errorf("zero selection total: got %d, want 0", got)
	}
}

func TestPercentOfAllSumsToOne(t *testing.T) {
	ds := sampleDataset()

	var sum float64
	for breed := range ds.DistinctBreeds() {
		pct, err := PercentOfAll(ds, mustSelect(t, ds, breed))
		if err != nil {
			t.Fatalf("PercentOfAll(%s): %v", breed, err)
		}
		if pct < 0 || pct > 1 {
			t.Errorf("PercentOfAll(%s) = %f out of range", breed, pct)
		}
		sum += pct
	}
	if math.Abs(sum-1) > tolerance {
		t.Errorf("sum of PercentOfAll: got %f, want 1", sum)
	}
}

func TestPercentOfYearRebuildsTotal(t *testing.T) {
	ds := sampleDataset()

	for breed := range ds.DistinctBreeds() {
		sel := mustSelect(t, ds, breed)

		var rebuilt float64
		for _, y := range YearsPresent(ds, sel) {
			pct, err := PercentOfYear(ds, sel, y)
			if err != nil {
				t.Fatalf("PercentOfYear(%s, %d): %v", breed, y, err)
			}
			rebuilt += pct * float64(ds.YearTotal(y))
		}

		if want := float64(TotalRegistrations(ds, sel)); math.Abs(rebuilt-want) > 1e-6 {
			t.Errorf("%s: rebuilt total %f, want %f", breed, rebuilt, want)
		}
	}
}

func TestPercentOfYear(t *testing.T) {
	ds := sampleDataset()
	sel := mustSelect(t, ds, "BOXER")

	tests := []struct {
		name    string
		year    int
		want    float64
		wantErr bool
	}{
		{"present", 2021, 0.75, false},
		{"present again", 2022, 0.6, false},
		{"breed absent that year", 2023, 0, false},
		{"no records at all", 2019, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PercentOfYear(ds, sel, tt.year)
			if tt.wantErr {
				var yearErr *YearNotPresentError
				if !errors.As(err, &yearErr) || yearErr.Year != tt.year {
					t.Fatalf("expected *YearNotPresentError for %d, got %v", tt.year, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tt.want) > tolerance {
				t.Errorf("PercentOfYear(%d): got %f, want %f", tt.year, got, tt.want)
			}
		})
	}
}

func TestPercentOfAllEmptyDataset(t *testing.T) {
	ds := NewDataset([]Record{{Year: 2021, Month: time.January, Breed: "X", Total: 0}})

	_, err := PercentOfAll(ds, mustSelect(t, ds, "X"))
	if !errors.Is(err, ErrDivisionUndefined) {
		t.Errorf("expected ErrDivisionUndefined, got %v", err)
	}

	_, err = PercentOfYear(ds, mustSelect(t, ds, "X"), 2021)
	var yearErr *YearNotPresentError
	if !errors.As(err, &yearErr) {
		t.Errorf("expected *YearNotPresentError for zero year total, got %v", err)
	}
}

func TestPopularMonths(t *testing.T) {
	ds := NewDataset([]Record{
		{Year: 2021, Month: time.January, Breed: "X", Total: 10},
		{Year: 2021, Month: time.February, Breed: "X", Total: 10},
		{Year: 2021, Month: time.March, Breed: "X", Total: 5},
		{Year: 2022, Month: time.March, Breed: "X", Total: 8},
		{Year: 2022, Month: time.December, Breed: "X", Total: 2},
		{Year: 2022, Month: time.January, Breed: "Y", Total: 90},
	})
	sel := mustSelect(t, ds, "X")

	tests := []struct {
		name  string
		scope Scope
		want  []time.Month
	}{
		{"ties preserved", InYear(2021), []time.Month{time.January, time.February}},
		{"single winner", InYear(2022), []time.Month{time.March}},
		{"summed across years", AllYears, []time.Month{time.March}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PopularMonths(ds, sel, tt.scope)
			if err != nil {
				t.Fatalf("PopularMonths: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PopularMonths(%s): got %v, want %v", tt.scope, got, tt.want)
			}
		})
	}
}

func TestPopularMonthsOverallTie(t *testing.T) {
	ds := NewDataset([]Record{
		{Year: 2021, Month: time.June, Breed: "X", Total: 4},
		{Year: 2022, Month: time.June, Breed: "X", Total: 4},
		{Year: 2022, Month: time.April, Breed: "X", Total: 8},
		{Year: 2023, Month: time.May, Breed: "X", Total: 1},
	})

	got, err := PopularMonths(ds, mustSelect(t, ds, "X"), AllYears)
	if err != nil {
		t.Fatal(err)
	}
	if want := []time.Month{time.April, time.June}; !reflect.DeepEqual(got, want) {
		t.Errorf("PopularMonths: got %v, want %v", got, want)
	}
}

func TestPopularMonthsNoDataForScope(t *testing.T) {
	ds := sampleDataset()
	sel := mustSelect(t, ds, "BOXER")

	_, err := PopularMonths(ds, sel, InYear(2023))

	var scopeErr *NoDataForScopeError
	if !errors.As(err, &scopeErr) {
		t.Fatalf("expected *NoDataForScopeError, got %v", err)
	}
	if scopeErr.Breed != "BOXER" || scopeErr.Scope != InYear(2023) {
		t.Errorf("unexpected error fields: %+v", scopeErr)
	}
}
