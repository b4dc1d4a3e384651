package stats

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/anrid/dog-stats/pkg/logger"
)

// Dataset is an immutable, fully loaded set of registration records.
// It is safe for concurrent reads.
type Dataset struct {
	records []Record
	byBreed map[string][]Record
	years   []int
}

// NewDataset builds a Dataset from records, normalizing breed names. Records
// sharing a (year, month, breed) key are merged by summing their totals; the
// first occurrence keeps its position.
func NewDataset(records []Record) *Dataset {
	ds := &Dataset{byBreed: make(map[string][]Record)}

	index := make(map[recordKey]int, len(records))
	for _, r := range records {
		r.Breed = NormalizeBreed(r.Breed)
		if i, found := index[r.key()]; found {
			ds.records[i].Total += r.Total
			continue
		}
		index[r.key()] = len(ds.records)
		ds.records = append(ds.records, r)
	}

	if merged := len(records) - len(ds.records); merged > 0 {
		logger.Debug("Merged %d records with duplicate year, month and breed", merged)
	}

	seenYears := make(map[int]bool)
	for _, r := range ds.records {
		ds.byBreed[r.Breed] = append(ds.byBreed[r.Breed], r)
		if !seenYears[r.Year] {
			seenYears[r.Year] = true
			ds.years = append(ds.years, r.Year)
		}
	}
	sort.Ints(ds.years)

	return ds
}

// Load reads every row of the source eagerly. Any problem with the file
// or its rows is reported as a *DataLoadError.
func Load(s Source) (*Dataset, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, &DataLoadError{Path: s.Path, Err: err}
	}

	p := &rowParser{}
	err := ExtractDataFromFile(s, p.handle)
	if err != nil {
		return nil, &DataLoadError{Path: s.Path, Row: p.row, Err: err}
	}
	if p.cols == nil {
		return nil, &DataLoadError{Path: s.Path, Err: errors.New("no header row found")}
	}

	logger.Debug("Read %d records from '%s'", len(p.records), s.Path)

	return NewDataset(p.records), nil
}

var requiredColumns = []string{"year", "month", "breed", "total"}

// rowParser turns raw table rows into records. The first non-blank row is
// the header. Blank year or month cells repeat the previous row's value,
// which is how merged index cells come out of a spreadsheet.
type rowParser struct {
	row       int
	cols      map[string]int
	lastYear  string
	lastMonth string
	records   []Record
}

func (p *rowParser) handle(r []string) error {
	p.row++

	if isBlank(r) {
		return nil
	}

	if p.cols == nil {
		cols := make(map[string]int)
		for i, name := range r {
			cols[strings.ToLower(mustTrim(name))] = i
		}
		var missing []string
		for _, c := range requiredColumns {
			if _, ok := cols[c]; !ok {
				missing = append(missing, c)
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
		}
		p.cols = cols
		return nil
	}

	year := p.cell(r, "year")
	if year == "" {
		year = p.lastYear
	}
	month := p.cell(r, "month")
	if month == "" {
		month = p.lastMonth
	}
	p.lastYear, p.lastMonth = year, month

	rec := Record{Breed: NormalizeBreed(p.cell(r, "breed"))}
	if rec.Breed == "" {
		return errors.New("breed is empty")
	}

	var err error
	if rec.Year, err = parseCount(year); err != nil {
		return fmt.Errorf("year: %w", err)
	}
	if rec.Month, err = ParseMonth(month); err != nil {
		return fmt.Errorf("month: %w", err)
	}
	if rec.Total, err = parseCount(p.cell(r, "total")); err != nil {
		return fmt.Errorf("total: %w", err)
	}

	p.records = append(p.records, rec)
	return nil
}

func (p *rowParser) cell(r []string, col string) string {
	i := p.cols[col]
	if i >= len(r) {
		return ""
	}
	return mustTrim(r[i])
}

// parseCount parses a non-negative integer. Spreadsheets sometimes store
// whole numbers as "12.0", which is accepted.
func parseCount(v string) (int, error) {
	if v == "" {
		return 0, errors.New("value is empty")
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, fmt.Errorf("could not parse '%s' into an integer", v)
		}
		n = int(f)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}

func mustTrim(v string) string {
	return strings.Trim(v, " \n\t\r")
}

func isBlank(r []string) bool {
	for _, c := range r {
		if mustTrim(c) != "" {
			return false
		}
	}
	return true
}

// RecordsForBreed returns a copy of all records of a normalized breed name.
func (ds *Dataset) RecordsForBreed(breed string) []Record {
	return append([]Record(nil), ds.byBreed[breed]...)
}

// AllRecords returns a copy of every record in load order.
func (ds *Dataset) AllRecords() []Record {
	return append([]Record(nil), ds.records...)
}

// breedRecords is RecordsForBreed without the copy, for read-only use
// inside the package.
func (ds *Dataset) breedRecords(breed string) []Record {
	return ds.byBreed[breed]
}

// DistinctBreeds returns the set of normalized breed names.
func (ds *Dataset) DistinctBreeds() map[string]bool {
	breeds := make(map[string]bool, len(ds.byBreed))
	for b := range ds.byBreed {
		breeds[b] = true
	}
	return breeds
}

// HasBreed reports whether the normalized breed name is present.
func (ds *Dataset) HasBreed(breed string) bool {
	_, found := ds.byBreed[breed]
	return found
}

// Years returns the distinct years of the dataset, ascending.
func (ds *Dataset) Years() []int {
	return append([]int(nil), ds.years...)
}

// GrandTotal is the sum of all registrations.
func (ds *Dataset) GrandTotal() int {
	return sumTotals(ds.records, AllYears)
}

// YearTotal is the sum of all registrations of a year, over every breed.
func (ds *Dataset) YearTotal(year int) int {
	return sumTotals(ds.records, InYear(year))
}

// Summary describes a dataset at a glance.
type Summary struct {
	FirstYear     int
	LastYear      int
	Breeds        int
	Records       int
	Registrations int
}

func (ds *Dataset) Summary() Summary {
	s := Summary{
		Breeds:        len(ds.byBreed),
		Records:       len(ds.records),
		Registrations: ds.GrandTotal(),
	}
	if len(ds.years) > 0 {
		s.FirstYear = ds.years[0]
		s.LastYear = ds.years[len(ds.years)-1]
	}
	return s
}

func (ds *Dataset) Info(w io.Writer) {
	s := ds.Summary()

	fmt.Fprintf(w, `
	Years         : %d - %d
	Breeds        : %d
	Records       : %d
	Registrations : %d
	`, s.FirstYear, s.LastYear, s.Breeds, s.Records, s.Registrations)
	fmt.Fprintln(w, "")
}
