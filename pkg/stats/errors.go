package stats

import (
	"errors"
	"fmt"
)

// ErrDivisionUndefined is returned when the grand total of a dataset is zero.
var ErrDivisionUndefined = errors.New("dataset has no registrations, percentage is undefined")

// DataLoadError is returned when a source is missing, malformed or lacks
// one of the required columns. Row is 1-based, 0 when not row specific.
type DataLoadError struct {
	Path string
	Row  int
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("load '%s' row %d: %s", e.Path, e.Row, e.Err)
	}
	return fmt.Sprintf("load '%s': %s", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

// UnknownBreedError means the input did not match any breed in the dataset.
type UnknownBreedError struct {
	Input string
}

func (e *UnknownBreedError) Error() string {
	return "Dog breed not found in the data. Please try again."
}

// YearNotPresentError means no registrations of any breed exist for Year.
type YearNotPresentError struct {
	Year int
}

func (e *YearNotPresentError) Error() string {
	return fmt.Sprintf("no registrations recorded for year %d", e.Year)
}

// NoDataForScopeError means a breed has no records in the requested scope.
// Seeing one indicates a caller skipped the YearsPresent check.
type NoDataForScopeError struct {
	Breed string
	Scope Scope
}

func (e *NoDataForScopeError) Error() string {
	return fmt.Sprintf("no records for breed '%s' in %s", e.Breed, e.Scope)
}
