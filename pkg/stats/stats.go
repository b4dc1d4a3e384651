package stats

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Record is the number of registrations of a single breed in a
// single month of a single year.
type Record struct {
	Year  int
	Month time.Month
	Breed string
	Total int
}

type recordKey struct {
	Year  int
	Month time.Month
	Breed string
}

func (r Record) key() recordKey {
	return recordKey{Year: r.Year, Month: r.Month, Breed: r.Breed}
}

// NormalizeBreed trims and upper-cases a breed name. Every breed stored in a
// Dataset and every BreedSelection goes through here.
func NormalizeBreed(s string) string {
	// A Caser is stateful, so a fresh one is made per call.
	return cases.Upper(language.Und).String(strings.TrimSpace(s))
}

var monthsByName = func() map[string]time.Month {
	m := make(map[string]time.Month, 24)
	for i := time.January; i <= time.December; i++ {
		name := strings.ToLower(i.String())
		m[name] = i
		m[name[:3]] = i
	}
	m["sept"] = time.September
	return m
}()

// ParseMonth accepts "January", "jan" or "1".
func ParseMonth(s string) (time.Month, error) {
	s = strings.ToLower(strings.Trim(s, " .\n\t\r"))

	if m, ok := monthsByName[s]; ok {
		return m, nil
	}

	n, err := strconv.Atoi(s)
	if err == nil && n >= 1 && n <= 12 {
		return time.Month(n), nil
	}

	return 0, fmt.Errorf("unknown month '%s'", s)
}

// MonthLabel is the short name used in reports, e.g. "Jan".
func MonthLabel(m time.Month) string {
	return m.String()[:3]
}
