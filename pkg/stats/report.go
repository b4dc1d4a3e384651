package stats

import (
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport renders a result as the lines shown to the user.
func WriteReport(w io.Writer, r *StatisticsResult) {
	p := message.NewPrinter(language.English)

	years := make([]string, len(r.YearsPresent))
	for i, y := range r.YearsPresent {
		years[i] = strconv.Itoa(y)
	}

	p.Fprintf(w, "The %s was found in the top breeds for years: %s\n", r.Breed, strings.Join(years, " "))
	p.Fprintf(w, "There have been %s %s dogs registered total.\n", strconv.Itoa(r.TotalRegistrations), r.Breed)

	for _, y := range r.DatasetYears {
		if r.Present(y) {
			p.Fprintf(w, "The %s was %s of top breeds in %s.\n", r.Breed, FormatPercent(r.PercentOfYear[y]), strconv.Itoa(y))
		} else {
			p.Fprintf(w, "The %s was not in the top breeds for %s.\n", r.Breed, strconv.Itoa(y))
		}
	}

	p.Fprintf(w, "The %s was %s of top breeds across all years.\n", r.Breed, FormatPercent(r.PercentOfAll))
	p.Fprintf(w, "Most popular month(s) for %s: %s\n", r.Breed, joinMonths(r.PopularMonths))

	for _, y := range r.YearsPresent {
		p.Fprintf(w, "Most popular month(s) for %s in %s: %s\n", r.Breed, strconv.Itoa(y), joinMonths(r.PopularMonthsByYear[y]))
	}
}

// FormatPercent renders a ratio as a percentage with six decimals,
// e.g. 0.75 becomes "75.000000%".
func FormatPercent(ratio float64) string {
	return strconv.FormatFloat(ratio*100, 'f', 6, 64) + "%"
}

func joinMonths(months []time.Month) string {
	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = MonthLabel(m)
	}
	return strings.Join(labels, " ")
}
