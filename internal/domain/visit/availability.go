package visit

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// DateRange is an inclusive range of instants covering whole calendar days.
type DateRange struct {
	From time.Time
	To   time.Time
}

// DayRange covers [first 00:00, last 23:59:59.999999999] in loc.
func DayRange(first, last time.Time, loc *time.Location) (DateRange, error) {
	from := timezone.StartOfDay(first, loc)
	to := timezone.EndOfDay(last, loc)

	if to.Before(from) {
		return DateRange{}, ErrInvalidDateRange()
	}

	return DateRange{From: from, To: to}, nil
}

func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// FilterAvailable keeps visits without an assigned patient.
func FilterAvailable(visits []models.Visit) []models.Visit {
	out := make([]models.Visit, 0, len(visits))
	for i := range visits {
		if IsAvailable(&visits[i]) {
			out = append(out, visits[i])
		}
	}
	return out
}

// SortByStart orders visits by start time ascending, in place.
func SortByStart(visits []models.Visit) {
	sort.SliceStable(visits, func(i, j int) bool {
		return visits[i].StartTime.Before(visits[j].StartTime)
	})
}
