package visit

import "time"

// SlotGranularity is the grid every visit boundary must sit on.
const SlotGranularity = 15 * time.Minute

// OnQuarterHour reports whether t is exactly on a quarter-hour mark of the
// wall clock in loc. Offsets that are not whole quarter hours shift the grid,
// so the check cannot use whatever offset t was parsed with.
func OnQuarterHour(t time.Time, loc *time.Location) bool {
	t = t.In(loc)
	return t.Minute()%15 == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// ValidateSlot checks the creation rules for a visit against the clinic
// location loc. A start equal to now is accepted.
func ValidateSlot(start, end, now time.Time, loc *time.Location) error {
	if start.Before(now) {
		return errStartInPast()
	}

	if !OnQuarterHour(start, loc) || !OnQuarterHour(end, loc) {
		return errInvalidMinutes()
	}

	if !start.Before(end) {
		return errInvalidRange()
	}

	return nil
}
