package content

import (
	"time"

	"github.com/uniplaces/carbon"
)

const dayMillis = 24 * 60 * 60 * 1000

// DaysSinceEpoch counts whole days between the Unix epoch and asOf, with
// asOf first normalized to midnight in its own location. Floored division
// keeps the count consistent for pre-epoch dates and for locations east of
// UTC.
func DaysSinceEpoch(asOf time.Time) int64 {
	midnight := carbon.NewCarbon(asOf).StartOfDay()
	return floorDiv(midnight.UnixNano()/int64(time.Millisecond), dayMillis)
}

// DailyIndex maps a calendar day onto [0, n). Every caller in the same
// location gets the same index for the same day; the index rolls over at
// local midnight. Returns false when n is not positive.
func DailyIndex(asOf time.Time, n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	days := DaysSinceEpoch(asOf)
	return int(((days % int64(n)) + int64(n)) % int64(n)), true
}

// SelectDaily picks the quote of the day. The bool is false when there is
// nothing to pick from.
func SelectDaily(quotes []Quote, asOf time.Time) (Quote, bool) {
	idx, ok := DailyIndex(asOf, len(quotes))
	if !ok {
		return Quote{}, false
	}
	return quotes[idx], true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
