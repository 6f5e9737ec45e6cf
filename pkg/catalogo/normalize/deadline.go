package normalize

import (
	"math"
	"time"

	"github.com/ulima-investigacion/catalogo-go/pkg/catalogo/models"
)

const (
	urgentDays   = 30
	upcomingDays = 90
)

// deadlineLayouts are the ISO forms accepted for a deadline, tried in order.
var deadlineLayouts = []string{
	ISOLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"20060102",
}

// DeadlineStatus classifies a normalized deadline relative to now.
// Missing or unparseable deadlines are DeadlineUnknown.
func DeadlineStatus(deadline *string, now time.Time) models.DeadlineStatus {
	if deadline == nil || *deadline == "" {
		return models.DeadlineUnknown
	}
	t, ok := parseDeadline(*deadline, now.Location())
	if !ok {
		return models.DeadlineUnknown
	}

	days := DaysUntil(t, now)
	switch {
	case days < 0:
		return models.DeadlinePassed
	case days <= urgentDays:
		return models.DeadlineUrgent
	case days <= upcomingDays:
		return models.DeadlineUpcoming
	default:
		return models.DeadlineFuture
	}
}

// DaysUntil returns the whole days from now to t, rounded down, counted on
// wall-clock time so DST changes do not shift the result.
// A deadline at midnight today seen at 10:00 is -1.
func DaysUntil(t, now time.Time) int {
	return int(math.Floor(wallClock(t).Sub(wallClock(now)).Hours() / 24))
}

// wallClock moves t's local date and time onto UTC.
func wallClock(t time.Time) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	return time.Date(y, m, d, hh, mm, ss, t.Nanosecond(), time.UTC)
}

func parseDeadline(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
