package release

import (
	"context"
	"time"
)

const (
	// dateTokenLayout renders a date as an 8-digit yyyymmdd token.
	dateTokenLayout = "20060102"
	// buildDateLayout is ISO-8601 in UTC with millisecond precision.
	buildDateLayout = "2006-01-02T15:04:05.000Z07:00"
)

// SystemClock reads the date from the host clock in local time.
type SystemClock struct {
	// Now overrides time.Now when set.
	Now func() time.Time
}

// Timestamp implements TimestampSource.
func (c SystemClock) Timestamp(_ context.Context) (string, error) {
	return DateToken(c.now()), nil
}

// BuildDate returns the current instant formatted for build metadata.
func (c SystemClock) BuildDate() string {
	return c.now().UTC().Format(buildDateLayout)
}

func (c SystemClock) now() time.Time {
	if c.Now == nil {
		return time.Now()
	}

	return c.Now()
}

// DateToken formats t as yyyymmdd.
func DateToken(t time.Time) string {
	return t.Format(dateTokenLayout)
}
