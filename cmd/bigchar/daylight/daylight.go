// Package daylight measures how much of a child's waking day has passed.
package daylight

import (
	"fmt"
	"time"
)

// Day is the waking part of the day, as whole hours on a 24h clock.
type Day struct {
	Wake    int
	Bedtime int
}

// Default wakes at 6 and goes to bed at 20.
var Default = Day{Wake: 6, Bedtime: 20}

func (d Day) Validate() error {
	if d.Wake < 0 || d.Wake > 23 || d.Bedtime < 1 || d.Bedtime > 24 {
		return fmt.Errorf("hours must be within 0-24, got wake=%d bedtime=%d", d.Wake, d.Bedtime)
	}
	if d.Bedtime <= d.Wake {
		return fmt.Errorf("bedtime (%d) must be after wake (%d)", d.Bedtime, d.Wake)
	}
	return nil
}

// Minutes is the length of the waking day.
func (d Day) Minutes() float64 {
	return float64(d.Bedtime-d.Wake) * 60
}

// Fraction places t on the waking day: 0 at wake-up or earlier, 1 at bedtime
// or later. Seconds are ignored.
func (d Day) Fraction(t time.Time) float64 {
	total := d.Minutes()
	if total <= 0 {
		return 1
	}
	past := float64((t.Hour()-d.Wake)*60 + t.Minute())
	switch {
	case past <= 0:
		return 0
	case past >= total:
		return 1
	default:
		return past / total
	}
}
