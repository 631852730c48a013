package clock

import "time"

// Zone reports the current calendar date in a fixed civil time zone.
type Zone struct {
	loc *time.Location
	now func() time.Time
}

func NewZone(loc *time.Location) *Zone {
	return &Zone{loc: loc, now: time.Now}
}

// Today returns midnight of the current date in the zone.
func (z *Zone) Today() time.Time {
	y, m, d := z.now().In(z.loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, z.loc)
}
