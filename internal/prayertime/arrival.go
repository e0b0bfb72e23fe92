package prayertime

import "time"

// Arrive computes the traveler's current and arrival instants expressed in
// the mosque's timezone. Travel time is wall-clock elapsed time, so the
// addition is timezone-invariant; the conversion into mosqueLoc is what
// makes the results comparable against mosque-local prayer times.
func Arrive(now time.Time, travelMinutes int, mosqueLoc *time.Location) (nowLocal, arrivalLocal time.Time) {
	if mosqueLoc == nil {
		mosqueLoc = time.UTC
	}
	if travelMinutes < 0 {
		travelMinutes = 0
	}
	nowLocal = now.In(mosqueLoc)
	arrivalLocal = now.Add(time.Duration(travelMinutes) * time.Minute).In(mosqueLoc)
	return nowLocal, arrivalLocal
}
