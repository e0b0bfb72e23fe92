package prayertime

import (
	"fmt"
	"time"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

const (
	// CongregationWindowMinutes is how long a congregation is assumed to
	// keep going after Iqama; a latecomer inside this window can still
	// join the group prayer.
	CongregationWindowMinutes = 15

	// FajrToSunriseMinutes approximates the gap between Fajr and sunrise.
	// Fajr stays valid as a solo prayer until sunrise; no solar
	// computation is performed.
	FajrToSunriseMinutes = 90
)

// Classify evaluates one mosque's catalog against the traveler's mosque-local
// current and arrival instants and returns the single best prayer
// opportunity, or nil when the catalog is empty. Rules are evaluated in
// strict priority order; the first applicable rule wins.
func Classify(cat *Catalog, nowLocal, arrivalLocal time.Time, travelMinutes int) *model.NextPrayer {
	if cat == nil || cat.Empty() {
		return nil
	}

	if r := classifyInProgress(cat, nowLocal, arrivalLocal, travelMinutes); r != nil {
		return r
	}
	if r := classifyFajrDelayed(cat, nowLocal, arrivalLocal, travelMinutes); r != nil {
		return r
	}
	if r := classifyUpcoming(cat, nowLocal, arrivalLocal, travelMinutes); r != nil {
		return r
	}
	if r := classifyFajrMakeup(cat, nowLocal, arrivalLocal, travelMinutes); r != nil {
		return r
	}
	return classifyTomorrowFajr(cat, nowLocal, arrivalLocal, travelMinutes)
}

// classifyInProgress handles a congregation that is underway right now: the
// window [Iqama, Iqama+15m] of some prayer contains the current instant.
// This is the most time-sensitive branch and always decides immediately.
func classifyInProgress(cat *Catalog, now, arrival time.Time, travelMinutes int) *model.NextPrayer {
	for _, e := range cat.Entries() {
		windowEnd := e.Congregation.Add(CongregationWindowMinutes * time.Minute)
		if now.Before(e.Congregation) || now.After(windowEnd) {
			continue
		}

		name := e.Name.Title()
		res := &model.NextPrayer{
			Prayer:               e.Name,
			TravelTimeMinutes:    travelMinutes,
			TimeRemainingMinutes: minutesUntil(now, windowEnd),
			ArrivalTime:          arrival,
			PrayerTime:           e.TimeUsed,
		}

		switch {
		case !arrival.After(e.Congregation):
			res.Status = model.CanCatchWithImam
			res.CanCatch = true
			res.Message = fmt.Sprintf("You can catch %s with the Imam at %s", name, clock12(e.Congregation))
		case !arrival.After(windowEnd):
			res.Status = model.CanCatchAfterImam
			res.CanCatch = true
			res.Message = fmt.Sprintf("%s congregation is underway; you can still join until %s", name, clock12(windowEnd))
		default:
			res.Status = model.CannotCatch
			res.Message = fmt.Sprintf("Cannot catch %s - the congregation will have finished by %s", name, clock12(arrival))
		}
		return res
	}
	return nil
}

// classifyFajrDelayed covers the stretch between Fajr's congregation time and
// estimated sunrise, when Fajr may still be prayed on its own. The traveler
// is inside Fajr's extended window, not waiting for the next prayer, so this
// outranks the upcoming-prayer search.
func classifyFajrDelayed(cat *Catalog, now, arrival time.Time, travelMinutes int) *model.NextPrayer {
	fajr := cat.byName(model.Fajr)
	if fajr == nil {
		return nil
	}
	sunrise := fajr.Congregation.Add(FajrToSunriseMinutes * time.Minute)
	if !now.After(fajr.Congregation) || !now.Before(sunrise) {
		return nil
	}

	canCatch := arrival.Before(sunrise)
	res := &model.NextPrayer{
		Prayer:               model.Fajr,
		CanCatch:             canCatch,
		TravelTimeMinutes:    travelMinutes,
		TimeRemainingMinutes: minutesUntil(now, sunrise),
		ArrivalTime:          arrival,
		PrayerTime:           fajr.TimeUsed,
		IsDelayed:            true,
	}
	if canCatch {
		res.Status = model.CanCatchDelayed
		res.Message = fmt.Sprintf("Fajr can still be prayed until sunrise around %s (arriving %s)", clock12(sunrise), clock12(arrival))
	} else {
		res.Status = model.CannotCatch
		res.Message = fmt.Sprintf("Cannot catch Fajr - sunrise around %s comes before you arrive", clock12(sunrise))
	}
	return res
}

// classifyUpcoming picks the earliest prayer still ahead of the traveler
// today and judges whether the arrival beats its Iqama, lands inside its
// solo-prayer window, or misses it outright.
func classifyUpcoming(cat *Catalog, now, arrival time.Time, travelMinutes int) *model.NextPrayer {
	var next *Entry
	for i, e := range cat.Entries() {
		if e.Congregation.After(now) {
			next = &cat.Entries()[i]
			break
		}
	}
	if next == nil {
		return nil
	}

	name := next.Name.Title()
	res := &model.NextPrayer{
		Prayer:               next.Name,
		TravelTimeMinutes:    travelMinutes,
		TimeRemainingMinutes: minutesUntil(now, next.Congregation),
		ArrivalTime:          arrival,
		PrayerTime:           next.TimeUsed,
	}

	if !arrival.After(next.Congregation) {
		res.Status = model.CanCatchWithImam
		res.CanCatch = true
		res.Message = fmt.Sprintf("You can catch %s with the Imam at %s", name, clock12(next.Congregation))
		return res
	}

	// After Iqama the prayer can still be performed solo until the next
	// prayer's Adhan; Fajr's solo window ends at sunrise instead.
	boundary, following := soloBoundary(cat, next)
	if !boundary.IsZero() && arrival.Before(boundary) {
		res.Status = model.CanCatchAfterImam
		res.CanCatch = true
		res.Message = fmt.Sprintf("You'll arrive after Iqama but can still catch %s before %s", name, clock12(boundary))
		if following != nil {
			mins := minutesUntil(now, following.Congregation)
			res.TimeUntilNextPrayer = &mins
		}
		return res
	}

	res.Status = model.CannotCatch
	if following != nil {
		res.Message = fmt.Sprintf("Cannot catch %s - try %s instead", name, following.Name.Title())
	} else if next.Name == model.Fajr {
		res.Message = fmt.Sprintf("Cannot catch %s - sunrise comes first", name)
	} else {
		res.Message = fmt.Sprintf("Cannot catch %s - try tomorrow's Fajr", name)
	}
	return res
}

// soloBoundary returns the instant after which a missed congregation can no
// longer be prayed at all, plus the cycle prayer that opens then (nil for
// Fajr's sunrise boundary and after Isha).
func soloBoundary(cat *Catalog, e *Entry) (time.Time, *Entry) {
	if e.Name == model.Fajr {
		return e.Congregation.Add(FajrToSunriseMinutes * time.Minute), cat.nextInCycle(model.Fajr)
	}
	if following := cat.nextInCycle(e.Name); following != nil {
		return following.Adhan, following
	}
	return time.Time{}, nil
}

// classifyFajrMakeup covers the make-up window after sunrise: nothing is
// upcoming today, but Fajr can still be made up until Dhuhr opens.
func classifyFajrMakeup(cat *Catalog, now, arrival time.Time, travelMinutes int) *model.NextPrayer {
	fajr := cat.byName(model.Fajr)
	dhuhr := cat.byName(model.Dhuhr)
	if fajr == nil || dhuhr == nil {
		return nil
	}
	sunrise := fajr.Congregation.Add(FajrToSunriseMinutes * time.Minute)
	if now.Before(sunrise) || !now.Before(dhuhr.Congregation) {
		return nil
	}

	canCatch := arrival.Before(dhuhr.Congregation)
	res := &model.NextPrayer{
		Prayer:               model.Fajr,
		CanCatch:             canCatch,
		TravelTimeMinutes:    travelMinutes,
		TimeRemainingMinutes: minutesUntil(now, dhuhr.Congregation),
		ArrivalTime:          arrival,
		PrayerTime:           fajr.TimeUsed,
		IsDelayed:            true,
	}
	if canCatch {
		res.Status = model.CanCatchDelayed
		res.Message = fmt.Sprintf("You can make up Fajr until Dhuhr at %s", clock12(dhuhr.Congregation))
	} else {
		res.Status = model.CannotCatch
		res.Message = "Cannot make up Fajr - Dhuhr time has arrived"
	}
	return res
}

// classifyTomorrowFajr rolls over to tomorrow once every prayer today has
// lapsed. The target is over a day away, so no travel-time check applies.
func classifyTomorrowFajr(cat *Catalog, now, arrival time.Time, travelMinutes int) *model.NextPrayer {
	fajr := cat.byName(model.Fajr)
	if fajr == nil {
		return nil
	}
	target := fajr.Congregation.AddDate(0, 0, 1)
	return &model.NextPrayer{
		Prayer:               model.Fajr,
		Status:               model.CanCatchWithImam,
		CanCatch:             true,
		TravelTimeMinutes:    travelMinutes,
		TimeRemainingMinutes: minutesUntil(now, target),
		ArrivalTime:          arrival,
		PrayerTime:           fajr.TimeUsed,
		Message:              fmt.Sprintf("All of today's prayers have passed - next is tomorrow's Fajr at %s", clock12(target)),
	}
}
