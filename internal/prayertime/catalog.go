package prayertime

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

// Entry is one prayer slot anchored to a concrete day in the mosque's
// timezone. Congregation is the Iqama instant when the mosque publishes one,
// otherwise the Adhan instant.
type Entry struct {
	Name         model.PrayerName
	Adhan        time.Time
	Congregation time.Time
	// TimeUsed is the HH:MM string behind Congregation, reported back to
	// the caller as the time that decided the outcome.
	TimeUsed string
}

// Catalog is one day's prayer schedule for one mosque, ordered by
// congregation time. Built fresh per classification request and immutable
// afterwards.
type Catalog struct {
	entries []Entry
}

// BuildCatalog normalizes and anchors a scraped prayer list onto ref's
// calendar day in ref's location. A prayer whose times fail normalization is
// dropped on its own; the rest of the catalog still stands. Duplicate names
// keep the first occurrence. Jumaa stays out of the daily cycle; its session
// details travel with the mosque's prayer list instead.
func BuildCatalog(prayers []model.Prayer, ref time.Time) *Catalog {
	cat := &Catalog{}
	seen := map[model.PrayerName]bool{}

	for _, p := range prayers {
		if !p.Name.Valid() || seen[p.Name] || p.Name == model.Jumaa {
			continue
		}

		adhan, err := NormalizeClock(p.AdhanTime)
		if err != nil {
			log.Warn().Str("prayer", string(p.Name)).Str("adhan_time", p.AdhanTime).
				Msg("dropping prayer with unparseable adhan time")
			continue
		}
		congregation := adhan
		if p.IqamaTime != "" {
			iqama, err := NormalizeClock(p.IqamaTime)
			if err != nil {
				log.Warn().Str("prayer", string(p.Name)).Str("iqama_time", p.IqamaTime).
					Msg("dropping prayer with unparseable iqama time")
				continue
			}
			congregation = iqama
		}

		adhanAt, err := atClock(adhan, ref)
		if err != nil {
			continue
		}
		congregationAt, err := atClock(congregation, ref)
		if err != nil {
			continue
		}

		e := Entry{
			Name:         p.Name,
			Adhan:        adhanAt,
			Congregation: congregationAt,
			TimeUsed:     congregation,
		}
		seen[p.Name] = true
		cat.entries = append(cat.entries, e)
	}

	// Insertion sort keeps this allocation-free; catalogs hold at most
	// five entries.
	for i := 1; i < len(cat.entries); i++ {
		for j := i; j > 0 && cat.entries[j].Congregation.Before(cat.entries[j-1].Congregation); j-- {
			cat.entries[j], cat.entries[j-1] = cat.entries[j-1], cat.entries[j]
		}
	}

	return cat
}

// Empty reports whether no daily prayers survived normalization.
func (c *Catalog) Empty() bool { return len(c.entries) == 0 }

// Entries returns the daily prayers in chronological congregation order.
func (c *Catalog) Entries() []Entry { return c.entries }

// byName finds a daily prayer entry.
func (c *Catalog) byName(name model.PrayerName) *Entry {
	for i := range c.entries {
		if c.entries[i].Name == name {
			return &c.entries[i]
		}
	}
	return nil
}

// nextInCycle returns the entry for the prayer that follows name in the
// canonical cycle and is present in the catalog, or nil after Isha.
func (c *Catalog) nextInCycle(name model.PrayerName) *Entry {
	idx := -1
	for i, n := range model.CycleOrder {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	for _, n := range model.CycleOrder[idx+1:] {
		if e := c.byName(n); e != nil {
			return e
		}
	}
	return nil
}
