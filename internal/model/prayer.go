package model

import "time"

// PrayerName identifies one of the daily prayers, or the Friday Jumaa prayer.
type PrayerName string

const (
	Fajr    PrayerName = "fajr"
	Dhuhr   PrayerName = "dhuhr"
	Asr     PrayerName = "asr"
	Maghrib PrayerName = "maghrib"
	Isha    PrayerName = "isha"
	Jumaa   PrayerName = "jumaa"
)

// CycleOrder is the canonical daily prayer cycle. Jumaa replaces Dhuhr on
// Fridays at the mosque but never participates in the cycle itself.
var CycleOrder = []PrayerName{Fajr, Dhuhr, Asr, Maghrib, Isha}

// Valid reports whether n is one of the known prayer names.
func (n PrayerName) Valid() bool {
	switch n {
	case Fajr, Dhuhr, Asr, Maghrib, Isha, Jumaa:
		return true
	}
	return false
}

// Title returns the display form of the prayer name, e.g. "Fajr".
func (n PrayerName) Title() string {
	if n == "" {
		return ""
	}
	s := string(n)
	return string(s[0]-'a'+'A') + s[1:]
}

// JumaaSession describes one Friday congregation slot at a mosque.
type JumaaSession struct {
	SessionTime     string `json:"session_time"`
	ImamName        string `json:"imam_name,omitempty"`
	ImamTitle       string `json:"imam_title,omitempty"` // "Dr.", "Sheikh", "Imam"
	KhutbaTopic     string `json:"khutba_topic,omitempty"`
	Language        string `json:"language,omitempty"` // "English", "Arabic", "Mixed"
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	SpecialNotes    string `json:"special_notes,omitempty"`
}

// Prayer is one named prayer slot for a specific day, with times expressed as
// wall-clock HH:MM strings in the mosque's local timezone.
type Prayer struct {
	Name          PrayerName     `json:"prayer_name"`
	AdhanTime     string         `json:"adhan_time"`
	IqamaTime     string         `json:"iqama_time,omitempty"`
	JumaaSessions []JumaaSession `json:"jumaa_sessions,omitempty"`
}

// CongregationTime returns the Iqama time when the mosque publishes one,
// otherwise the Adhan time stands in.
func (p Prayer) CongregationTime() string {
	if p.IqamaTime != "" {
		return p.IqamaTime
	}
	return p.AdhanTime
}

// PrayerStatus classifies a traveler's chance of catching a prayer.
type PrayerStatus string

const (
	CanCatchWithImam  PrayerStatus = "can_catch_with_imam"
	CanCatchAfterImam PrayerStatus = "can_catch_after_imam"
	CanCatchDelayed   PrayerStatus = "can_catch_delayed" // Fajr after sunrise
	CannotCatch       PrayerStatus = "cannot_catch"
	Missed            PrayerStatus = "missed"
)

// NextPrayer is the classifier's verdict for a single mosque: the best
// prayer opportunity, whether it is reachable, and why.
type NextPrayer struct {
	Prayer               PrayerName   `json:"prayer"`
	Status               PrayerStatus `json:"status"`
	CanCatch             bool         `json:"can_catch"`
	TravelTimeMinutes    int          `json:"travel_time_minutes"`
	TimeRemainingMinutes int          `json:"time_remaining_minutes"`
	ArrivalTime          time.Time    `json:"arrival_time"`
	PrayerTime           string       `json:"prayer_time"` // the Iqama-or-Adhan HH:MM that decided the outcome
	Message              string       `json:"message"`
	IsDelayed            bool         `json:"is_delayed"`
	TimeUntilNextPrayer  *int         `json:"time_until_next_prayer,omitempty"`
}
