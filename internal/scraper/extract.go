package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/sabeel-labs/catchaprayer/internal/model"
	"github.com/sabeel-labs/catchaprayer/internal/prayertime"
)

// timePattern finds clock strings embedded in arbitrary text.
var timePattern = regexp.MustCompile(`\d{1,2}:\d{2}\s*(?:[AaPp][Mm])?`)

// prayerSectionClass matches the class names mosque sites give their prayer
// widgets.
var prayerSectionClass = regexp.MustCompile(`(?i)prayer|salah|time`)

// Aliases seen across mosque sites, mapped onto the canonical names.
var prayerNameAliases = map[string]model.PrayerName{
	"fajr": model.Fajr, "dawn": model.Fajr, "subh": model.Fajr,
	"dhuhr": model.Dhuhr, "zuhr": model.Dhuhr, "noon": model.Dhuhr,
	"asr": model.Asr, "afternoon": model.Asr,
	"maghrib": model.Maghrib, "sunset": model.Maghrib,
	"isha": model.Isha, "night": model.Isha, "esha": model.Isha,
	"jumaa": model.Jumaa, "jummah": model.Jumaa, "friday": model.Jumaa,
}

// ParsePrayerName recognizes a prayer name (or one of its aliases) anywhere
// inside the text.
func ParsePrayerName(text string) (model.PrayerName, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	for alias, name := range prayerNameAliases {
		if strings.Contains(lower, alias) {
			return name, true
		}
	}
	return "", false
}

// extractFromTables reads rows shaped like "name | adhan | iqama?" out of
// every table on the page.
func extractFromTables(doc *goquery.Document) []model.Prayer {
	var prayers []model.Prayer
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td, th")
		if cells.Length() < 2 {
			return
		}
		name, ok := ParsePrayerName(cells.Eq(0).Text())
		if !ok {
			return
		}

		adhan, err := prayertime.NormalizeClock(cells.Eq(1).Text())
		if err != nil {
			return
		}
		prayer := model.Prayer{Name: name, AdhanTime: adhan}
		if cells.Length() > 2 {
			if iqama, err := prayertime.NormalizeClock(cells.Eq(2).Text()); err == nil {
				prayer.IqamaTime = iqama
			}
		}
		if name == model.Jumaa {
			prayer.JumaaSessions = parseJumaaSessions(row.Text())
		}
		prayers = append(prayers, prayer)
	})
	return prayers
}

// extractFromStructuredDivs handles card-style layouts: containers whose
// class mentions prayers, each holding a name and one or two times.
func extractFromStructuredDivs(doc *goquery.Document) []model.Prayer {
	var prayers []model.Prayer
	doc.Find("div, section").Each(func(_ int, sel *goquery.Selection) {
		class, _ := sel.Attr("class")
		if !prayerSectionClass.MatchString(class) {
			return
		}
		// Only leaf-ish containers; a wrapper around the whole widget
		// would swallow every prayer into one entry.
		if sel.Find("div, section").Length() > 4 {
			return
		}

		text := sel.Text()
		name, ok := ParsePrayerName(text)
		if !ok {
			return
		}
		if p, ok := prayerFromText(name, text); ok {
			prayers = append(prayers, p)
		}
	})
	return dedupe(prayers)
}

// extractFromText scans the page's plain text line by line.
func extractFromText(doc *goquery.Document) []model.Prayer {
	var prayers []model.Prayer
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		name, ok := ParsePrayerName(line)
		if !ok {
			continue
		}
		if p, ok := prayerFromText(name, line); ok {
			prayers = append(prayers, p)
		}
	}
	return dedupe(prayers)
}

// prayerFromText builds a Prayer from the first (adhan) and optional second
// (iqama) clock string found in the text.
func prayerFromText(name model.PrayerName, text string) (model.Prayer, bool) {
	matches := timePattern.FindAllString(text, 2)
	if len(matches) == 0 {
		return model.Prayer{}, false
	}
	adhan, err := prayertime.NormalizeClock(matches[0])
	if err != nil {
		return model.Prayer{}, false
	}
	p := model.Prayer{Name: name, AdhanTime: adhan}
	if len(matches) > 1 {
		if iqama, err := prayertime.NormalizeClock(matches[1]); err == nil {
			p.IqamaTime = iqama
		}
	}
	if name == model.Jumaa {
		p.JumaaSessions = parseJumaaSessions(text)
	}
	return p, true
}

// dedupe keeps the first occurrence per prayer name; card and text layouts
// often repeat the schedule in a footer.
func dedupe(prayers []model.Prayer) []model.Prayer {
	seen := map[model.PrayerName]bool{}
	out := prayers[:0]
	for _, p := range prayers {
		if seen[p.Name] {
			continue
		}
		seen[p.Name] = true
		out = append(out, p)
	}
	return out
}
