package scraper

import (
	"regexp"
	"strings"

	"github.com/sabeel-labs/catchaprayer/internal/model"
	"github.com/sabeel-labs/catchaprayer/internal/prayertime"
)

var (
	// "Imam: Dr. Ahmed Ali", "Led by Sheikh Mohammed", "Khatib: Ustaz X"
	imamPattern = regexp.MustCompile(`(?i:imam|khatib|khateeb|led by|speaker)[:\s]+((?i:dr\.?|sheikh|shaykh|ustaz|imam|mufti|hafiz)?\s*[A-Z][a-z'\-]+(?:\s+[A-Z][a-z'\-]+){0,3})`)

	imamTitlePattern = regexp.MustCompile(`(?i)\b(dr\.?|sheikh|shaykh|ustaz|imam|mufti|hafiz)\b`)

	topicPattern = regexp.MustCompile(`(?i)(?:topic|khutba|khutbah|sermon)[:\s]+([^.\n]{3,80})`)
)

// parseJumaaSessions pulls Friday session details out of surrounding text:
// one session per clock string, with whatever speaker, topic and language
// hints sit nearby. Mosques rarely publish all of it, so every field beyond
// the time is optional.
func parseJumaaSessions(text string) []model.JumaaSession {
	var sessions []model.JumaaSession
	for _, raw := range timePattern.FindAllString(text, 4) {
		normalized, err := prayertime.NormalizeClock(raw)
		if err != nil {
			continue
		}
		sessions = append(sessions, model.JumaaSession{
			SessionTime: normalized,
			ImamName:    extractImamName(text),
			ImamTitle:   extractImamTitle(text),
			KhutbaTopic: extractTopic(text),
			Language:    detectLanguage(text),
		})
	}
	return sessions
}

func extractImamName(text string) string {
	m := imamPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	name := strings.TrimSpace(m[1])
	// Strip a leading honorific; it lives in its own field.
	name = imamTitlePattern.ReplaceAllString(name, "")
	return strings.Trim(name, ". ")
}

func extractImamTitle(text string) string {
	m := imamTitlePattern.FindString(text)
	if m == "" {
		return ""
	}
	switch strings.ToLower(strings.TrimSuffix(m, ".")) {
	case "dr":
		return "Dr."
	case "sheikh", "shaykh":
		return "Sheikh"
	case "ustaz":
		return "Ustaz"
	case "imam":
		return "Imam"
	case "mufti":
		return "Mufti"
	case "hafiz":
		return "Hafiz"
	}
	return ""
}

func extractTopic(text string) string {
	m := topicPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// detectLanguage spots khutba language mentions; both languages together
// read as a mixed-language khutba.
func detectLanguage(text string) string {
	lower := strings.ToLower(text)
	english := strings.Contains(lower, "english")
	arabic := strings.Contains(lower, "arabic")
	switch {
	case english && arabic, strings.Contains(lower, "bilingual"):
		return "Mixed"
	case english:
		return "English"
	case arabic:
		return "Arabic"
	}
	return ""
}
