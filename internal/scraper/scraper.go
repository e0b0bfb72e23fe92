// Package scraper pulls today's prayer schedule off mosque websites. It is
// best-effort glue: every failure path ends in an empty result, never an
// error surfaced to the classifier.
package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/sabeel-labs/catchaprayer/internal/model"
)

const fetchTimeout = 10 * time.Second

// Link text that suggests a page carries prayer times.
var prayerLinkKeywords = []string{
	"prayer", "salah", "namaz", "times", "schedule", "timetable",
	"daily", "monthly", "iqama", "adhan", "jamaat",
}

// Paths worth probing even when no link advertises them.
var commonPrayerPaths = []string{
	"/prayer-times", "/prayers", "/schedule", "/times", "/daily-prayers",
}

// Scraper crawls a mosque site for prayer times.
type Scraper struct {
	client *http.Client
}

func New() *Scraper {
	return &Scraper{client: &http.Client{Timeout: fetchTimeout}}
}

// MosquePrayers tries the site's main page first, then any discovered
// prayer-time pages, and returns the first non-empty schedule found.
func (s *Scraper) MosquePrayers(ctx context.Context, websiteURL string) []model.Prayer {
	doc, err := s.fetch(ctx, websiteURL)
	if err != nil {
		log.Warn().Err(err).Str("url", websiteURL).Msg("mosque site fetch failed")
		return nil
	}

	if prayers := extract(doc); len(prayers) > 0 {
		return prayers
	}

	for _, pageURL := range discoverPrayerPages(doc, websiteURL) {
		pageDoc, err := s.fetch(ctx, pageURL)
		if err != nil {
			continue
		}
		if prayers := extract(pageDoc); len(prayers) > 0 {
			return prayers
		}
	}
	return nil
}

func (s *Scraper) fetch(ctx context.Context, rawURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

// extract runs the strategy chain in order of data quality: structured
// tables carry Iqama columns, div layouts usually do too, free text is the
// last resort.
func extract(doc *goquery.Document) []model.Prayer {
	if prayers := extractFromTables(doc); len(prayers) > 0 {
		return prayers
	}
	if prayers := extractFromStructuredDivs(doc); len(prayers) > 0 {
		return prayers
	}
	return extractFromText(doc)
}

// discoverPrayerPages collects candidate prayer-time URLs: links whose text
// mentions a prayer keyword, plus the common paths every mosque CMS seems to
// use. Only same-looking http(s) URLs survive.
func discoverPrayerPages(doc *goquery.Document, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	seen := map[string]bool{}
	var pages []string
	add := func(u *url.URL) {
		if u.Scheme != "http" && u.Scheme != "https" {
			return
		}
		if u.Host == "" {
			return
		}
		full := u.String()
		if !seen[full] {
			seen[full] = true
			pages = append(pages, full)
		}
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		text := strings.ToLower(sel.Text())
		for _, kw := range prayerLinkKeywords {
			if strings.Contains(text, kw) {
				if ref, err := url.Parse(href); err == nil {
					add(base.ResolveReference(ref))
				}
				break
			}
		}
	})

	for _, path := range commonPrayerPaths {
		if ref, err := url.Parse(path); err == nil {
			add(base.ResolveReference(ref))
		}
	}
	return pages
}
