package extract

import (
	"regexp"
	"strings"

	"cvpipe/internal/domain"
)

const monthPattern = `(?:jan(?:uary|v(?:ier)?)?|feb(?:ruary)?|févr?(?:ier)?|mar(?:ch|s)?|a[pv]r(?:il)?|ma[iy]|jui?n(?:e)?|jul(?:y)?|juil(?:let)?|aug(?:ust)?|août|sept?(?:ember|embre)?|oct(?:ober|obre)?|nov(?:ember|embre)?|d[ée]c(?:ember|embre)?)`

// dateRangeRe opens an education or experience entry:
// "Sept 2018 - June 2022: rest", "Janvier 2020 - PRÉSENT", "2014 - 2017".
var dateRangeRe = regexp.MustCompile(
	`(?i)^((?:` + monthPattern + `\.?\s+)?(?:19|20)\d{2}\s*[-–—]\s*(?:(?:` + monthPattern + `\.?\s+)?(?:19|20)\d{2}|present|présent|current|aujourd'hui))\s*:?\s*(.*)$`)

var parentheticalRe = regexp.MustCompile(`\(([^)]*)\)`)

// Education parses dated entries from an education section. A
// date-range line opens an entry; the text after its colon carries the
// degree, with the institution in a parenthesized clause when present.
// Following lines accumulate as details until the next date range.
func Education(lines []string) []domain.EducationEntry {
	var entries []domain.EducationEntry
	var current *domain.EducationEntry

	flush := func() {
		if current != nil {
			current.Details = dedupe(current.Details)
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range lines {
		content := stripBullet(cleanText(line))
		if content == "" {
			continue
		}
		if m := dateRangeRe.FindStringSubmatch(content); m != nil {
			flush()
			entry := domain.EducationEntry{DateRange: strings.TrimSpace(m[1])}
			rest := strings.TrimSpace(m[2])
			if pm := parentheticalRe.FindStringSubmatch(rest); pm != nil {
				entry.Institution = strings.TrimSpace(pm[1])
				rest = strings.TrimSpace(parentheticalRe.ReplaceAllString(rest, ""))
			}
			entry.Degree = rest
			current = &entry
			continue
		}
		if current != nil && continuesEntry(line, content) {
			current.Details = append(current.Details, content)
		}
	}
	flush()
	return entries
}

// Experience parses dated entries from an experience section. The text
// after the date range splits on the first comma into company and
// role.
func Experience(lines []string) []domain.ExperienceEntry {
	var entries []domain.ExperienceEntry
	var current *domain.ExperienceEntry

	flush := func() {
		if current != nil {
			current.Details = dedupe(current.Details)
			entries = append(entries, *current)
			current = nil
		}
	}

	for _, line := range lines {
		content := stripBullet(cleanText(line))
		if content == "" {
			continue
		}
		if m := dateRangeRe.FindStringSubmatch(content); m != nil {
			flush()
			entry := domain.ExperienceEntry{DateRange: strings.TrimSpace(m[1])}
			rest := strings.TrimSpace(m[2])
			if idx := strings.Index(rest, ","); idx >= 0 {
				entry.Company = strings.TrimSpace(rest[:idx])
				entry.Role = strings.TrimSpace(rest[idx+1:])
			} else {
				entry.Company = rest
			}
			current = &entry
			continue
		}
		if current != nil && continuesEntry(line, content) {
			current.Details = append(current.Details, content)
		}
	}
	flush()
	return entries
}

// continuesEntry accepts bulleted lines and non-all-caps prose as
// details of the open entry. All-caps lines read as stray headings.
func continuesEntry(original, content string) bool {
	if hasBullet(original) {
		return isMeaningful(content)
	}
	return !isAllUpper(content) && isMeaningful(content)
}
