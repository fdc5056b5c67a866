// Package extract implements the heuristic field extractors. Each
// extractor takes segmented résumé text and produces one field of the
// structured record using regular expressions and scoring rules, with
// no network access.
package extract

import (
	"regexp"
	"strings"
)

var (
	invisibleRe = regexp.MustCompile("[\u200B\u200C\u200D\uFEFF]")
	bulletRe    = regexp.MustCompile(`^[●○•\-\*·▪]+\s*`)
)

// cleanText strips zero-width characters and trims the result. Zero
// width joiners show up in PDF extractions and break token matching.
func cleanText(s string) string {
	return strings.TrimSpace(invisibleRe.ReplaceAllString(s, ""))
}

// stripBullet removes a leading list glyph from a line.
func stripBullet(s string) string {
	return strings.TrimSpace(bulletRe.ReplaceAllString(s, ""))
}

func hasBullet(s string) bool {
	return bulletRe.MatchString(s)
}

// dedupe removes duplicates while preserving first-seen order.
// Comparison is case-insensitive; the first spelling wins.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	return out
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}

func isAllUpper(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}
