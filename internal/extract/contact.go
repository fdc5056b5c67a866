package extract

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	linkedinRe = regexp.MustCompile(`linkedin\.com/[^\s]+`)

	// Phone candidates in descending specificity: international with a
	// leading +, North American 3-3-4, French digit pairs, bare local
	// 3-4.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\+[0-9][0-9 .\-()]{8,}[0-9]`),
		regexp.MustCompile(`\(?[0-9]{3}\)?[ .\-]?[0-9]{3}[ .\-]?[0-9]{4}`),
		regexp.MustCompile(`0[0-9](?:[ .\-]?[0-9]{2}){4}`),
		regexp.MustCompile(`\b[0-9]{3}[ .\-][0-9]{4}\b`),
	}
)

// Emails returns every distinct email address in text, in order of
// first appearance.
func Emails(text string) []string {
	return dedupe(emailRe.FindAllString(cleanText(text), -1))
}

// Phones returns distinct phone numbers found in text. Matches are
// cleaned of separator noise and must carry at least seven digits.
func Phones(text string) []string {
	text = cleanText(text)
	var found []string
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			if cleaned := cleanPhone(match); cleaned != "" {
				found = append(found, cleaned)
			}
		}
	}
	return dedupePhones(found)
}

// LinkedIn returns the first linkedin.com profile URL in text, without
// trailing punctuation.
func LinkedIn(text string) string {
	match := linkedinRe.FindString(cleanText(text))
	return strings.TrimRight(match, ".,;)")
}

// cleanPhone strips everything that is neither a digit, a plus sign
// nor a common separator, keeping the human-readable shape intact.
func cleanPhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		switch {
		case r >= '0' && r <= '9', r == '+', r == ' ', r == '-', r == '(', r == ')':
			b.WriteRune(r)
		case r == '.':
			b.WriteByte('-')
		}
	}
	cleaned := strings.TrimSpace(b.String())
	if countDigits(cleaned) < 7 {
		return ""
	}
	return cleaned
}

// dedupePhones drops a number when its digits are a suffix of an
// already-kept number, so "+33612345678" suppresses "0612345678"-style
// re-matches of the same run of digits.
func dedupePhones(phones []string) []string {
	var out []string
	var outDigits []string
	for _, p := range phones {
		digits := digitsOnly(p)
		dup := false
		for _, kept := range outDigits {
			if strings.HasSuffix(kept, digits) || strings.HasSuffix(digits, kept) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
			outDigits = append(outDigits, digits)
		}
	}
	return out
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
