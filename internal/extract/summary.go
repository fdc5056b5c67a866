package extract

import (
	"regexp"
	"strings"
)

var (
	profileURLRe  = regexp.MustCompile(`(?i)linkedin\.com|github\.com`)
	junkLineRe    = regexp.MustCompile(`^[\d\s\-_=*]+$`)
	anyDigitRe    = regexp.MustCompile(`\+?\d`)
	terminalPunct = []string{".", "!", "?"}
)

// Summary keeps the prose lines of a summary section, dropping contact
// fragments and anything too short to be a sentence.
func Summary(lines []string) []string {
	var out []string
	for _, line := range lines {
		content := cleanText(line)
		if content == "" {
			continue
		}
		if strings.Contains(content, "@") || anyDigitRe.MatchString(content) || profileURLRe.MatchString(content) {
			continue
		}
		if len(content) < 20 && !hasTerminalPunct(content) {
			continue
		}
		if isMeaningful(content) {
			out = append(out, content)
		}
	}
	return dedupe(out)
}

// isMeaningful rejects empty lines, bare separators and fragments
// shorter than three characters.
func isMeaningful(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 3 {
		return false
	}
	return !junkLineRe.MatchString(s)
}

func hasTerminalPunct(s string) bool {
	for _, p := range terminalPunct {
		if strings.HasSuffix(s, p) {
			return true
		}
	}
	return false
}
