package extract

import (
	"regexp"
	"strings"
)

var (
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`^[A-ZÀ-Þ][a-zà-ÿ]+(?:\s+[A-ZÀ-Þ][a-zà-ÿ]+){1,2}$`),
		regexp.MustCompile(`^[A-ZÀ-Þ]\.\s+[A-ZÀ-Þ][a-zà-ÿ]+$`),
		regexp.MustCompile(`^[A-ZÀ-Þ][a-zà-ÿ]+\s+[A-ZÀ-Þ]\.$`),
		regexp.MustCompile(`^[A-ZÀ-Þ]+(?:\s+[A-ZÀ-Þ]+){1,2}$`),
	}
	courtesyTitleRe = regexp.MustCompile(`^(?i:mr|mrs|ms|dr|m|mme|mlle)\.?\s+`)
	jobTitleRe      = regexp.MustCompile(`(?i)\b(?:engineer|developer|développeur|manager|consultant|analyst|architect|designer|scientist|intern|stagiaire|ingénieur|directeur|director|technician|technicien)\b`)

	// Lines bearing these words are contact or section furniture,
	// never a bare name.
	nonNameKeywords = []string{
		"email", "phone", "address", "adresse", "linkedin", "summary",
		"profile", "profil", "experience", "expérience", "education",
		"formation", "skills", "compétences", "languages", "langues",
		"projects", "projets", "curriculum", "vitae",
	}
)

// Name looks for a person-name-shaped line among the first lines of
// the header section, optionally behind a courtesy title. Lines
// carrying contact details, a job title, or section keywords are
// skipped.
func Name(headerLines []string) string {
	limit := len(headerLines)
	if limit > 10 {
		limit = 10
	}
	for _, line := range headerLines[:limit] {
		content := cleanText(line)
		if content == "" || strings.ContainsAny(content, "@0123456789") {
			continue
		}
		lower := strings.ToLower(content)
		if containsAnyKeyword(lower, nonNameKeywords) {
			continue
		}
		if jobTitleRe.MatchString(content) {
			continue
		}
		content = courtesyTitleRe.ReplaceAllString(content, "")
		for _, re := range namePatterns {
			if re.MatchString(content) {
				return content
			}
		}
	}
	return ""
}

func containsAnyKeyword(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
