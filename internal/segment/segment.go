// Package segment splits normalized résumé text into labeled sections.
//
// The splitter walks the text line by line, opening a new section whenever
// a line looks like a section heading. Headings are matched against an
// English and French vocabulary first, then against a generic shape test
// (short, capitalized, no sentence punctuation). Lines before the first
// heading form the header section; headings under no known category open
// an unclassified section.
package segment

import (
	"regexp"
	"strings"

	"cvpipe/internal/domain"
)

// Section is a contiguous run of lines under one heading.
type Section struct {
	Category domain.Category
	// Heading is the original heading line, empty for the leading
	// header section.
	Heading string
	Lines   []string
}

// headingVocabulary maps lowercase heading keywords to categories.
// Matching is prefix-insensitive: a heading line matches a keyword when
// the line, lowercased and stripped of trailing colons, equals the
// keyword or starts with it.
var headingVocabulary = []struct {
	keyword  string
	category domain.Category
}{
	{"compétences techniques", domain.CategorySkills},
	{"compétences", domain.CategorySkills},
	{"competences", domain.CategorySkills},
	{"technical skills", domain.CategorySkills},
	{"core skills", domain.CategorySkills},
	{"skills", domain.CategorySkills},
	{"technologies", domain.CategorySkills},
	{"expérience professionnelle", domain.CategoryExperience},
	{"expériences professionnelles", domain.CategoryExperience},
	{"experience professionnelle", domain.CategoryExperience},
	{"expérience", domain.CategoryExperience},
	{"professional experience", domain.CategoryExperience},
	{"work experience", domain.CategoryExperience},
	{"work history", domain.CategoryExperience},
	{"employment", domain.CategoryExperience},
	{"experience", domain.CategoryExperience},
	{"parcours professionnel", domain.CategoryExperience},
	{"formation", domain.CategoryEducation},
	{"formations", domain.CategoryEducation},
	{"éducation", domain.CategoryEducation},
	{"education", domain.CategoryEducation},
	{"diplômes", domain.CategoryEducation},
	{"academic background", domain.CategoryEducation},
	{"études", domain.CategoryEducation},
	{"langues", domain.CategoryLanguages},
	{"languages", domain.CategoryLanguages},
	{"language skills", domain.CategoryLanguages},
	{"projets", domain.CategoryProjects},
	{"projects", domain.CategoryProjects},
	{"personal projects", domain.CategoryProjects},
	{"projets personnels", domain.CategoryProjects},
	{"réalisations", domain.CategoryProjects},
	{"profil", domain.CategorySummary},
	{"profile", domain.CategorySummary},
	{"professional summary", domain.CategorySummary},
	{"summary", domain.CategorySummary},
	{"résumé", domain.CategorySummary},
	{"objective", domain.CategorySummary},
	{"objectif", domain.CategorySummary},
	{"à propos", domain.CategorySummary},
	{"about me", domain.CategorySummary},
	{"about", domain.CategorySummary},
	{"contact", domain.CategoryContact},
	{"coordonnées", domain.CategoryContact},
	{"contact information", domain.CategoryContact},
	{"informations personnelles", domain.CategoryContact},
	{"personal details", domain.CategoryContact},
}

var (
	separatorRe     = regexp.MustCompile(`^[-=_*~•●—–\s]+$`)
	nameShapeRe     = regexp.MustCompile(`^[A-ZÀ-Þ][a-zà-ÿ]+(?: [A-ZÀ-Þ]\.?| [A-ZÀ-Þ][a-zà-ÿ]+){1,2}$`)
	capsNameShapeRe = regexp.MustCompile(`^[A-ZÀ-Þ]{2,}(?: (?:[A-ZÀ-Þ]\.?|[A-ZÀ-Þ]{2,})){1,2}$`)
)

// Split segments text into ordered sections. Heading lines themselves
// are consumed, never emitted as content. The result always starts with
// a header section (possibly empty) when any pre-heading lines exist.
func Split(text string) []Section {
	var sections []Section
	current := Section{Category: domain.CategoryHeader}

	flush := func() {
		if current.Heading != "" || len(current.Lines) > 0 {
			sections = append(sections, current)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || separatorRe.MatchString(line) {
			continue
		}

		if category, ok := classifyHeading(line); ok {
			flush()
			current = Section{Category: category, Heading: line}
			continue
		}
		if isGenericHeading(line, current.Category == domain.CategoryHeader) {
			flush()
			current = Section{Category: domain.CategoryUnclassified, Heading: line}
			continue
		}

		current.Lines = append(current.Lines, line)
	}
	flush()
	return sections
}

// ByCategory collects the lines of every section under category,
// preserving document order.
func ByCategory(sections []Section, category domain.Category) []string {
	var lines []string
	for _, s := range sections {
		if s.Category == category {
			lines = append(lines, s.Lines...)
		}
	}
	return lines
}

func classifyHeading(line string) (domain.Category, bool) {
	normalized := strings.ToLower(strings.TrimRight(strings.TrimSpace(line), " :"))
	if normalized == "" || len(strings.Fields(normalized)) > 8 {
		return "", false
	}
	for _, entry := range headingVocabulary {
		if normalized == entry.keyword {
			return entry.category, true
		}
	}
	// Keyword-prefixed variants such as "SKILLS & TOOLS" count only when
	// the line itself is shaped like a heading, so prose that happens to
	// open with a keyword stays content.
	if !headingShaped(line) {
		return "", false
	}
	for _, entry := range headingVocabulary {
		if strings.HasPrefix(normalized, entry.keyword+" ") {
			return entry.category, true
		}
	}
	return "", false
}

// headingShaped reports whether a line has the shape of a section
// heading: short, all upper case or title case with a trailing colon,
// no sentence punctuation or digits.
func headingShaped(line string) bool {
	trimmed := strings.TrimRight(line, ":")
	words := strings.Fields(trimmed)
	if len(words) == 0 || len(words) > 8 {
		return false
	}
	if strings.ContainsAny(trimmed, ".,;@0123456789") {
		return false
	}
	if trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed) {
		return true
	}
	return strings.HasSuffix(line, ":") && isTitleCase(words)
}

// isGenericHeading detects heading-shaped lines outside the known
// vocabulary, excluding anything shaped like a person's name. While the
// leading header section is still open, a short all-caps line is far
// more likely the candidate's name than a heading, so it stays content.
func isGenericHeading(line string, inHeader bool) bool {
	if !headingShaped(line) {
		return false
	}
	trimmed := strings.TrimRight(line, ":")
	if nameShapeRe.MatchString(trimmed) {
		return false
	}
	if inHeader && capsNameShapeRe.MatchString(trimmed) {
		return false
	}
	return true
}

func isTitleCase(words []string) bool {
	for _, w := range words {
		r := []rune(w)
		if len(r) == 0 || !isUpper(r[0]) {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'À' && r <= 'Þ')
}
