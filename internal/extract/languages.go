package extract

import (
	"regexp"
	"strings"

	"cvpipe/internal/domain"
)

var languageLineRe = regexp.MustCompile(`^([A-Za-zÀ-ÿ]+)\s*[:\-–]\s*([A-Za-zÀ-ÿ\s]+)$`)

// Languages parses "Name: Level" pairs from a languages section,
// bulleted or bare. Both parts are title-cased.
func Languages(lines []string) []domain.Language {
	var languages []domain.Language
	for _, line := range lines {
		content := stripBullet(cleanText(line))
		m := languageLineRe.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		name := titleCase(m[1])
		level := titleCase(strings.TrimSpace(m[2]))
		if len(name) > 1 && level != "" {
			languages = append(languages, domain.Language{Language: name, Level: level})
		}
	}
	return languages
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		words[i] = strings.ToUpper(string(r[0])) + string(r[1:])
	}
	return strings.Join(words, " ")
}
