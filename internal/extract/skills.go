package extract

import (
	"regexp"
	"strings"
)

var skillSeparatorRe = regexp.MustCompile(`[,;/|]`)

// Skills parses the lines of a skills section. Lines of the shape
// "Category: skill1, skill2" contribute the skills and drop the
// category label. Remaining lines are split on the usual separators.
func Skills(lines []string) []string {
	var skills []string
	for _, line := range lines {
		content := stripBullet(cleanText(line))
		if content == "" {
			continue
		}
		if idx := strings.Index(content, ":"); idx >= 0 {
			content = strings.TrimSpace(content[idx+1:])
		}
		for _, item := range skillSeparatorRe.Split(content, -1) {
			item = strings.TrimSpace(item)
			if len(item) >= 2 {
				skills = append(skills, item)
			}
		}
	}
	return dedupe(skills)
}
