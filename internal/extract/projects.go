package extract

import (
	"strings"

	"cvpipe/internal/domain"
)

// Projects parses bulleted project lines. A colon splits title from
// description; without one the whole line is the title.
func Projects(lines []string) []domain.Project {
	var projects []domain.Project
	for _, line := range lines {
		content := stripBullet(cleanText(line))
		if content == "" {
			continue
		}
		title, description := content, ""
		if idx := strings.Index(content, ":"); idx >= 0 {
			title = strings.TrimSpace(content[:idx])
			description = strings.TrimSpace(content[idx+1:])
		}
		projects = append(projects, domain.Project{Title: title, Description: description})
	}
	return projects
}
