package loader

import (
	"os"
	"regexp"
	"strings"
)

var (
	intraLineSpaceRe = regexp.MustCompile(`[ \t\x{00A0}]+`)
	blankRunRe       = regexp.MustCompile(`\n{3,}`)
)

func extractText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// normalize produces the canonical line-oriented text every downstream
// stage consumes: Unix line endings, no NUL bytes, single spaces inside
// lines, at most one blank line between paragraphs.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ReplaceAll(text, "\x00", "")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(intraLineSpaceRe.ReplaceAllString(line, " "))
	}
	text = strings.Join(lines, "\n")

	text = blankRunRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
