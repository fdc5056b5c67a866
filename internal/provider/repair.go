package provider

import (
	"encoding/json"
	"regexp"
	"strings"
)

var trailingCommaRe = regexp.MustCompile(`,(\s*[}\]])`)

// RepairJSON fixes the malformations language models habitually
// produce: prose around the JSON document, trailing commas, and
// truncated output missing its closing braces. Valid input is returned
// unchanged, and so is input the repairs cannot save.
func RepairJSON(raw string) string {
	if json.Valid([]byte(raw)) {
		return raw
	}

	repaired := strings.TrimSpace(raw)

	if idx := strings.Index(repaired, "{"); idx >= 0 {
		repaired = repaired[idx:]
	} else if idx := strings.Index(repaired, "["); idx >= 0 {
		repaired = repaired[idx:]
	}

	if idx := strings.LastIndex(repaired, "}"); idx >= 0 {
		repaired = repaired[:idx+1]
	} else if idx := strings.LastIndex(repaired, "]"); idx >= 0 {
		repaired = repaired[:idx+1]
	}

	repaired = trailingCommaRe.ReplaceAllString(repaired, "$1")

	if deficit := strings.Count(repaired, "{") - strings.Count(repaired, "}"); deficit > 0 {
		repaired += strings.Repeat("}", deficit)
	}
	if deficit := strings.Count(repaired, "[") - strings.Count(repaired, "]"); deficit > 0 {
		repaired += strings.Repeat("]", deficit)
	}

	if json.Valid([]byte(repaired)) {
		return repaired
	}
	return raw
}
