package extract

import (
	"regexp"
	"strings"

	"cvpipe/internal/config"
)

// AddressExtractor finds the best postal address candidate in free
// text. It gathers candidate lines and line pairs, scores each on
// structural evidence (postal codes, street words, geography, commas,
// capitalization) and returns the top scorer above the configured
// threshold.
type AddressExtractor struct {
	minScore        int
	relaxedMinScore int
	overlapRatio    float64
}

func NewAddressExtractor(cfg *config.AddressConfig) *AddressExtractor {
	return &AddressExtractor{
		minScore:        cfg.MinScore,
		relaxedMinScore: cfg.RelaxedMinScore,
		overlapRatio:    cfg.OverlapRatio,
	}
}

var (
	addressKeywordRes = []*regexp.Regexp{
		regexp.MustCompile(`\baddress\b`),
		regexp.MustCompile(`\bhome\b`),
		regexp.MustCompile(`\blocation\b`),
		regexp.MustCompile(`\bresidence\b`),
		regexp.MustCompile(`\bresidential\b`),
		regexp.MustCompile(`\blives?\s+(?:at|in)\b`),
		regexp.MustCompile(`\bresiding\s+(?:at|in)\b`),
		regexp.MustCompile(`\badresse\b`),
		regexp.MustCompile(`\bdomicile\b`),
		regexp.MustCompile(`\brésidence\b`),
		regexp.MustCompile(`\blieu\s+de\s+résidence\b`),
		regexp.MustCompile(`\bdemeurant\s+(?:à|au|aux)\b`),
		regexp.MustCompile(`\bhabite\s+(?:à|au|aux)\b`),
	}

	addressAfterKeywordRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:home\s+address|residential\s+address|lieu\s+de\s+résidence)\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)(?:address|adresse|location|domicile|résidence|home)\s*:?\s*(.+)`),
		regexp.MustCompile(`(?i)(?:lives?\s+(?:at|in)|residing\s+(?:at|in))\s*(.+)`),
		regexp.MustCompile(`(?i)(?:demeurant\s+(?:à|au|aux)|habite\s+(?:à|au|aux))\s*(.+)`),
	}

	postalCodeRes = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`),
		regexp.MustCompile(`\b[A-Z]\d[A-Z]\s?\d[A-Z]\d\b`),
		regexp.MustCompile(`\b[A-Z]{1,2}\d{1,2}[A-Z]?\s?\d[A-Z]{2}\b`),
		regexp.MustCompile(`\b\d{4}\s?[A-Z]{2}\b`),
	}

	structureWordRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:street|st\.?|road|rd\.?|avenue|ave\.?|boulevard|blvd\.?|lane|ln\.?|drive|dr\.?|court|ct\.?|place|pl\.?|way|circle|square|park|plaza)\b`),
		regexp.MustCompile(`(?i)\b(?:rue|impasse|allée|chemin|route|quai|cours|passage|villa|esplanade|promenade)\b`),
		regexp.MustCompile(`(?i)\b(?:apartment|apt\.?|suite|unit|floor|building|house|complex)\b`),
		regexp.MustCompile(`(?i)\b(?:appartement|appt\.?|étage|bâtiment|maison|immeuble)\b`),
		regexp.MustCompile(`(?i)\b(?:district|neighborhood|zone|sector|quarter)\b`),
		regexp.MustCompile(`(?i)\b(?:quartier|secteur|arrondissement)\b`),
	}

	geoIndicatorRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*,`),
		regexp.MustCompile(`\b\w+\s+\d{4,5}\b`),
		regexp.MustCompile(`(?i)\b(?:france|canada|usa|united\s+states|uk|united\s+kingdom|germany|spain|italy|morocco|maroc|belgique|suisse)\b`),
	}

	stateProvinceRes = []*regexp.Regexp{
		regexp.MustCompile(`\b[A-Z]{2}\s+\d{5}\b`),
		regexp.MustCompile(`\b(?:ON|BC|AB|QC|NS|NB|MB|SK|PE|NL|NT|YT|NU)\s+[A-Z]\d[A-Z]\s?\d[A-Z]\d\b`),
		regexp.MustCompile(`\b\d{5}\s+[A-Z][a-z]+\b`),
	}

	nonAddressRes = []*regexp.Regexp{
		regexp.MustCompile(`\b(?:email|telephone|phone|mobile|cell|fax|tel|gsm|contact)\b`),
		regexp.MustCompile(`\b(?:experience|education|formation|compétences|skills|work|employment|job)\b`),
		regexp.MustCompile(`\b(?:born|né|date|age|single|married|célibataire|marié|divorced)\b`),
		regexp.MustCompile(`\b(?:objective|summary|profile|profil|résumé|curriculum)\b`),
		regexp.MustCompile(`@`),
		regexp.MustCompile(`(?:\+|00)\d{10,}`),
		regexp.MustCompile(`\b(?:https?://|www\.)`),
		regexp.MustCompile(`\b(?:mr\.?|mrs\.?|ms\.?|dr\.?|prof\.?|mme\.?|mlle\.?)\s+\w+`),
	}

	numberRe      = regexp.MustCompile(`\d+`)
	capitalWordRe = regexp.MustCompile(`\b[A-Z][a-z]+`)
)

// Extract returns the most address-looking fragment of text, or the
// empty string when nothing scores above the relaxed threshold.
func (e *AddressExtractor) Extract(text string) string {
	candidates := e.collectCandidates(cleanText(text))
	candidates = e.dedupeSimilar(candidates)
	if len(candidates) == 0 {
		return ""
	}

	best, bestScore := "", -1
	relaxedBest, relaxedBestScore := "", -1
	for _, c := range candidates {
		s := scoreCandidate(c)
		if s > e.minScore && s > bestScore {
			best, bestScore = c, s
		}
		if s > e.relaxedMinScore && s > relaxedBestScore {
			relaxedBest, relaxedBestScore = c, s
		}
	}
	if best != "" {
		return best
	}
	return relaxedBest
}

func (e *AddressExtractor) collectCandidates(text string) []string {
	var candidates []string
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < 10 {
			continue
		}

		lower := strings.ToLower(line)
		switch {
		case matchesAny(lower, addressKeywordRes):
			// Prefer the content after the keyword, fall back to the
			// whole line.
			extracted := line
			for _, re := range addressAfterKeywordRes {
				if m := re.FindStringSubmatch(line); m != nil {
					if v := strings.TrimSpace(m[1]); v != "" {
						extracted = v
					}
					break
				}
			}
			candidates = append(candidates, extracted)

		case matchesAny(line, structureWordRes) ||
			matchesAny(line, postalCodeRes) ||
			matchesAny(line, geoIndicatorRes) ||
			matchesAny(line, stateProvinceRes):
			candidates = append(candidates, line)
		}

		// Street line followed by a city or postal line.
		if i < len(lines)-1 && !matchesAny(line, postalCodeRes) &&
			(matchesAny(line, structureWordRes) || numberRe.MatchString(line)) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && (matchesAny(next, postalCodeRes) ||
				matchesAny(next, geoIndicatorRes) ||
				matchesAny(next, stateProvinceRes)) {
				candidates = append(candidates, line+", "+next)
			}
		}
	}
	return candidates
}

// dedupeSimilar drops candidates whose token set overlaps an existing
// one beyond the configured ratio, keeping the longer spelling.
func (e *AddressExtractor) dedupeSimilar(candidates []string) []string {
	var unique []string
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if len(candidate) < 10 {
			continue
		}
		words := tokenSet(candidate)

		duplicate := false
		for j, existing := range unique {
			existingWords := tokenSet(existing)
			overlap := 0
			for w := range words {
				if _, ok := existingWords[w]; ok {
					overlap++
				}
			}
			longest := len(words)
			if len(existingWords) > longest {
				longest = len(existingWords)
			}
			if longest > 0 && float64(overlap)/float64(longest) > e.overlapRatio {
				duplicate = true
				if len(candidate) > len(existing) {
					unique[j] = candidate
				}
				break
			}
		}
		if !duplicate {
			unique = append(unique, candidate)
		}
	}
	return unique
}

func scoreCandidate(candidate string) int {
	candidate = strings.TrimSpace(candidate)
	lower := strings.ToLower(candidate)
	score := 0

	switch length := len(candidate); {
	case length >= 20 && length <= 200:
		score += 3
	case length >= 10 && length <= 300:
		score++
	case length > 300:
		score -= 2
	}

	hasPostal := matchesAny(candidate, postalCodeRes)
	hasStructure := matchesAny(candidate, structureWordRes)
	hasGeo := matchesAny(candidate, geoIndicatorRes)
	if hasPostal {
		score += 5
	}
	if hasStructure {
		score += 4
	}
	if hasGeo {
		score += 3
	}
	if matchesAny(candidate, stateProvinceRes) {
		score += 2
	}

	if n := len(numberRe.FindAllString(candidate, -1)); n >= 1 {
		score += minInt(n, 3)
	}

	commas := strings.Count(candidate, ",")
	if commas >= 1 && commas <= 3 {
		score += commas
	} else if commas > 3 {
		score--
	}

	if caps := len(capitalWordRe.FindAllString(candidate, -1)); caps >= 2 {
		score += minInt(caps/2, 3)
	}

	for _, re := range nonAddressRes {
		if re.MatchString(lower) {
			score -= 3
		}
	}

	if hasPostal && hasStructure && hasGeo {
		score += 3
	}

	if score < 0 {
		return 0
	}
	return score
}

func matchesAny(s string, res []*regexp.Regexp) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(s)) {
		set[w] = struct{}{}
	}
	return set
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
