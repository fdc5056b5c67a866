// Package validate checks a structured record against plausibility
// heuristics before it is trusted. The checks guard against the two
// classic failure modes of model-produced records: confident-looking
// placeholder content and structurally valid but near-empty output.
package validate

import (
	"fmt"
	"regexp"
	"strings"

	"cvpipe/internal/config"
	"cvpipe/internal/domain"
)

// dummyIndicators are placeholder phrases that disqualify short field
// values outright.
var dummyIndicators = []string{
	"n/a", "no information", "not available", "sample", "example",
	"placeholder", "dummy", "test", "lorem ipsum", "unknown",
	"tbd", "to be determined", "no information available",
}

var namePatternRes = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z][a-z]+\b`),
	regexp.MustCompile(`\b[A-Z]\. [A-Z][a-z]+\b`),
	regexp.MustCompile(`\b[A-Z][a-z]+ [A-Z]\.\b`),
}

// Validator scores a StructuredCV on five weighted checks.
type Validator struct {
	cfg *config.ValidationConfig
}

func New(cfg *config.ValidationConfig) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs all checks and returns the report. A record passes
// when its weighted score reaches the pass threshold AND it carries no
// dummy content; the dummy check is a hard veto regardless of score.
func (v *Validator) Validate(cv *domain.StructuredCV) *domain.ValidationReport {
	report := &domain.ValidationReport{
		HasName:           v.checkName(cv),
		MeaningfulContent: v.checkMeaningfulContent(cv),
		RequiredSections:  len(cv.Skills) > 0 || len(cv.Experience) > 0 || len(cv.Education) > 0,
		ContentLengthOK:   contentLength(cv) >= v.cfg.MinContentLength,
		NoDummyContent:    v.checkNoDummy(cv),
	}

	score := 0.0
	if report.HasName {
		score += v.cfg.WeightName
	}
	if report.MeaningfulContent {
		score += v.cfg.WeightMeaningful
	}
	if report.RequiredSections {
		score += v.cfg.WeightRequiredSections
	}
	if report.ContentLengthOK {
		score += v.cfg.WeightContentLength
	}
	if report.NoDummyContent {
		score += v.cfg.WeightNoDummy
	}
	report.Score = score
	report.Passed = score >= v.cfg.PassScore && report.NoDummyContent

	if report.Passed {
		report.Reason = "output passed validation"
	} else {
		report.Reason = failureReason(report)
	}
	return report
}

func (v *Validator) checkName(cv *domain.StructuredCV) bool {
	name := strings.TrimSpace(cv.ContactInfo.Name)
	if len(name) > 1 && !isDummy(name) {
		return true
	}
	for _, line := range cv.ProfessionalSummary {
		for _, re := range namePatternRes {
			if re.MatchString(line) {
				return true
			}
		}
	}
	return false
}

func (v *Validator) checkMeaningfulContent(cv *domain.StructuredCV) bool {
	c := &cv.ContactInfo
	if len(c.Emails) > 0 || len(c.Phones) > 0 ||
		len(strings.TrimSpace(c.Name)) > 2 || len(strings.TrimSpace(c.Address)) > 2 {
		return true
	}
	for _, s := range cv.ProfessionalSummary {
		if len(strings.TrimSpace(s)) > 10 {
			return true
		}
	}
	for _, s := range cv.Skills {
		if len(strings.TrimSpace(s)) > 10 {
			return true
		}
	}
	for _, l := range cv.Languages {
		if len(strings.TrimSpace(l.Language)) > 5 || len(strings.TrimSpace(l.Level)) > 5 {
			return true
		}
	}
	for _, e := range cv.Education {
		if len(strings.TrimSpace(e.Degree)) > 5 || len(strings.TrimSpace(e.Institution)) > 5 ||
			len(strings.TrimSpace(e.DateRange)) > 5 || len(e.Details) > 0 {
			return true
		}
	}
	for _, e := range cv.Experience {
		if len(strings.TrimSpace(e.Company)) > 5 || len(strings.TrimSpace(e.Role)) > 5 ||
			len(strings.TrimSpace(e.DateRange)) > 5 || len(e.Details) > 0 {
			return true
		}
	}
	for _, p := range cv.Projects {
		if len(strings.TrimSpace(p.Title)) > 5 || len(strings.TrimSpace(p.Description)) > 5 {
			return true
		}
	}
	return false
}

func (v *Validator) checkNoDummy(cv *domain.StructuredCV) bool {
	for _, s := range collectStrings(cv) {
		if s != "" && isDummy(s) {
			return false
		}
	}
	return true
}

// contentLength totals the characters across every string in the
// record, measuring how much of the source survived structuring.
func contentLength(cv *domain.StructuredCV) int {
	total := 0
	for _, s := range collectStrings(cv) {
		total += len(s)
	}
	return total
}

func collectStrings(cv *domain.StructuredCV) []string {
	out := []string{
		cv.ContactInfo.LinkedIn, cv.ContactInfo.Address, cv.ContactInfo.Name,
	}
	out = append(out, cv.ContactInfo.Emails...)
	out = append(out, cv.ContactInfo.Phones...)
	out = append(out, cv.ProfessionalSummary...)
	out = append(out, cv.Skills...)
	for _, l := range cv.Languages {
		out = append(out, l.Language, l.Level)
	}
	for _, e := range cv.Education {
		out = append(out, e.DateRange, e.Institution, e.Degree)
		out = append(out, e.Details...)
	}
	for _, e := range cv.Experience {
		out = append(out, e.DateRange, e.Company, e.Role)
		out = append(out, e.Details...)
	}
	for _, p := range cv.Projects {
		out = append(out, p.Title, p.Description)
	}
	return out
}

// isDummy flags placeholder values: known indicator phrases in short
// strings, sub-five-character fragments, and highly repetitive token
// runs.
func isDummy(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return true
	}
	lower := strings.ToLower(trimmed)
	if len(trimmed) < 20 {
		for _, indicator := range dummyIndicators {
			if strings.Contains(lower, indicator) {
				return true
			}
		}
	}
	if len(trimmed) < 5 {
		return true
	}
	words := strings.Fields(trimmed)
	if len(words) > 5 {
		distinct := make(map[string]struct{}, len(words))
		for _, w := range words {
			distinct[w] = struct{}{}
		}
		if len(distinct) < 3 {
			return true
		}
	}
	switch trimmed {
	case "{}", "[]", "null":
		return true
	}
	return false
}

func failureReason(r *domain.ValidationReport) string {
	var reasons []string
	if !r.HasName {
		reasons = append(reasons, "missing name")
	}
	if !r.MeaningfulContent {
		reasons = append(reasons, "insufficient meaningful content")
	}
	if !r.RequiredSections {
		reasons = append(reasons, "missing required sections (skills/experience/education)")
	}
	if !r.ContentLengthOK {
		reasons = append(reasons, "content too short")
	}
	if !r.NoDummyContent {
		reasons = append(reasons, "contains dummy/placeholder content")
	}
	if len(reasons) == 0 {
		return "validation failed: unknown reason"
	}
	return fmt.Sprintf("validation failed: %s (score: %.2f)", strings.Join(reasons, ", "), r.Score)
}
