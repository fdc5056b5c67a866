package pipeline

import "cvpipe/internal/domain"

// Merge fills the empty top-level fields of an AI-produced record with
// the heuristic record's values. Contact info merges at the sub-field
// level. Fields the AI produced are kept untouched, even when the
// heuristic found more.
func Merge(ai, heuristic *domain.StructuredCV) (*domain.StructuredCV, []string) {
	merged := *ai
	var filled []string

	if mergeContactInfo(&merged.ContactInfo, &heuristic.ContactInfo) {
		filled = append(filled, "contact_info")
	}
	if len(merged.ProfessionalSummary) == 0 && len(heuristic.ProfessionalSummary) > 0 {
		merged.ProfessionalSummary = heuristic.ProfessionalSummary
		filled = append(filled, "professional_summary")
	}
	if len(merged.Skills) == 0 && len(heuristic.Skills) > 0 {
		merged.Skills = heuristic.Skills
		filled = append(filled, "skills")
	}
	if len(merged.Languages) == 0 && len(heuristic.Languages) > 0 {
		merged.Languages = heuristic.Languages
		filled = append(filled, "languages")
	}
	if len(merged.Education) == 0 && len(heuristic.Education) > 0 {
		merged.Education = heuristic.Education
		filled = append(filled, "education")
	}
	if len(merged.Experience) == 0 && len(heuristic.Experience) > 0 {
		merged.Experience = heuristic.Experience
		filled = append(filled, "experience")
	}
	if len(merged.Projects) == 0 && len(heuristic.Projects) > 0 {
		merged.Projects = heuristic.Projects
		filled = append(filled, "projects")
	}

	merged.Normalize()
	return &merged, filled
}

func mergeContactInfo(ai, heuristic *domain.ContactInfo) bool {
	changed := false
	if len(ai.Emails) == 0 && len(heuristic.Emails) > 0 {
		ai.Emails = heuristic.Emails
		changed = true
	}
	if len(ai.Phones) == 0 && len(heuristic.Phones) > 0 {
		ai.Phones = heuristic.Phones
		changed = true
	}
	if ai.LinkedIn == "" && heuristic.LinkedIn != "" {
		ai.LinkedIn = heuristic.LinkedIn
		changed = true
	}
	if ai.Address == "" && heuristic.Address != "" {
		ai.Address = heuristic.Address
		changed = true
	}
	if ai.Name == "" && heuristic.Name != "" {
		ai.Name = heuristic.Name
		changed = true
	}
	return changed
}
