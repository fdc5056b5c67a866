package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactInfo holds candidate contact details. All fields default to empty,
// never nil: callers may range over the slices without checking.
type ContactInfo struct {
	Emails   []string `json:"emails"`
	Phones   []string `json:"phones"`
	LinkedIn string   `json:"linkedin"`
	Address  string   `json:"address"`
	Name     string   `json:"name"`
}

// NewContactInfo returns a ContactInfo with empty (non-nil) slices.
func NewContactInfo() ContactInfo {
	return ContactInfo{Emails: []string{}, Phones: []string{}}
}

// IsEmpty reports whether no sub-field carries data.
func (c *ContactInfo) IsEmpty() bool {
	return len(c.Emails) == 0 && len(c.Phones) == 0 &&
		c.LinkedIn == "" && c.Address == "" && c.Name == ""
}

// EducationEntry is one education record. Details holds only strings.
type EducationEntry struct {
	DateRange   string   `json:"date_range,omitempty"`
	Institution string   `json:"institution,omitempty"`
	Degree      string   `json:"degree,omitempty"`
	Details     []string `json:"details"`
}

// ExperienceEntry is one work-experience record. Details holds only strings.
type ExperienceEntry struct {
	DateRange string   `json:"date_range,omitempty"`
	Company   string   `json:"company,omitempty"`
	Role      string   `json:"role,omitempty"`
	Details   []string `json:"details"`
}

// Project is a project or standalone achievement.
type Project struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Language pairs a language name with a proficiency level.
type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

// StructuredCV is the canonical structured candidate record. Both the
// heuristic and the AI extraction paths converge to this exact shape.
type StructuredCV struct {
	ContactInfo         ContactInfo       `json:"contact_info"`
	ProfessionalSummary []string          `json:"professional_summary"`
	Skills              []string          `json:"skills"`
	Languages           []Language        `json:"languages"`
	Education           []EducationEntry  `json:"education"`
	Experience          []ExperienceEntry `json:"experience"`
	Projects            []Project         `json:"projects"`
}

// NewStructuredCV returns a StructuredCV with every field initialized to its
// empty (non-nil) value, so serialization always emits all seven keys.
func NewStructuredCV() *StructuredCV {
	return &StructuredCV{
		ContactInfo:         NewContactInfo(),
		ProfessionalSummary: []string{},
		Skills:              []string{},
		Languages:           []Language{},
		Education:           []EducationEntry{},
		Experience:          []ExperienceEntry{},
		Projects:            []Project{},
	}
}

// Normalize replaces nil slices with empty ones, recursively. Decoded JSON
// from a provider may leave fields nil; downstream code relies on non-nil.
func (cv *StructuredCV) Normalize() {
	if cv.ContactInfo.Emails == nil {
		cv.ContactInfo.Emails = []string{}
	}
	if cv.ContactInfo.Phones == nil {
		cv.ContactInfo.Phones = []string{}
	}
	if cv.ProfessionalSummary == nil {
		cv.ProfessionalSummary = []string{}
	}
	if cv.Skills == nil {
		cv.Skills = []string{}
	}
	if cv.Languages == nil {
		cv.Languages = []Language{}
	}
	if cv.Education == nil {
		cv.Education = []EducationEntry{}
	}
	for i := range cv.Education {
		if cv.Education[i].Details == nil {
			cv.Education[i].Details = []string{}
		}
	}
	if cv.Experience == nil {
		cv.Experience = []ExperienceEntry{}
	}
	for i := range cv.Experience {
		if cv.Experience[i].Details == nil {
			cv.Experience[i].Details = []string{}
		}
	}
	if cv.Projects == nil {
		cv.Projects = []Project{}
	}
}

// MissingSections returns the names of top-level fields that carry no data.
// A non-empty result marks the record as partial.
func (cv *StructuredCV) MissingSections() []string {
	var missing []string
	if cv.ContactInfo.IsEmpty() {
		missing = append(missing, "contact_info")
	}
	if len(cv.ProfessionalSummary) == 0 {
		missing = append(missing, "professional_summary")
	}
	if len(cv.Skills) == 0 {
		missing = append(missing, "skills")
	}
	if len(cv.Languages) == 0 {
		missing = append(missing, "languages")
	}
	if len(cv.Education) == 0 {
		missing = append(missing, "education")
	}
	if len(cv.Experience) == 0 {
		missing = append(missing, "experience")
	}
	if len(cv.Projects) == 0 {
		missing = append(missing, "projects")
	}
	return missing
}

// ValidationReport is the outcome of validating a StructuredCV.
type ValidationReport struct {
	Passed bool    `json:"passed"`
	Reason string  `json:"reason"`
	Score  float64 `json:"score"`

	HasName           bool `json:"has_name"`
	MeaningfulContent bool `json:"has_meaningful_content"`
	RequiredSections  bool `json:"has_skills_or_experience_or_education"`
	ContentLengthOK   bool `json:"content_length_sufficient"`
	NoDummyContent    bool `json:"no_dummy_content"`
}

// ProcessingResult is the final artifact of one pipeline invocation.
// Immutable after construction; consumed by the persistence collaborator.
type ProcessingResult struct {
	ID          uuid.UUID         `json:"id"`
	Source      string            `json:"source"` // source file path
	Format      Format            `json:"format"`
	Provenance  Provenance        `json:"provenance"`
	CV          *StructuredCV     `json:"structured_cv"`
	Validation  *ValidationReport `json:"validation,omitempty"`
	Logs        []string          `json:"processing_logs"`
	RawText     string            `json:"raw_text"`
	ProcessedAt time.Time         `json:"processed_at"`
}
