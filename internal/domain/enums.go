package domain

// Format identifies a supported source-document type.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDocx Format = "docx"
	FormatTXT  Format = "txt"
)

// AllowedExtensions maps file extensions (without dot) to Format.
var AllowedExtensions = map[string]Format{
	"pdf":  FormatPDF,
	"docx": FormatDocx,
	"doc":  FormatDocx,
	"txt":  FormatTXT,
}

// Provenance records which extraction path produced a result.
type Provenance string

const (
	ProvenanceHeuristic Provenance = "heuristic"
	ProvenanceAI        Provenance = "ai"
	ProvenanceMerged    Provenance = "ai+heuristic-merge"
	ProvenanceError     Provenance = "error"
)

// Category names a canonical résumé section.
type Category string

const (
	CategoryHeader       Category = "header" // pseudo-section before any heading
	CategoryContact      Category = "contact"
	CategorySummary      Category = "summary"
	CategorySkills       Category = "skills"
	CategoryLanguages    Category = "languages"
	CategoryEducation    Category = "education"
	CategoryExperience   Category = "experience"
	CategoryProjects     Category = "projects"
	CategoryUnclassified Category = "unclassified"
)
