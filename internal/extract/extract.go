package extract

import (
	"go.uber.org/zap"

	"cvpipe/internal/config"
	"cvpipe/internal/domain"
	"cvpipe/internal/segment"
)

// Extractor assembles a full structured record from raw résumé text
// using the heuristic extractors only. It is deterministic and needs
// no network.
type Extractor struct {
	address *AddressExtractor
	logger  *zap.Logger
}

func New(cfg *config.AddressConfig, logger *zap.Logger) *Extractor {
	return &Extractor{
		address: NewAddressExtractor(cfg),
		logger:  logger,
	}
}

// Extract segments text and runs every field extractor. The returned
// record always carries all seven fields, possibly empty.
func (e *Extractor) Extract(text string) *domain.StructuredCV {
	text = cleanText(text)
	cv := domain.NewStructuredCV()
	if text == "" {
		return cv
	}

	sections := segment.Split(text)

	// Contact details are matched over the whole document. They often
	// sit above any section heading.
	cv.ContactInfo.Emails = Emails(text)
	cv.ContactInfo.Phones = Phones(text)
	cv.ContactInfo.LinkedIn = LinkedIn(text)
	cv.ContactInfo.Address = e.address.Extract(text)
	cv.ContactInfo.Name = Name(segment.ByCategory(sections, domain.CategoryHeader))

	cv.ProfessionalSummary = Summary(segment.ByCategory(sections, domain.CategorySummary))
	cv.Skills = Skills(segment.ByCategory(sections, domain.CategorySkills))
	cv.Languages = Languages(segment.ByCategory(sections, domain.CategoryLanguages))
	cv.Education = Education(segment.ByCategory(sections, domain.CategoryEducation))
	cv.Experience = Experience(segment.ByCategory(sections, domain.CategoryExperience))
	cv.Projects = Projects(segment.ByCategory(sections, domain.CategoryProjects))

	e.foldUnclassified(cv, sections)

	cv.Normalize()
	return cv
}

// foldUnclassified salvages sections under unknown headings. Dated
// sections parse as extra experience entries; prose that survives the
// summary filter joins the professional summary. Everything else is
// dropped.
func (e *Extractor) foldUnclassified(cv *domain.StructuredCV, sections []segment.Section) {
	for _, s := range sections {
		if s.Category != domain.CategoryUnclassified {
			continue
		}
		if hasDateRange(s.Lines) {
			cv.Experience = append(cv.Experience, Experience(s.Lines)...)
			continue
		}
		if prose := Summary(s.Lines); len(prose) > 0 {
			cv.ProfessionalSummary = append(cv.ProfessionalSummary, prose...)
			e.logger.Debug("unclassified section folded into summary", zap.String("heading", s.Heading))
		}
	}
	cv.ProfessionalSummary = dedupe(cv.ProfessionalSummary)
}

func hasDateRange(lines []string) bool {
	for _, line := range lines {
		if dateRangeRe.MatchString(stripBullet(cleanText(line))) {
			return true
		}
	}
	return false
}
