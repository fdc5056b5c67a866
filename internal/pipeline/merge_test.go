package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cvpipe/internal/domain"
)

func TestMergeFillsOnlyEmptyFields(t *testing.T) {
	ai := domain.NewStructuredCV()
	ai.ContactInfo.Name = "Jane Doe"
	ai.Skills = []string{"Python"}

	heuristic := domain.NewStructuredCV()
	heuristic.ContactInfo.Name = "J. Doe"
	heuristic.ContactInfo.Emails = []string{"jane@x.com"}
	heuristic.Skills = []string{"Python", "React"}
	heuristic.Education = []domain.EducationEntry{{DateRange: "2018 - 2022", Institution: "MIT", Details: []string{}}}

	merged, filled := Merge(ai, heuristic)

	// AI fields survive untouched, even when the heuristic found more.
	assert.Equal(t, "Jane Doe", merged.ContactInfo.Name)
	assert.Equal(t, []string{"Python"}, merged.Skills)

	// Empty ones are filled verbatim.
	assert.Equal(t, []string{"jane@x.com"}, merged.ContactInfo.Emails)
	assert.Equal(t, heuristic.Education, merged.Education)

	assert.Equal(t, []string{"contact_info", "education"}, filled)
}

func TestMergeContactSubFields(t *testing.T) {
	ai := domain.NewStructuredCV()
	ai.ContactInfo.Emails = []string{"ai@x.com"}

	heuristic := domain.NewStructuredCV()
	heuristic.ContactInfo.Emails = []string{"other@x.com"}
	heuristic.ContactInfo.Phones = []string{"555-0100"}
	heuristic.ContactInfo.LinkedIn = "linkedin.com/in/jane"

	merged, filled := Merge(ai, heuristic)

	assert.Equal(t, []string{"ai@x.com"}, merged.ContactInfo.Emails)
	assert.Equal(t, []string{"555-0100"}, merged.ContactInfo.Phones)
	assert.Equal(t, "linkedin.com/in/jane", merged.ContactInfo.LinkedIn)
	assert.Equal(t, []string{"contact_info"}, filled)
}

func TestMergeWithEmptyHeuristicIsNoOp(t *testing.T) {
	ai := domain.NewStructuredCV()
	ai.Skills = []string{"Go"}

	merged, filled := Merge(ai, domain.NewStructuredCV())

	assert.Equal(t, []string{"Go"}, merged.Skills)
	assert.Empty(t, filled)
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	ai := domain.NewStructuredCV()
	heuristic := domain.NewStructuredCV()
	heuristic.Skills = []string{"Python"}
	heuristic.ContactInfo.Name = "Jane Doe"

	merged, _ := Merge(ai, heuristic)

	assert.Equal(t, []string{"Python"}, merged.Skills)
	assert.Empty(t, ai.Skills)
	assert.Equal(t, "", ai.ContactInfo.Name)
}
