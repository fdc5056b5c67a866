package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpipe/internal/config"
	"cvpipe/internal/domain"
)

func testConfig() *config.ValidationConfig {
	return &config.ValidationConfig{
		MinContentLength:       200,
		PassScore:              0.7,
		WeightName:             0.2,
		WeightMeaningful:       0.3,
		WeightRequiredSections: 0.3,
		WeightContentLength:    0.1,
		WeightNoDummy:          0.1,
	}
}

func fullRecord() *domain.StructuredCV {
	cv := domain.NewStructuredCV()
	cv.ContactInfo.Name = "Jane Doe"
	cv.ContactInfo.Emails = []string{"jane.doe@example.com"}
	cv.ProfessionalSummary = []string{
		"Backend engineer with eight years of experience building data platforms for logistics companies.",
	}
	cv.Skills = []string{"Python programming", "Kubernetes administration", "PostgreSQL tuning"}
	cv.Experience = []domain.ExperienceEntry{{
		DateRange: "Jan 2020 - Present",
		Company:   "Acme Corporation",
		Role:      "Senior Engineer",
		Details:   []string{"Led the migration of the billing platform onto Kubernetes."},
	}}
	return cv
}

func TestValidatePasses(t *testing.T) {
	report := New(testConfig()).Validate(fullRecord())

	assert.True(t, report.Passed)
	assert.True(t, report.HasName)
	assert.True(t, report.MeaningfulContent)
	assert.True(t, report.RequiredSections)
	assert.True(t, report.ContentLengthOK)
	assert.True(t, report.NoDummyContent)
	assert.InDelta(t, 1.0, report.Score, 0.001)
	assert.Equal(t, "output passed validation", report.Reason)
}

func TestValidateDummyNameFails(t *testing.T) {
	cv := domain.NewStructuredCV()
	cv.ContactInfo.Name = "N/A"

	report := New(testConfig()).Validate(cv)
	require.False(t, report.Passed)
	assert.False(t, report.HasName)
	assert.False(t, report.NoDummyContent)
	assert.Contains(t, report.Reason, "dummy")
	assert.Contains(t, report.Reason, "content too short")
}

func TestValidateDummyContentVetoesHighScore(t *testing.T) {
	cv := fullRecord()
	cv.Skills = append(cv.Skills, "lorem ipsum")

	report := New(testConfig()).Validate(cv)
	assert.False(t, report.Passed)
	assert.False(t, report.NoDummyContent)
}

func TestValidateEmptyRecordFails(t *testing.T) {
	report := New(testConfig()).Validate(domain.NewStructuredCV())
	assert.False(t, report.Passed)
	assert.False(t, report.HasName)
	assert.False(t, report.MeaningfulContent)
	assert.False(t, report.RequiredSections)
	assert.False(t, report.ContentLengthOK)
}

func TestValidateNameFromSummaryPattern(t *testing.T) {
	cv := fullRecord()
	cv.ContactInfo.Name = ""
	cv.ProfessionalSummary = append(cv.ProfessionalSummary, "Jane Doe is a backend engineer.")

	report := New(testConfig()).Validate(cv)
	assert.True(t, report.HasName)
}

func TestValidateMeaningfulContentMonotonic(t *testing.T) {
	empty := domain.NewStructuredCV()
	before := New(testConfig()).Validate(empty)

	withEmail := domain.NewStructuredCV()
	withEmail.ContactInfo.Emails = []string{"jane.doe@example.com"}
	after := New(testConfig()).Validate(withEmail)

	assert.False(t, before.MeaningfulContent)
	assert.True(t, after.MeaningfulContent)
	assert.Greater(t, after.Score, before.Score)
}

func TestValidateReasonEnumeratesAllFailures(t *testing.T) {
	report := New(testConfig()).Validate(domain.NewStructuredCV())
	assert.Contains(t, report.Reason, "missing name")
	assert.Contains(t, report.Reason, "insufficient meaningful content")
	assert.Contains(t, report.Reason, "missing required sections")
	assert.Contains(t, report.Reason, "content too short")
}

func TestValidateRepetitiveContentIsDummy(t *testing.T) {
	cv := fullRecord()
	cv.ProfessionalSummary = append(cv.ProfessionalSummary, strings.Repeat("blah ", 8))

	report := New(testConfig()).Validate(cv)
	assert.False(t, report.NoDummyContent)
}

func TestIsDummy(t *testing.T) {
	assert.True(t, isDummy("n/a"))
	assert.True(t, isDummy("tbd"))
	assert.True(t, isDummy("abcd"))
	assert.True(t, isDummy("{}"))
	assert.False(t, isDummy("Senior Software Engineer"))
	assert.False(t, isDummy("a string long enough that an indicator like test inside it is fine"))
}
