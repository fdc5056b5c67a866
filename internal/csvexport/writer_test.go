package csvexport

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpipe/internal/domain"
)

func TestWriteHeader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 17)
	assert.Equal(t, "Source", row[0])
	assert.Equal(t, "Provenance", row[2])
	assert.Equal(t, "Processed At", row[16])
}

func TestWriteResults_Complete(t *testing.T) {
	cv := domain.NewStructuredCV()
	cv.ContactInfo.Name = "Jane Doe"
	cv.ContactInfo.Emails = []string{"jane@x.com", "jane@work.com"}
	cv.ContactInfo.Phones = []string{"555-0100"}
	cv.ContactInfo.LinkedIn = "linkedin.com/in/jane"
	cv.ContactInfo.Address = "12 Main Street, Springfield"
	cv.ProfessionalSummary = []string{"Backend engineer.", "Eight years of experience."}
	cv.Skills = []string{"Python", "SQL"}
	cv.Languages = []domain.Language{{Language: "English", Level: "Fluent"}, {Language: "French"}}
	cv.Education = []domain.EducationEntry{{DateRange: "2018 - 2022", Institution: "MIT", Details: []string{}}}
	cv.Experience = []domain.ExperienceEntry{
		{DateRange: "2022 - 2023", Company: "Acme", Details: []string{}},
		{DateRange: "2023 - 2024", Company: "Globex", Details: []string{}},
	}

	result := &domain.ProcessingResult{
		ID:          uuid.New(),
		Source:      "cv.pdf",
		Format:      domain.FormatPDF,
		Provenance:  domain.ProvenanceAI,
		CV:          cv,
		Validation:  &domain.ValidationReport{Passed: true, Score: 0.9},
		Logs:        []string{},
		ProcessedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteResults([]*domain.ProcessingResult{result}))
	w.Flush()
	require.NoError(t, w.Error())

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 17)
	assert.Equal(t, "cv.pdf", row[0])
	assert.Equal(t, "pdf", row[1])
	assert.Equal(t, "ai", row[2])
	assert.Equal(t, "Yes", row[3])
	assert.Equal(t, "0.90", row[4])
	assert.Equal(t, "Jane Doe", row[5])
	assert.Equal(t, "jane@x.com; jane@work.com", row[6])
	assert.Equal(t, "555-0100", row[7])
	assert.Equal(t, "linkedin.com/in/jane", row[8])
	assert.Equal(t, "12 Main Street, Springfield", row[9])
	assert.Equal(t, "Backend engineer. Eight years of experience.", row[10])
	assert.Equal(t, "Python; SQL", row[11])
	assert.Equal(t, "English (Fluent); French", row[12])
	assert.Equal(t, "1", row[13])
	assert.Equal(t, "2", row[14])
	assert.Equal(t, "0", row[15])
	assert.Equal(t, "2026-03-01T10:30:00Z", row[16])
}

func TestWriteResults_NoValidation(t *testing.T) {
	result := &domain.ProcessingResult{
		ID:          uuid.New(),
		Source:      "cv.txt",
		Format:      domain.FormatTXT,
		Provenance:  domain.ProvenanceHeuristic,
		CV:          domain.NewStructuredCV(),
		Logs:        []string{},
		ProcessedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteResults([]*domain.ProcessingResult{result}))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Equal(t, "heuristic", row[2])
	assert.Empty(t, row[3])
	assert.Empty(t, row[4])
	assert.Equal(t, "0", row[13])
}

func TestWriteResults_NilRecord(t *testing.T) {
	result := &domain.ProcessingResult{
		ID:          uuid.New(),
		Source:      "cv.txt",
		Format:      domain.FormatTXT,
		Provenance:  domain.ProvenanceError,
		ProcessedAt: time.Now().UTC(),
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteResults([]*domain.ProcessingResult{result}))
	w.Flush()

	r := csv.NewReader(&buf)
	row, err := r.Read()
	require.NoError(t, err)

	assert.Len(t, row, 17)
	assert.Equal(t, "error", row[2])
	for i := 5; i <= 15; i++ {
		assert.Empty(t, row[i], "column %d should be empty without a record", i)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "March Intake CVs", "March_Intake_CVs"},
		{"special chars", "2026 intake / batch (Jan–Mar)", "2026_intake_batch_Jan_Mar"},
		{"hyphens and underscores preserved", "my-batch_2026", "my-batch_2026"},
		{"consecutive underscores collapsed", "test___batch", "test_batch"},
		{"leading/trailing cleaned", "  hello  ", "hello"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeFilename(tt.input))
		})
	}
}

func TestBuildFilename(t *testing.T) {
	filename := BuildFilename("March Intake CVs")
	today := time.Now().Format("2006-01-02")
	assert.Equal(t, "March_Intake_CVs_"+today+".csv", filename)
}
