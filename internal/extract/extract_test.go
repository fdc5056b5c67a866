package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"cvpipe/internal/config"
)

func newTestExtractor() *Extractor {
	return New(&config.AddressConfig{MinScore: 2, RelaxedMinScore: 0, OverlapRatio: 0.7}, zap.NewNop())
}

func TestExtractFullRecord(t *testing.T) {
	text := "Jane Doe\njane@x.com\n555-0100\nSKILLS\n- Python, SQL\nEDUCATION\nSept 2018 - June 2022: BSc CS (MIT)"

	cv := newTestExtractor().Extract(text)

	assert.Equal(t, []string{"jane@x.com"}, cv.ContactInfo.Emails)
	assert.Equal(t, []string{"555-0100"}, cv.ContactInfo.Phones)
	assert.Equal(t, "Jane Doe", cv.ContactInfo.Name)
	assert.Equal(t, []string{"Python", "SQL"}, cv.Skills)

	require.Len(t, cv.Education, 1)
	assert.Equal(t, "Sept 2018 - June 2022", cv.Education[0].DateRange)
	assert.Equal(t, "MIT", cv.Education[0].Institution)
}

func TestExtractAllCapsNameAtTop(t *testing.T) {
	text := "JANE DOE\njane@x.com\nSKILLS\n- Go, Python"

	cv := newTestExtractor().Extract(text)
	assert.Equal(t, "JANE DOE", cv.ContactInfo.Name)
	assert.Equal(t, []string{"Go", "Python"}, cv.Skills)
}

func TestExtractEmptyInput(t *testing.T) {
	cv := newTestExtractor().Extract("")

	assert.NotNil(t, cv.ContactInfo.Emails)
	assert.NotNil(t, cv.Skills)
	assert.NotNil(t, cv.Languages)
	assert.NotNil(t, cv.Education)
	assert.NotNil(t, cv.Experience)
	assert.NotNil(t, cv.Projects)
	assert.NotNil(t, cv.ProfessionalSummary)
}

func TestExtractUnclassifiedDatedSectionBecomesExperience(t *testing.T) {
	text := `MISSIONS
Jan 2020 - Dec 2021: Globex, Consultant`

	cv := newTestExtractor().Extract(text)
	require.Len(t, cv.Experience, 1)
	assert.Equal(t, "Globex", cv.Experience[0].Company)
}

func TestExtractUnclassifiedProseJoinsSummary(t *testing.T) {
	text := `ABOUT THIS CANDIDATE
A seasoned platform engineer who enjoys mentoring junior developers.`

	cv := newTestExtractor().Extract(text)
	assert.Contains(t, cv.ProfessionalSummary, "A seasoned platform engineer who enjoys mentoring junior developers.")
}

func TestExtractDeterministic(t *testing.T) {
	text := "Jane Doe\njane@x.com\nSKILLS\n- Go, Python"
	e := newTestExtractor()
	first := e.Extract(text)
	second := e.Extract(text)
	assert.Equal(t, first, second)
}
