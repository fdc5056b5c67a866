package segment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpipe/internal/domain"
)

func TestSplitBasicResume(t *testing.T) {
	text := `Jane Doe
Software Engineer
jane.doe@example.com

SKILLS
Go, Python, Kubernetes

EXPERIENCE
Jan 2020 - Dec 2023
Acme Corp, Senior Engineer

EDUCATION
2014 - 2017
MIT (Cambridge, MA)`

	sections := Split(text)
	require.Len(t, sections, 4)

	assert.Equal(t, domain.CategoryHeader, sections[0].Category)
	assert.Equal(t, []string{"Jane Doe", "Software Engineer", "jane.doe@example.com"}, sections[0].Lines)

	assert.Equal(t, domain.CategorySkills, sections[1].Category)
	assert.Equal(t, "SKILLS", sections[1].Heading)
	assert.Equal(t, []string{"Go, Python, Kubernetes"}, sections[1].Lines)

	assert.Equal(t, domain.CategoryExperience, sections[2].Category)
	assert.Equal(t, domain.CategoryEducation, sections[3].Category)
}

func TestSplitFrenchHeadings(t *testing.T) {
	text := `COMPÉTENCES TECHNIQUES
Go, Rust

EXPÉRIENCE PROFESSIONNELLE
Janvier 2020 - PRÉSENT

FORMATION
2015 - 2018

LANGUES
Français : natif`

	sections := Split(text)
	require.Len(t, sections, 4)
	assert.Equal(t, domain.CategorySkills, sections[0].Category)
	assert.Equal(t, domain.CategoryExperience, sections[1].Category)
	assert.Equal(t, domain.CategoryEducation, sections[2].Category)
	assert.Equal(t, domain.CategoryLanguages, sections[3].Category)
}

func TestSplitHeadingLinesAreConsumed(t *testing.T) {
	sections := Split("SKILLS\nGo")
	require.Len(t, sections, 1)
	assert.Equal(t, "SKILLS", sections[0].Heading)
	assert.NotContains(t, sections[0].Lines, "SKILLS")
}

func TestSplitSeparatorsDropped(t *testing.T) {
	sections := Split("SKILLS\n----------\nGo\n==========\nPython")
	require.Len(t, sections, 1)
	assert.Equal(t, []string{"Go", "Python"}, sections[0].Lines)
}

func TestSplitUnknownHeadingIsUnclassified(t *testing.T) {
	sections := Split("CERTIFICATIONS\nAWS Solutions Architect")
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategoryUnclassified, sections[0].Category)
	assert.Equal(t, "CERTIFICATIONS", sections[0].Heading)
	assert.Equal(t, []string{"AWS Solutions Architect"}, sections[0].Lines)
}

func TestSplitNameIsNotHeading(t *testing.T) {
	sections := Split("Jane Doe\nEngineer")
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategoryHeader, sections[0].Category)
	assert.Equal(t, []string{"Jane Doe", "Engineer"}, sections[0].Lines)
}

func TestSplitKeywordPrefixedProseStaysContent(t *testing.T) {
	text := `SUMMARY
Experience with AWS and GCP.
Builds reliable data platforms for banks.`

	sections := Split(text)
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategorySummary, sections[0].Category)
	assert.Equal(t, []string{
		"Experience with AWS and GCP.",
		"Builds reliable data platforms for banks.",
	}, sections[0].Lines)
}

func TestSplitLowercaseKeywordProseStaysContent(t *testing.T) {
	sections := Split("PROFILE\nexperience in java development pays well")
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategorySummary, sections[0].Category)
	assert.Equal(t, []string{"experience in java development pays well"}, sections[0].Lines)
}

func TestSplitKeywordPrefixedHeading(t *testing.T) {
	sections := Split("SKILLS & TOOLS\nGo, Terraform")
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategorySkills, sections[0].Category)
	assert.Equal(t, "SKILLS & TOOLS", sections[0].Heading)
}

func TestSplitLongVocabularyHeading(t *testing.T) {
	sections := Split("EXPERIENCE AT INTERNATIONAL BANKS AND INSURANCE GROUPS\nAcme Corp")
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategoryExperience, sections[0].Category)
}

func TestSplitAllCapsNameStaysInHeader(t *testing.T) {
	text := `JANE DOE
jane@example.com

SKILLS
Go`

	sections := Split(text)
	require.Len(t, sections, 2)
	assert.Equal(t, domain.CategoryHeader, sections[0].Category)
	assert.Equal(t, []string{"JANE DOE", "jane@example.com"}, sections[0].Lines)
}

func TestSplitAllCapsLineAfterHeaderIsHeading(t *testing.T) {
	sections := Split("SKILLS\nGo\nJOHN SMITH\nChess engine")
	require.Len(t, sections, 2)
	assert.Equal(t, domain.CategoryUnclassified, sections[1].Category)
	assert.Equal(t, "JOHN SMITH", sections[1].Heading)
}

func TestSplitHeadingWithColonSuffix(t *testing.T) {
	sections := Split("Skills:\nGo, Python")
	require.Len(t, sections, 1)
	assert.Equal(t, domain.CategorySkills, sections[0].Category)
}

func TestSplitEmptyInput(t *testing.T) {
	assert.Empty(t, Split(""))
}

func TestByCategoryMergesRepeatedSections(t *testing.T) {
	text := `SKILLS
Go

EXPERIENCE
Acme Corp

SKILLS
Python`
	sections := Split(text)
	assert.Equal(t, []string{"Go", "Python"}, ByCategory(sections, domain.CategorySkills))
	assert.Nil(t, ByCategory(sections, domain.CategoryLanguages))
}
