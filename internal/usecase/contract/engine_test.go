package contract

import (
	"testing"
	"time"

	"github.com/draftforge/contract-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `
<h1>Terms of Service</h1>
<h2>1. Introduction</h2>
<p>These terms govern use of the service.</p>
<h2>2. User Accounts</h2>
<p>Accounts are personal.</p>
<h3>2.1 Registration</h3>
<p>Provide accurate information.</p>
<h3>2.2 Termination</h3>
<p>We may suspend accounts.</p>
<h2>3. Governing Law</h2>
<p>Laws of the applicable jurisdiction apply.</p>
`

func TestParseSections(t *testing.T) {
	sections := ParseSections(sampleDocument)
	require.Len(t, sections, 5)

	assert.Equal(t, "Introduction", sections[0].Title)
	assert.Equal(t, 1, sections[0].SectionNumber)
	assert.Nil(t, sections[0].SubsectionNumber)
	assert.Equal(t, "These terms govern use of the service.", sections[0].Content)

	assert.Equal(t, "User Accounts", sections[1].Title)
	assert.Equal(t, 2, sections[1].SectionNumber)

	require.NotNil(t, sections[2].SubsectionNumber)
	assert.Equal(t, "Registration", sections[2].Title)
	assert.Equal(t, 2, sections[2].SectionNumber)
	assert.Equal(t, 1, *sections[2].SubsectionNumber)

	require.NotNil(t, sections[3].SubsectionNumber)
	assert.Equal(t, 2, *sections[3].SubsectionNumber)

	assert.Equal(t, "Governing Law", sections[4].Title)
	assert.Equal(t, 3, sections[4].SectionNumber)
}

func TestParseSectionsUnnumberedHeadings(t *testing.T) {
	sections := ParseSections(`
<h2>Introduction</h2><p>First.</p>
<h2>Definitions</h2><p>Second.</p>
<h3>Key Terms</h3><p>Nested.</p>
`)
	require.Len(t, sections, 3)

	assert.Equal(t, 1, sections[0].SectionNumber)
	assert.Equal(t, 2, sections[1].SectionNumber)

	require.NotNil(t, sections[2].SubsectionNumber)
	assert.Equal(t, 2, sections[2].SectionNumber)
	assert.Equal(t, 1, *sections[2].SubsectionNumber)
}

func TestParseSectionsHeadingNumbersWin(t *testing.T) {
	sections := ParseSections(`<h2>7. Indemnification</h2><p>Body.</p><h2>Next</h2><p>More.</p>`)
	require.Len(t, sections, 2)

	assert.Equal(t, 7, sections[0].SectionNumber)
	assert.Equal(t, "Indemnification", sections[0].Title)
	// Positional counting continues from the explicit number
	assert.Equal(t, 8, sections[1].SectionNumber)
}

func TestParseSectionsEmptyInput(t *testing.T) {
	assert.Empty(t, ParseSections(""))
	assert.Empty(t, ParseSections("<p>no headings at all</p>"))
}

func TestEstimatePages(t *testing.T) {
	assert.Equal(t, 1, EstimatePages(nil))
	assert.Equal(t, 1, EstimatePages([]entity.ContractSection{{Title: "Short", Content: "tiny"}}))

	long := make([]entity.ContractSection, 0, 10)
	content := ""
	for i := 0; i < 500; i++ {
		content += "word "
	}
	for i := 0; i < 10; i++ {
		long = append(long, entity.ContractSection{Title: "Section", Content: content})
	}
	// 10 sections x ~501 words
	assert.Equal(t, 11, EstimatePages(long))
}

func TestRenderHTML(t *testing.T) {
	out := RenderHTML(entity.ContractTypeTermsOfService, "en", "<h2>1. Introduction</h2>", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>Terms of Service</title>")
	assert.Contains(t, out, "June 1, 2025")
	assert.Contains(t, out, "<h2>1. Introduction</h2>")
}
