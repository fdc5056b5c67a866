package provider

import (
	"fmt"
	"strings"
)

const structuringTemplate = `You are an expert CV parser. Your task is to extract and structure EVERY SINGLE piece of information from the CV text below into a JSON format. NOTHING should be omitted, summarized, or discarded.

CRITICAL REQUIREMENTS:
- Extract 100%% of the content including every detail and every date
- If content doesn't fit perfectly into a category, still include it in the most appropriate section
- Preserve exact wording, dates, names, and all details
- Extract the candidate's name and include it in contact_info

STRUCTURE THE CONTENT INTO THESE SECTIONS:

1. contact_info:
   - emails: [array of all email addresses found]
   - phones: [array of all phone numbers found]
   - linkedin: [LinkedIn URL if present]
   - address: [full address if present]
   - name: [candidate's full name]

2. professional_summary: [array of all summary/profile text]

3. skills: [array of ALL skills, technologies, tools, competencies mentioned]

4. languages: [array of objects with "language" and "level"]

5. education: [array of entries with date_range, degree, institution and a details array]

6. experience: [array of entries with date_range, company, role and a details array]

7. projects: [array of objects with "title" and "description"]

FORMAT REQUIREMENTS:
- For contact_info: {"emails": ["email1"], "phones": ["phone1"], "linkedin": "url", "address": "address", "name": "Full Name"}
- For languages: [{"language": "Language Name", "level": "Proficiency Level"}]
- Include ALL details in the "details" arrays, don't summarize
- Return ONLY valid JSON, no explanations

CV Text to parse:
%s

Extract and structure ALL content into JSON:`

const (
	payloadOpen  = "CV Text to parse:\n"
	payloadClose = "\n\nExtract and structure ALL content into JSON:"
)

// BuildStructuringPrompt renders the structuring instruction for a raw
// résumé text. The schema description mirrors the StructuredCV wire
// format exactly.
func BuildStructuringPrompt(rawText string) string {
	return fmt.Sprintf(structuringTemplate, rawText)
}

// PromptPayload recovers the raw résumé text embedded in a structuring
// prompt. Input that is not a structuring prompt is returned whole.
func PromptPayload(prompt string) string {
	start := strings.Index(prompt, payloadOpen)
	if start < 0 {
		return prompt
	}
	start += len(payloadOpen)
	end := strings.LastIndex(prompt, payloadClose)
	if end < start {
		return prompt[start:]
	}
	return prompt[start:end]
}
