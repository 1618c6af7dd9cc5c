package matcher

import "fmt"

const systemPrompt = `You are a medical expert in standardizing symptom descriptions to CTCAE terminology.`

const matchPromptTemplate = `Please analyze the following patient symptom:

Patient symptom: %s
Additional details: %s

Based on the following CTCAE reference information:

%s

Instructions:
1. Identify the most appropriate CTCAE term
2. Determine the appropriate grade (1-5)
3. Provide rationale for your selection

Return your response in this JSON format:
{
  "ctcae_term": "The matched CTCAE term",
  "grade": "The grade as a number (1-5)",
  "grade_description": "The official description for this grade",
  "meddra_soc": "The MedDRA system organ class",
  "confidence": "high/medium/low",
  "rationale": "Your explanation"
}`

// buildMatchPrompt renders the fixed instruction template. Only the symptom,
// details, and retrieved context vary between requests.
func buildMatchPrompt(symptom, details, evidence string) string {
	return fmt.Sprintf(matchPromptTemplate, symptom, details, evidence)
}
