package extract

import (
	"bytes"
	"fmt"
)

// systemPromptTemplate instructs the model to emit exactly the Candidate JSON
// shape. Relative dates are resolved against the reference block appended by
// buildSystemPrompt.
const systemPromptTemplate = `You are an assistant that extracts structured calendar event data from natural language text messages.

Respond ONLY with JSON using these keys:
- title (string)
- description (string, optional)
- start (ISO8601 timestamp, e.g. '2025-07-06T14:00:00')
- end (ISO8601 timestamp) OR durationMinutes (integer)

Rules:
1. If no explicit date is mentioned in the message, assume the event is for today.
2. For relative dates ("tomorrow", "tonight"), compute the actual date from the current date/time reference below.
3. If no duration or end time is stated, omit both end and durationMinutes.
4. Do not invent details that are not in the message.`

// buildSystemPrompt appends the current date/time reference to the template.
func buildSystemPrompt(now NowContext) string {
	var prompt bytes.Buffer

	prompt.WriteString(systemPromptTemplate)
	prompt.WriteString("\n\n## Current Date/Time Reference\n\n")
	prompt.WriteString(fmt.Sprintf("Today's date: %s\n", now.Date))
	prompt.WriteString(fmt.Sprintf("Current time: %s\n", now.DateTime))
	prompt.WriteString(fmt.Sprintf("Timezone: %s\n", now.Timezone))

	return prompt.String()
}
