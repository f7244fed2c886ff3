package syllabus

import (
	"fmt"
	"strings"
)

const extractSystemPrompt = `You extract structured schedule data from university course material.

Rules:
- Course names should be the course code followed by the course name when both appear; if several course codes occur, pick the one the document is about.
- Assignment titles should be as descriptive as possible, using words from the syllabus itself.
- Dates are YYYY-MM-DD. If a time is vague or not given, return "N/A".
- Weight is the percentage of the final grade. If it is not stated, use your best judgement based on similarly named items; with no other information return 0.
- The weights of everything should add up to 100 unless bonus marks are mentioned.
- Leave every assignment's difficulty at 0; difficulty is rated in a separate step.
- If the course schedule is not mentioned, return an empty schedule list.
- Omit schedule entries with no allocated time; those classes are asynchronous.`

const assessSystemPrompt = `You rate the difficulty of a single university assignment from its handout text.

Rules:
- Difficulty runs from 1 (very easy) to 10 (very difficult).
- Estimate it from clues in the text: length, instructions, weight, description.
- Shift the rating down for assignments that only require writing.
- Dates are YYYY-MM-DD. If a time is vague or not given, return "N/A".
- Describe exactly one assignment, the one the text is about.`

// buildExtractPrompt wraps course text in the full-syllabus extraction
// instructions.
func buildExtractPrompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract the assignments, tests, and weekly class schedule from the course information below.\n\n")
	b.WriteString("Course Info:\n")
	b.WriteString(strings.TrimSpace(text))
	return b.String()
}

// buildAssessPrompt wraps a single assignment handout in the difficulty
// rating instructions.
func buildAssessPrompt(text string) string {
	return fmt.Sprintf("Rate the following assignment.\n\nAssignment Info:\n%s", strings.TrimSpace(text))
}
