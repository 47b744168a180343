package outline

import "fmt"

const outlineSystemPrompt = `You respond with STRICT valid JSON only when asked. No markdown, no commentary.`

func buildOutlineUserMessage(subject string) string {
	return fmt.Sprintf(`You are generating a weekly study plan outline for the subject: %q.

Return STRICT VALID JSON ONLY (no markdown, no commentary) with this schema:
{
  "subject": string,
  "concepts": string[],
  "practice_tasks": string[]
}

Rules:
- concepts: 12-20 items, ordered from beginner -> advanced, each item short.
- practice_tasks: 12-20 items, each is a concrete task/problem type.
- Avoid URLs.
- Keep each string <= %d characters.`, subject, MaxItemLength)
}
