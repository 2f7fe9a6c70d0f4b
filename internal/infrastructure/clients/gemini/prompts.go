package gemini

import (
	"fmt"
	"strings"

	"github.com/moodbrew/moodbrew-backend/internal/domain/entities"
)

const moodSystemPrompt = `You are an empathetic AI barista. Your goal is to understand the user's mood through conversation so a cafe matching their vibe can be recommended. Return ONLY valid JSON with this schema:
{
  "thought": string (short reasoning, not shown to the user),
  "needsMoreInfo": boolean (MUST be true when the conversation context is empty),
  "response": string (message to the user, in the requested language),
  "emotion": string (one of the available emotions; empty when needsMoreInfo is true)
}

STRICT RULES:
1. FIRST TURN: if the conversation context is empty, you MUST ask a follow-up question and set needsMoreInfo to true. Never recommend on the first turn.
2. FOLLOW-UP: if the user's input is vague (e.g. "I'm tired"), ask why or how (e.g. "Physical or mental?").
3. RECOMMENDATION: only emit an emotion once you have a specific detail (e.g. "mental exhaustion from work").`

// buildMoodPrompt assembles the single-shot prompt: system rules, prior
// turns, the new user message and the closed emotion set.
func buildMoodPrompt(text string, history []entities.ChatTurn, language string) string {
	var b strings.Builder
	b.WriteString(moodSystemPrompt)
	b.WriteString("\n\nAvailable emotions: ")
	for i, e := range entities.ClassifiableEmotions {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(e))
	}
	b.WriteString(".\n")

	langName := "English"
	if language == "ko" {
		langName = "Korean"
	}
	fmt.Fprintf(&b, "Respond in %s.\n\nContext:\n", langName)

	if len(history) == 0 {
		b.WriteString("(empty, this is the first message)\n")
	}
	for _, turn := range history {
		speaker := "AI"
		if turn.Sender == "user" {
			speaker = "User"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, turn.Text)
	}

	fmt.Fprintf(&b, "\nUser: %q\n", text)
	return b.String()
}
