package llm

import "strings"

// SystemPrompt reinforces strict-JSON-only output on every completion call.
const SystemPrompt = `You are a financial sentiment analyst. You respond with a single strict JSON object and nothing else: no markdown, no code fences, no prose before or after the JSON.`

const promptInstructions = `Analyze the market sentiment of the following text.

Respond with ONLY a single strict JSON object with exactly these keys:
{
  "label": "one of: VeryBearish, Bearish, Neutral, Bullish, VeryBullish",
  "score": "number between -1 (very bearish) and 1 (very bullish)",
  "summary": "one or two sentence summary of the sentiment",
  "tickers": {"SYMBOL": {"score": -1 to 1, "explanation": "why"}}
}

Include in "tickers" every stock ticker the text takes a view on. Use an
empty object when none are mentioned. Do not write anything outside the
JSON object.

Text:
`

// BuildPrompt renders the oracle request for a raw text. The text is trimmed
// and truncated to maxChars from the start, with no boundary detection.
// Identical (text, maxChars) always yields an identical prompt.
func BuildPrompt(text string, maxChars int) string {
	t := strings.TrimSpace(text)
	if maxChars > 0 && len(t) > maxChars {
		t = t[:maxChars]
	}
	return promptInstructions + t
}
