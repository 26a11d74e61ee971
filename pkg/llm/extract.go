package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// repair is one rung of the extraction ladder: it rewrites the candidate
// string, or reports false when it does not apply.
type repair func(s string) (string, bool)

var repairs = []repair{
	identity,
	braceSpan,
	stripTrailingCommas,
	singleToDoubleQuotes,
}

// ExtractJSON recovers a JSON object from an arbitrary model response.
// Code fences and typographic quotes are stripped up front, then repairs are
// tried in order from cheapest to riskiest, stopping at the first parse.
// Returns nil when no rung yields a valid object.
func ExtractJSON(raw string) map[string]interface{} {
	s := normalize(raw)
	for _, r := range repairs {
		candidate, ok := r(s)
		if !ok {
			continue
		}
		if obj := tryParse(candidate); obj != nil {
			return obj
		}
		// Later rungs build on the repaired candidate, not the original.
		s = candidate
	}
	return nil
}

func tryParse(s string) map[string]interface{} {
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(s), &obj); err != nil {
		return nil
	}
	return obj
}

var smartQuotes = strings.NewReplacer(
	"“", `"`,
	"”", `"`,
	"‘", "'",
	"’", "'",
)

func normalize(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)
	return smartQuotes.Replace(s)
}

func identity(s string) (string, bool) {
	return s, true
}

// braceSpan cuts the substring from the first '{' to the last '}', dropping
// prose the model wrapped around the object.
func braceSpan(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

var trailingComma = regexp.MustCompile(`,\s*([}\]])`)

func stripTrailingCommas(s string) (string, bool) {
	out := trailingComma.ReplaceAllString(s, "$1")
	if out == s {
		return "", false
	}
	return out, true
}

// singleToDoubleQuotes is the riskiest rung: it can corrupt apostrophes
// inside values, so it only fires when the candidate contains no double
// quotes at all.
func singleToDoubleQuotes(s string) (string, bool) {
	if strings.Contains(s, `"`) || !strings.Contains(s, "'") {
		return "", false
	}
	return strings.ReplaceAll(s, "'", `"`), true
}
