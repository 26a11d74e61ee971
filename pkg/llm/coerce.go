package llm

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/katherinemll/MoodRingMarkets/internal/model"
)

// labelSynonyms maps normalized label strings (lower-cased, whitespace and
// underscores stripped) to canonical buckets. Unknown strings resolve to no
// label and fall through to score-based inference.
var labelSynonyms = map[string]model.Label{
	"verybearish":  model.VeryBearish,
	"verynegative": model.VeryBearish,
	"strongsell":   model.VeryBearish,
	"bearish":      model.Bearish,
	"negative":     model.Bearish,
	"downbeat":     model.Bearish,
	"sell":         model.Bearish,
	"neutral":      model.Neutral,
	"mixed":        model.Neutral,
	"balanced":     model.Neutral,
	"hold":         model.Neutral,
	"bullish":      model.Bullish,
	"positive":     model.Bullish,
	"upbeat":       model.Bullish,
	"buy":          model.Bullish,
	"verybullish":  model.VeryBullish,
	"verypositive": model.VeryBullish,
	"strongbuy":    model.VeryBullish,
}

var tickerShape = regexp.MustCompile(`^[A-Z0-9]{1,6}$`)

// Coerce maps a loosely-typed parsed object onto the strict SentimentRecord
// schema. It returns nil unless both a label (direct or inferred from score)
// and a numeric, non-NaN score are resolved; that is the single hard gate
// for validity.
func Coerce(obj map[string]interface{}) *model.SentimentRecord {
	if obj == nil {
		return nil
	}

	score, scoreOK := coerceScore(obj["score"])
	label, labelOK := coerceLabel(obj["label"])

	if !labelOK && scoreOK {
		label = labelForScore(score)
		labelOK = true
	}
	if !labelOK || !scoreOK {
		return nil
	}

	return &model.SentimentRecord{
		Label:   label,
		Score:   score,
		Summary: coerceSummary(obj),
		Tickers: coerceTickers(obj["tickers"]),
	}
}

func coerceLabel(v interface{}) (model.Label, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	key := strings.ToLower(s)
	key = strings.ReplaceAll(key, "_", "")
	key = strings.Join(strings.Fields(key), "")
	label, ok := labelSynonyms[key]
	return label, ok
}

// coerceScore accepts numeric or numeric-string input. A "%"-suffixed string
// is divided by 100 and clamped to [-1, 1]. A bare magnitude in (1, 100] is
// treated as a percentage the model forgot to scale (e.g. "75" meaning 0.75).
// Anything else passes through unclamped.
func coerceScore(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return rescale(t), true
	case string:
		s := strings.TrimSpace(t)
		if pct, ok := strings.CutSuffix(s, "%"); ok {
			n, err := strconv.ParseFloat(strings.TrimSpace(pct), 64)
			if err != nil || math.IsNaN(n) {
				return 0, false
			}
			return clamp(n/100, -1, 1), true
		}
		n, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(n) {
			return 0, false
		}
		return rescale(n), true
	default:
		return 0, false
	}
}

func rescale(n float64) float64 {
	if math.Abs(n) > 1 && math.Abs(n) <= 100 {
		return n / 100
	}
	return n
}

func clamp(n, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, n))
}

// labelForScore derives a bucket from the score using fixed half-open
// intervals: -0.6 exactly is VeryBearish, -0.2 exactly is Bearish, 0.2
// exactly is Neutral, 0.6 exactly is VeryBullish.
func labelForScore(score float64) model.Label {
	switch {
	case score <= -0.6:
		return model.VeryBearish
	case score <= -0.2:
		return model.Bearish
	case score <= 0.2:
		return model.Neutral
	case score < 0.6:
		return model.Bullish
	default:
		return model.VeryBullish
	}
}

func coerceSummary(obj map[string]interface{}) string {
	for _, key := range []string{"summary", "reason", "explanation"} {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// coerceTickers accepts either a mapping of symbol -> {score, explanation}
// or an array of {ticker|symbol|code, score, explanation} entries. Entries
// failing the symbol-shape filter or lacking a parseable score are dropped;
// partial ticker extraction is expected and not an error.
func coerceTickers(v interface{}) map[string]model.TickerSentiment {
	out := map[string]model.TickerSentiment{}

	switch t := v.(type) {
	case map[string]interface{}:
		for key, raw := range t {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			addTicker(out, key, entry)
		}
	case []interface{}:
		for _, raw := range t {
			entry, ok := raw.(map[string]interface{})
			if !ok {
				continue
			}
			key, ok := tickerKey(entry)
			if !ok {
				continue
			}
			addTicker(out, key, entry)
		}
	}

	return out
}

func tickerKey(entry map[string]interface{}) (string, bool) {
	for _, field := range []string{"ticker", "symbol", "code"} {
		if s, ok := entry[field].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

func addTicker(out map[string]model.TickerSentiment, key string, entry map[string]interface{}) {
	symbol := strings.ToUpper(strings.TrimSpace(key))
	if !tickerShape.MatchString(symbol) {
		return
	}
	score, ok := coerceScore(entry["score"])
	if !ok {
		return
	}
	explanation, _ := entry["explanation"].(string)
	out[symbol] = model.TickerSentiment{Score: score, Explanation: explanation}
}
