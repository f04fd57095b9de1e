package sentiment

import "strings"

// Tone is the rule-based sentiment cue attached to a user turn. It is
// advisory metadata only and never alters dialogue control flow.
type Tone string

const (
	Positive Tone = "positive"
	Neutral  Tone = "neutral"
	Negative Tone = "negative"
)

var positiveMarkers = map[string]bool{
	"great": true, "awesome": true, "good": true, "nice": true, "cool": true,
	"happy": true, "pleased": true, "delighted": true, "excellent": true,
	"wonderful": true, "love": true, "thanks": true, "thank": true,
	"perfect": true, "helpful": true,
}

var negativeMarkers = map[string]bool{
	"bad": true, "sad": true, "upset": true, "angry": true, "frustrated": true,
	"frustrating": true, "terrible": true, "poor": true, "hate": true,
	"sorry": true, "issue": true, "problem": true, "confused": true,
	"confusing": true, "annoying": true,
}

// Phrases that mark a struggling candidate even without a single marker word.
var negativePhrases = []string{
	"don't understand", "dont understand", "do not understand", "not sure what",
}

// Classify scans the text for curated sentiment markers. Negative wins over
// positive when both are present: a confused candidate needs support first.
func Classify(text string) Tone {
	lower := strings.ToLower(text)

	negative := false
	for _, phrase := range negativePhrases {
		if strings.Contains(lower, phrase) {
			negative = true
			break
		}
	}

	positive := false
	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, ".,!?;:'\"")
		if negativeMarkers[token] {
			negative = true
		}
		if positiveMarkers[token] {
			positive = true
		}
	}

	switch {
	case negative:
		return Negative
	case positive:
		return Positive
	default:
		return Neutral
	}
}
