package language

import "unicode"

// Detect returns a coarse ISO 639-1 language code for the text, based on the
// dominant letter script. It is a best-effort cue for mirroring the
// candidate's language in remote prompts and falls back to "en" whenever the
// script is ambiguous or Latin.
func Detect(text string) string {
	counts := map[string]int{}
	letters := 0

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++

		switch {
		case unicode.Is(unicode.Cyrillic, r):
			counts["ru"]++
		case unicode.Is(unicode.Han, r):
			counts["zh"]++
		case unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r):
			counts["ja"]++
		case unicode.Is(unicode.Hangul, r):
			counts["ko"]++
		case unicode.Is(unicode.Arabic, r):
			counts["ar"]++
		case unicode.Is(unicode.Devanagari, r):
			counts["hi"]++
		case unicode.Is(unicode.Greek, r):
			counts["el"]++
		case unicode.Is(unicode.Hebrew, r):
			counts["he"]++
		}
	}

	if letters == 0 {
		return "en"
	}

	best, bestCount := "en", 0
	for code, count := range counts {
		if count > bestCount {
			best, bestCount = code, count
		}
	}

	// Japanese text commonly mixes Han with kana; prefer ja when kana occur.
	if counts["ja"] > 0 && best == "zh" {
		best = "ja"
	}

	if bestCount*2 < letters {
		return "en"
	}

	return best
}
