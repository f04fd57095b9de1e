package extract

import (
	"strings"
	"unicode"

	"github.com/talentscout/hiring-assistant/internal/profile"
)

// vocabulary lists the technology keywords the intake recognizes. Matching is
// case-insensitive and substring-based, so "node.js" resolves to "node" and
// "postgresql 15" to "postgresql". Longer keys are checked first to keep
// "javascript" from resolving to "java".
var vocabulary = []string{
	"postgresql", "machine learning", "javascript", "typescript", "tensorflow",
	"kubernetes", "mongodb", "pytorch", "angular", "laravel", "grafana",
	"graphql", "jenkins", "ansible", "fastapi", "spring", "django", "docker",
	"python", "pandas", "kotlin", "golang", "nodejs", "mysql", "redis", "kafka",
	"flask", "react", "swift", "scala", "linux", "numpy", "rails", "azure",
	"java", "ruby", "rust", "node", "vue", "aws", "gcp", "php", "sql", "git",
	"go", "ml",
}

// aliases map common shorthand to a canonical vocabulary entry.
var aliases = map[string]string{
	"js":       "javascript",
	"ts":       "typescript",
	"py":       "python",
	"golang":   "go",
	"node":     "nodejs",
	"node.js":  "nodejs",
	"postgres": "postgresql",
	"k8s":      "kubernetes",
	"mongo":    "mongodb",
	"tf":       "tensorflow",
	"ml":       "machine learning",
	"reactjs":  "react",
	"vuejs":    "vue",
}

type techStackRule struct{}

func (r *techStackRule) Field() profile.Field { return profile.FieldTechStack }

// Extract splits the text on common delimiters, resolves known technologies
// through the vocabulary and alias table, and keeps unknown tokens as
// free-form entries so candidate input is never silently dropped.
func (r *techStackRule) Extract(text string) (profile.Value, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrUnrecognized
	}

	var stack profile.Stack
	seen := make(map[string]bool)
	add := func(entry string) {
		if entry == "" || seen[entry] {
			return
		}
		seen[entry] = true
		stack = append(stack, entry)
	}

	for _, fragment := range splitFragments(trimmed) {
		if canonical, ok := resolve(fragment); ok {
			add(canonical)
			continue
		}

		// A multi-word fragment may be a bare list like "Python Django SQL".
		words := strings.Fields(fragment)
		resolved := 0
		for _, word := range words {
			if _, ok := resolve(word); ok {
				resolved++
			}
		}

		if len(words) > 1 && resolved > 0 {
			for _, word := range words {
				if canonical, ok := resolve(word); ok {
					add(canonical)
				} else if word = strings.ToLower(strings.Trim(word, ".,!?:;")); word != "" && !isNumeric(word) {
					add(word)
				}
			}
			continue
		}

		if lower := strings.ToLower(fragment); !isNumeric(lower) {
			add(lower)
		}
	}

	if len(stack) == 0 {
		return nil, ErrUnrecognized
	}

	return stack, nil
}

// splitFragments breaks the text on commas, slashes, semicolons and the word
// "and", returning trimmed non-empty fragments in declaration order.
func splitFragments(text string) []string {
	normalized := strings.NewReplacer("/", ",", ";", ",", "&", ",").Replace(text)
	normalized = andPatternReplace(normalized)

	var fragments []string
	for _, part := range strings.Split(normalized, ",") {
		part = strings.TrimSpace(part)
		part = strings.Trim(part, ".")
		if part != "" {
			fragments = append(fragments, part)
		}
	}
	return fragments
}

func andPatternReplace(text string) string {
	fields := strings.Fields(text)
	for i, field := range fields {
		if strings.EqualFold(field, "and") {
			fields[i] = ","
		}
	}
	return strings.Join(fields, " ")
}

// resolve maps a single token to its canonical technology name. Unknown or
// purely numeric tokens do not resolve.
func resolve(token string) (string, bool) {
	token = strings.ToLower(strings.Trim(token, " .,!?:;"))
	if token == "" || isNumeric(token) {
		return "", false
	}

	if canonical, ok := aliases[token]; ok {
		return canonical, true
	}

	for _, keyword := range vocabulary {
		if token == keyword {
			return canonicalName(keyword), true
		}
	}

	// Substring match only for single-word tokens long enough to carry the
	// keyword, so a two-letter token cannot claim a short key by accident and
	// a multi-word fragment is never swallowed by one of its words.
	for _, keyword := range vocabulary {
		if !strings.Contains(token, " ") && len(keyword) >= 3 && strings.Contains(token, keyword) {
			return canonicalName(keyword), true
		}
	}

	return "", false
}

func canonicalName(keyword string) string {
	if canonical, ok := aliases[keyword]; ok {
		return canonical
	}
	return keyword
}

func isNumeric(token string) bool {
	for _, ch := range token {
		if !unicode.IsDigit(ch) && ch != '.' {
			return false
		}
	}
	return true
}
