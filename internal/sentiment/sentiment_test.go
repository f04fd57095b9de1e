package sentiment

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		text string
		want Tone
	}{
		{"plain statement", "I live in Berlin", Neutral},
		{"positive marker", "Great, thanks for the help!", Positive},
		{"negative marker", "I'm frustrated with this form", Negative},
		{"negative phrase", "I don't understand the question", Negative},
		{"negative wins over positive", "Thanks, but I'm confused", Negative},
		{"case insensitive", "AWESOME", Positive},
		{"punctuation stripped", "great!", Positive},
		{"empty", "", Neutral},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.text); got != tc.want {
				t.Fatalf("Classify(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}
