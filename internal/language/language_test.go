package language

import "testing"

func TestDetect(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"english", "Hello, my name is Jane", "en"},
		{"empty", "", "en"},
		{"digits only", "12345", "en"},
		{"russian", "Меня зовут Иван", "ru"},
		{"chinese", "我叫李明", "zh"},
		{"japanese kana", "こんにちは、田中です", "ja"},
		{"korean", "안녕하세요", "ko"},
		{"arabic", "مرحبا اسمي أحمد", "ar"},
		{"mostly latin with one cyrillic char", "Hello there привет friend how are you doing", "en"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Detect(tc.text); got != tc.want {
				t.Fatalf("Detect(%q) = %s, want %s", tc.text, got, tc.want)
			}
		})
	}
}
