package logger

import "testing"

func TestSanitizeValue(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  interface{}
		want interface{}
	}{
		{name: "api_key_redacted", key: "openai_api_key", val: "sk-123", want: "[REDACTED]"},
		{name: "symptom_text_summarized", key: "symptom_text", val: "wheezing all night", want: "[18 chars]"},
		{name: "description_summarized_by_runes", key: "description", val: "tós", want: "[3 chars]"},
		{name: "plain_value_kept", key: "status", val: 200, want: 200},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeValue(tc.key, tc.val)
			if got != tc.want {
				t.Fatalf("sanitizeValue(%q, %v)=%v, want %v", tc.key, tc.val, got, tc.want)
			}
		})
	}
}

func TestHashValueIsStable(t *testing.T) {
	a := hashValue("client-1")
	b := hashValue("client-1")
	if a != b {
		t.Fatalf("hashValue not stable: %q vs %q", a, b)
	}
	if len(a) != len("hash:")+12 {
		t.Fatalf("unexpected hash length: %q", a)
	}
}
