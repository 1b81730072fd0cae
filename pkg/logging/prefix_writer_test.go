package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	testCases := []struct {
		name     string
		writes   []string
		expected string
	}{
		{
			name:     "single line",
			writes:   []string{"hello\n"},
			expected: "🎵 hello\n",
		},
		{
			name:     "multiple lines in one write",
			writes:   []string{"one\ntwo\n"},
			expected: "🎵 one\n🎵 two\n",
		},
		{
			name:     "line split across writes",
			writes:   []string{"par", "tial\n"},
			expected: "🎵 partial\n",
		},
		{
			name:     "trailing partial line stays buffered",
			writes:   []string{"done\nnot yet"},
			expected: "🎵 done\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			pw := NewPrefixWriter("🎵 ", &out)

			for _, w := range tc.writes {
				if _, err := pw.Write([]byte(w)); err != nil {
					t.Fatalf("Write: %v", err)
				}
			}

			if got := out.String(); got != tc.expected {
				t.Errorf("output = %q, want %q", got, tc.expected)
			}
		})
	}
}
