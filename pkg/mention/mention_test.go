package mention

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"no mentions", "great session today", nil},
		{"single", "nice one @alice", []string{"alice"}},
		{"leading mention", "@alice crushing it", []string{"alice"}},
		{"multiple in order", "@bob and @alice, go!", []string{"bob", "alice"}},
		{"duplicates collapse", "@alice @alice again", []string{"alice"}},
		{"email does not count", "mail me at bob@example.com", nil},
		{"too short skipped", "hi @ab", nil},
		{"underscores and digits", "cc @gym_rat42", []string{"gym_rat42"}},
		{"punctuation delimits", "(@alice) thanks!", []string{"alice"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.text))
		})
	}
}
