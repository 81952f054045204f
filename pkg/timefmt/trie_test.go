package timefmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrieLongestMatch(t *testing.T) {
	trie := NewTrie([]Entry{
		{Token: "HH", Directive: "%I"},
		{Token: "HH12", Directive: "%I"},
		{Token: "HH24", Directive: "%H"},
		{Token: "MI", Directive: "%M"},
	})

	tests := []struct {
		name          string
		input         string
		pos           int
		wantDirective string
		wantLength    int
	}{
		{"longest token", "HH24", 0, "%H", 4},
		{"falls back to shorter token", "HH2X", 0, "%I", 2},
		{"exact short token", "HH", 0, "%I", 2},
		{"match mid-string", "xxMI", 2, "%M", 2},
		{"no match", "ZZ", 0, "", 0},
		{"pos at end", "HH", 2, "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directive, length := trie.longestMatch(tt.input, tt.pos)
			assert.Equal(t, tt.wantDirective, directive)
			assert.Equal(t, tt.wantLength, length)
		})
	}
}

func TestTrieEmptyEntries(t *testing.T) {
	trie := NewTrie(nil)
	_, length := trie.longestMatch("anything", 0)
	assert.Equal(t, 0, length)
}
