// Package timefmt transcodes date/time format strings between SQL dialects.
//
// Each dialect carries a DirectiveTable mapping its native format tokens
// (YYYY, HH24, %i, ...) to canonical strftime-style directives (%Y, %H, %M).
// Decode turns a dialect format string into the canonical representation;
// Encode renders a canonical representation in a target dialect's vocabulary.
// Source and target tables are always distinct parameters: a table's tokens
// may share a canonical directive (RR and YY both mean two-digit year), so
// encoding must never be routed back through the vocabulary that produced
// the canonical form.
package timefmt

import (
	"fmt"
	"sync"
)

// Entry associates one dialect format token with a canonical directive.
type Entry struct {
	Token     string // dialect-native token, e.g. "HH24"
	Directive string // canonical directive, e.g. "%H"
}

// DirectiveTable is an ordered, immutable mapping between dialect format
// tokens and canonical directives. It is queryable in both directions:
// the reverse direction (token -> directive) seeds the decode trie, the
// forward direction (directive -> token) drives encoding.
type DirectiveTable struct {
	entries []Entry
	forward map[string]string // directive -> token; later entries win
	reverse map[string]string // token -> directive

	trieOnce sync.Once
	trie     *Trie
}

// NewDirectiveTable constructs a validated table from entries.
// The same token registered twice with conflicting directives is a data
// error in the dialect definition and panics immediately, before any
// decode or encode can run. Registering multiple tokens for one directive
// is allowed; the last registration wins the forward lookup, so aliases
// (RR for YY, HH for HH12) should be listed before the preferred token.
func NewDirectiveTable(entries ...Entry) *DirectiveTable {
	t := &DirectiveTable{
		entries: entries,
		forward: make(map[string]string, len(entries)),
		reverse: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		if e.Token == "" || e.Directive == "" {
			panic(fmt.Sprintf("timefmt: empty entry %q -> %q", e.Token, e.Directive))
		}
		if prev, ok := t.reverse[e.Token]; ok && prev != e.Directive {
			panic(fmt.Sprintf("timefmt: token %q mapped to both %q and %q", e.Token, prev, e.Directive))
		}
		t.reverse[e.Token] = e.Directive
		t.forward[e.Directive] = e.Token
	}
	return t
}

// Forward returns the dialect token for a canonical directive.
func (t *DirectiveTable) Forward(directive string) (string, bool) {
	tok, ok := t.forward[directive]
	return tok, ok
}

// Reverse returns the canonical directive for a dialect token.
func (t *DirectiveTable) Reverse(token string) (string, bool) {
	d, ok := t.reverse[token]
	return d, ok
}

// Entries returns the table's entries in registration order.
func (t *DirectiveTable) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of registered tokens.
func (t *DirectiveTable) Len() int {
	return len(t.reverse)
}

// Trie returns the longest-match index over the table's tokens.
// Built lazily exactly once; safe for concurrent use afterwards.
func (t *DirectiveTable) Trie() *Trie {
	t.trieOnce.Do(func() {
		t.trie = NewTrie(t.entries)
	})
	return t.trie
}

// CheckCoverage verifies that this table can encode every canonical
// directive the source table can produce. A gap means a format decoded
// from source would be silently lossy when rendered here, which is a
// table-definition bug, not a runtime condition.
func (t *DirectiveTable) CheckCoverage(source *DirectiveTable) error {
	for _, e := range source.entries {
		if _, ok := t.forward[e.Directive]; !ok {
			return fmt.Errorf("%w: %q (produced by source token %q)", ErrUnmappedDirective, e.Directive, e.Token)
		}
	}
	return nil
}
