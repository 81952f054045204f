package timefmt

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnmappedDirective is returned by Encode when the target table has no
// token for a canonical directive. Callers must treat it as a coverage bug
// in the target table, not as bad input: silently dropping a date/time
// directive would corrupt the format.
var ErrUnmappedDirective = errors.New("timefmt: no target mapping for directive")

// ElementKind distinguishes the two kinds of format elements.
type ElementKind int

const (
	// KindDirective is a canonical format directive such as %Y.
	KindDirective ElementKind = iota
	// KindLiteral is a verbatim fragment such as "-" or ":".
	KindLiteral
)

// Element is one piece of a decoded format: either a canonical directive
// or an opaque literal fragment. Adjacent literal bytes are coalesced.
type Element struct {
	Kind  ElementKind
	Value string
}

// Format is an ordered, dialect-neutral format representation.
// Order is significant and preserved through decode and encode.
type Format []Element

// String renders the canonical form (directives and literals concatenated).
// Useful for debugging and for dialects whose native vocabulary is the
// canonical one.
func (f Format) String() string {
	var b strings.Builder
	for _, e := range f {
		b.WriteString(e.Value)
	}
	return b.String()
}

// Decode turns a dialect-native format string into its canonical form
// using greedy longest-prefix matching over the source table's tokens.
// Decode is total: bytes that start no token become literal fragments,
// so any input decodes to something.
func Decode(s string, source *DirectiveTable) Format {
	trie := source.Trie()

	var out Format
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			out = append(out, Element{Kind: KindLiteral, Value: literal.String()})
			literal.Reset()
		}
	}

	for i := 0; i < len(s); {
		directive, length := trie.longestMatch(s, i)
		if length == 0 {
			literal.WriteByte(s[i])
			i++
			continue
		}
		flush()
		out = append(out, Element{Kind: KindDirective, Value: directive})
		i += length
	}
	flush()
	return out
}

// Encode renders a canonical format in the target table's vocabulary.
// Literal fragments pass through verbatim. A directive with no forward
// mapping in the target table yields ErrUnmappedDirective.
func Encode(f Format, target *DirectiveTable) (string, error) {
	var b strings.Builder
	for _, e := range f {
		switch e.Kind {
		case KindLiteral:
			b.WriteString(e.Value)
		case KindDirective:
			tok, ok := target.Forward(e.Value)
			if !ok {
				return "", fmt.Errorf("%w: %q", ErrUnmappedDirective, e.Value)
			}
			b.WriteString(tok)
		}
	}
	return b.String(), nil
}

// Transcode decodes a format string from the source vocabulary and
// re-encodes it in the target vocabulary in one step.
func Transcode(s string, source, target *DirectiveTable) (string, error) {
	return Encode(Decode(s, source), target)
}
