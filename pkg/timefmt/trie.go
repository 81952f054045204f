package timefmt

// Trie is a byte-wise prefix index over a table's dialect tokens, used for
// greedy longest-match decoding. Read-only after construction, so a single
// instance can serve any number of concurrent Decode calls.
type Trie struct {
	root *trieNode
}

type trieNode struct {
	children  map[byte]*trieNode
	directive string // canonical directive if terminal
	terminal  bool
}

// NewTrie builds a trie from directive-table entries.
func NewTrie(entries []Entry) *Trie {
	t := &Trie{root: &trieNode{}}
	for _, e := range entries {
		t.insert(e.Token, e.Directive)
	}
	return t
}

func (t *Trie) insert(token, directive string) {
	n := t.root
	for i := 0; i < len(token); i++ {
		c := token[i]
		if n.children == nil {
			n.children = make(map[byte]*trieNode)
		}
		child, ok := n.children[c]
		if !ok {
			child = &trieNode{}
			n.children[c] = child
		}
		n = child
	}
	n.terminal = true
	n.directive = directive
}

// longestMatch walks the trie from position pos in input and returns the
// canonical directive and length of the longest complete token found.
// Returns length 0 when no token is a prefix of the remaining input.
func (t *Trie) longestMatch(input string, pos int) (directive string, length int) {
	n := t.root
	for i := pos; i < len(input); i++ {
		child, ok := n.children[input[i]]
		if !ok {
			break
		}
		n = child
		if n.terminal {
			directive = n.directive
			length = i - pos + 1
		}
	}
	return directive, length
}
