package seglib

// prefixTrie maps words to frequencies rune by rune. A node with frequency
// below zero is only a prefix of longer words.
type prefixTrie struct {
	root    *trieNode
	entries int
}

type trieNode struct {
	frequency float64
	children  map[rune]*trieNode
}

func newTrieNode() *trieNode {
	return &trieNode{frequency: -1, children: map[rune]*trieNode{}}
}

func newPrefixTrie() *prefixTrie {
	return &prefixTrie{root: newTrieNode()}
}

func (t *prefixTrie) add(word string, frequency float64) {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			next = newTrieNode()
			cur.children[r] = next
		}
		cur = next
	}
	if cur == t.root {
		return
	}
	if cur.frequency < 0 {
		t.entries++
	}
	cur.frequency = frequency
}

// lookup reports the frequency of word, whether longer words start with it and
// whether word itself is an entry.
func (t *prefixTrie) lookup(word string) (frequency float64, isPrefix bool, exists bool) {
	cur := t.root
	for _, r := range word {
		next, ok := cur.children[r]
		if !ok {
			return -1, false, false
		}
		cur = next
	}
	return cur.frequency, len(cur.children) > 0, cur.frequency >= 0
}
