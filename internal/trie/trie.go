package trie

import "sort"

/*
Arena-based identifier trie

The validator looks up every identifier word of an expression against the
allowlist of function and constant names, and the CLI asks for prefix
completions ("sq" -> sqrt) to suggest a fix for near-miss identifiers.

Nodes live in a single contiguous slice and reference their children by
index instead of pointer. The allowlist is built once at startup and only
read afterwards, so a single large allocation with integer links keeps the
lookups cache-friendly and allocation-free.
*/

// NodeIndex represents the index of a trie node inside the arena.
type NodeIndex int

type arenaNode struct {
	// children maps a byte of the identifier to the index of the child node.
	children map[byte]NodeIndex
	// isWord marks the end of an allowlisted identifier.
	isWord bool
}

// Trie is a read-mostly set of lowercase identifier words.
type Trie struct {
	nodes []arenaNode
}

// New returns an initialized Trie containing only the root node.
func New() *Trie {
	t := &Trie{nodes: make([]arenaNode, 0, 64)}
	t.nodes = append(t.nodes, arenaNode{children: make(map[byte]NodeIndex)})
	return t
}

// newNode adds a new node to the arena and returns its index.
func (t *Trie) newNode() NodeIndex {
	idx := NodeIndex(len(t.nodes))
	t.nodes = append(t.nodes, arenaNode{children: make(map[byte]NodeIndex)})
	return idx
}

// Insert adds a word to the set.
func (t *Trie) Insert(word string) {
	current := NodeIndex(0)
	for i := 0; i < len(word); i++ {
		node := &t.nodes[current]
		childIdx, exists := node.children[word[i]]
		if !exists {
			childIdx = t.newNode()
			node.children[word[i]] = childIdx
		}
		current = childIdx
	}
	t.nodes[current].isWord = true
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	idx, ok := t.walk(word)
	return ok && t.nodes[idx].isWord
}

// WithPrefix returns all inserted words starting with prefix, sorted.
func (t *Trie) WithPrefix(prefix string) []string {
	idx, ok := t.walk(prefix)
	if !ok {
		return nil
	}
	var words []string
	t.collect(idx, prefix, &words)
	sort.Strings(words)
	return words
}

// walk descends from the root along word, returning the final node.
func (t *Trie) walk(word string) (NodeIndex, bool) {
	current := NodeIndex(0)
	for i := 0; i < len(word); i++ {
		childIdx, exists := t.nodes[current].children[word[i]]
		if !exists {
			return 0, false
		}
		current = childIdx
	}
	return current, true
}

func (t *Trie) collect(idx NodeIndex, acc string, words *[]string) {
	node := t.nodes[idx]
	if node.isWord {
		*words = append(*words, acc)
	}
	for b, child := range node.children {
		t.collect(child, acc+string(b), words)
	}
}
