package intelligence

import "sort"

// trieNode is one rune step in the prefix tree.
type trieNode struct {
	children map[rune]*trieNode
	word     string
	count    int // number of inserts of word; zero for interior nodes
}

// Trie is a prefix tree that remembers how often each word was inserted.
type Trie struct {
	root *trieNode
	size int
}

// NewTrie creates an empty Trie.
func NewTrie() *Trie {
	return &Trie{root: newTrieNode()}
}

func newTrieNode() *trieNode {
	return &trieNode{children: make(map[rune]*trieNode)}
}

// Insert adds one occurrence of word.
func (t *Trie) Insert(word string) {
	if word == "" {
		return
	}
	current := t.root
	for _, char := range word {
		next, ok := current.children[char]
		if !ok {
			next = newTrieNode()
			current.children[char] = next
		}
		current = next
	}
	if current.count == 0 {
		t.size++
	}
	current.word = word
	current.count++
}

// Len returns the number of distinct words.
func (t *Trie) Len() int {
	return t.size
}

// Count returns how many times word was inserted.
func (t *Trie) Count(word string) int {
	node := t.walk(word)
	if node == nil {
		return 0
	}
	return node.count
}

// Find returns every word starting with prefix, most frequent first and
// alphabetically among equals.
func (t *Trie) Find(prefix string) []string {
	node := t.walk(prefix)
	if node == nil {
		return []string{}
	}
	var found []*trieNode
	collect(node, &found)
	sort.Slice(found, func(i, j int) bool {
		if found[i].count != found[j].count {
			return found[i].count > found[j].count
		}
		return found[i].word < found[j].word
	})
	words := make([]string, len(found))
	for i, n := range found {
		words[i] = n.word
	}
	return words
}

func (t *Trie) walk(prefix string) *trieNode {
	current := t.root
	for _, char := range prefix {
		next, ok := current.children[char]
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func collect(node *trieNode, found *[]*trieNode) {
	if node.count > 0 {
		*found = append(*found, node)
	}
	for _, child := range node.children {
		collect(child, found)
	}
}
