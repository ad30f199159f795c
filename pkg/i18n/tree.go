package i18n

import "strings"

// Entry is a single key/value pair of a Tree.
// Value is a string, a *Tree, or any other decoded scalar or array.
type Entry struct {
	Key   string
	Value any
}

// Tree is a translation document node that keeps keys in the order
// they appeared in the source file.
type Tree struct {
	entries []Entry
	index   map[string]int
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{index: make(map[string]int)}
}

// Set adds or replaces a key. A replaced key keeps its original position.
func (t *Tree) Set(key string, value any) {
	if i, ok := t.index[key]; ok {
		t.entries[i].Value = value
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Value: value})
}

// Get returns the value stored under key.
func (t *Tree) Get(key string) (any, bool) {
	if t == nil {
		return nil, false
	}
	i, ok := t.index[key]
	if !ok {
		return nil, false
	}
	return t.entries[i].Value, true
}

// Entries returns the entries in insertion order.
// The returned slice must not be modified.
func (t *Tree) Entries() []Entry {
	if t == nil {
		return nil
	}
	return t.entries
}

// Len returns the number of keys.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Lookup descends the tree one segment at a time.
// It reports false as soon as a segment is missing or the current node is not a tree.
func (t *Tree) Lookup(path KeyPath) (any, bool) {
	var node any = t
	for _, segment := range path {
		tree, ok := node.(*Tree)
		if !ok || tree == nil {
			return nil, false
		}
		if node, ok = tree.Get(segment); !ok {
			return nil, false
		}
	}
	return node, true
}

// Subtree returns the tree at path, or nil when path does not resolve to a tree.
func (t *Tree) Subtree(path KeyPath) *Tree {
	v, ok := t.Lookup(path)
	if !ok {
		return nil
	}
	sub, _ := v.(*Tree)
	return sub
}

// String returns the string at path, or an empty string when the path is
// missing or resolves to something other than a string.
func (t *Tree) String(path KeyPath) string {
	v, ok := t.Lookup(path)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// KeyPath identifies a node inside a Tree.
type KeyPath []string

// ParseKeyPath splits a dotted key ("app.nav.home") into segments.
func ParseKeyPath(dotted string) KeyPath {
	if dotted == "" {
		return nil
	}
	return strings.Split(dotted, ".")
}

// Child returns a new path with key appended. The receiver is not modified.
func (p KeyPath) Child(key string) KeyPath {
	child := make(KeyPath, len(p), len(p)+1)
	copy(child, p)
	return append(child, key)
}

func (p KeyPath) String() string {
	return strings.Join(p, ".")
}
