package i18n

import (
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

// decodeFunc parses a document body into an ordered tree.
type decodeFunc func(data []byte) (*Tree, error)

var jsonAPI = jsoniter.Config{
	EscapeHTML:    false,
	UseNumber:     true,
	CaseSensitive: true,
}.Froze()

// decodeJSON walks the document with a streaming iterator so object keys
// are collected in source order.
func decodeJSON(data []byte) (*Tree, error) {
	if !jsonAPI.Valid(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}

	iter := jsonAPI.BorrowIterator(data)
	defer jsonAPI.ReturnIterator(iter)

	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, fmt.Errorf("%w: root must be an object", ErrInvalidDocument)
	}

	tree := readJSONObject(iter)
	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, iter.Error)
	}

	// Only whitespace may follow the root object: the iterator reports io.EOF
	// once it runs out of input while looking for the next token.
	iter.WhatIsNext()
	if !errors.Is(iter.Error, io.EOF) {
		return nil, fmt.Errorf("%w: unexpected data after root object", ErrInvalidDocument)
	}
	return tree, nil
}

func readJSONObject(iter *jsoniter.Iterator) *Tree {
	tree := NewTree()
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		tree.Set(key, readJSONValue(it))
		return it.Error == nil
	})
	return tree
}

func readJSONValue(iter *jsoniter.Iterator) any {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		return readJSONObject(iter)
	case jsoniter.StringValue:
		return iter.ReadString()
	default:
		return iter.Read()
	}
}

// decodeYAML keeps mapping order by working on yaml.Node instead of map[string]any.
func decodeYAML(data []byte) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root must be a mapping", ErrInvalidDocument)
	}

	return readYAMLMapping(root)
}

// readYAMLMapping expands merge keys ("<<: *base") in place. Keys written in
// the mapping itself win over merged ones, and earlier merge sources win over later ones.
func readYAMLMapping(node *yaml.Node) (*Tree, error) {
	explicit := make(map[string]bool, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if !isYAMLMergeKey(node.Content[i]) {
			explicit[node.Content[i].Value] = true
		}
	}

	tree := NewTree()
	merged := make(map[string]bool)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, valueNode := node.Content[i], node.Content[i+1]

		if isYAMLMergeKey(key) {
			sources, err := yamlMergeSources(valueNode)
			if err != nil {
				return nil, err
			}
			for _, src := range sources {
				for _, entry := range src.Entries() {
					if explicit[entry.Key] || merged[entry.Key] {
						continue
					}
					merged[entry.Key] = true
					tree.Set(entry.Key, entry.Value)
				}
			}
			continue
		}

		value, err := readYAMLValue(valueNode)
		if err != nil {
			return nil, err
		}
		tree.Set(key.Value, value)
	}
	return tree, nil
}

func isYAMLMergeKey(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.ShortTag() == "!!merge"
}

// yamlMergeSources resolves the value of a merge key: a mapping, or a sequence of mappings.
func yamlMergeSources(node *yaml.Node) ([]*Tree, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}

	switch node.Kind {
	case yaml.MappingNode:
		tree, err := readYAMLMapping(node)
		if err != nil {
			return nil, err
		}
		return []*Tree{tree}, nil
	case yaml.SequenceNode:
		sources := make([]*Tree, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind == yaml.AliasNode {
				item = item.Alias
			}
			if item.Kind != yaml.MappingNode {
				return nil, fmt.Errorf("%w: line %d: merge sequence must contain mappings", ErrInvalidDocument, item.Line)
			}
			tree, err := readYAMLMapping(item)
			if err != nil {
				return nil, err
			}
			sources = append(sources, tree)
		}
		return sources, nil
	default:
		return nil, fmt.Errorf("%w: line %d: merge value must be a mapping", ErrInvalidDocument, node.Line)
	}
}

func readYAMLValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return readYAMLValue(node.Alias)
	case yaml.MappingNode:
		return readYAMLMapping(node)
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			return node.Value, nil
		}
	}

	var v any
	if err := node.Decode(&v); err != nil {
		return nil, fmt.Errorf("%w: line %d: %s", ErrInvalidDocument, node.Line, err)
	}
	return v, nil
}
