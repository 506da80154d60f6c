/*
Copyright 2026 The kiwigo Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package catalog owns the on-disk resource tree: the Store (C5) answers
// key/value lookups against an in-memory mirror, and the Writer (C8)
// persists new entries, growing per-namespace files and the aggregator file
// on demand.
package catalog

// Node is one node of a dotted-path tree of string leaves. Its path-based
// Get/Set pair is modeled on pkg/definition/ast's GetNodeByPath/
// traversePath walk over a CUE AST, adapted from a parsed-AST field tree to
// a plain in-memory tree since catalog files hold a simple object literal,
// not CUE.
type Node struct {
	IsLeaf   bool
	Value    string
	Order    []string
	Children map[string]*Node
}

// NewNode returns an empty, non-leaf node.
func NewNode() *Node {
	return &Node{Children: map[string]*Node{}}
}

// Set assigns value at the dotted path, creating intermediate nodes as
// needed.
func (n *Node) Set(path []string, value string) {
	if len(path) == 0 {
		n.IsLeaf = true
		n.Value = value
		n.Children = nil
		return
	}
	head := path[0]
	child, ok := n.Children[head]
	if !ok {
		child = NewNode()
		n.Children[head] = child
		n.Order = append(n.Order, head)
	}
	child.Set(path[1:], value)
}

// Get retrieves the node at the dotted path, if any.
func (n *Node) Get(path []string) (*Node, bool) {
	if len(path) == 0 {
		return n, true
	}
	child, ok := n.Children[path[0]]
	if !ok {
		return nil, false
	}
	return child.Get(path[1:])
}

// KV is one flattened dotted-key/value pair.
type KV struct {
	Key   string
	Value string
}

// Flatten appends every leaf under n, with prefix prepended to each
// resulting dotted key, preserving insertion order.
func (n *Node) Flatten(prefix string, out *[]KV) {
	if n.IsLeaf {
		*out = append(*out, KV{Key: prefix, Value: n.Value})
		return
	}
	for _, k := range n.Order {
		child := n.Children[k]
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		child.Flatten(key, out)
	}
}
