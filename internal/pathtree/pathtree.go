// Package pathtree implements the segment trie that backs forge's
// per-method route registries: literal segments plus at most one
// parameter child per node, with duplicate-registration detection and
// literal-over-parameter precedence at lookup time.
package pathtree

import "strings"

// Param is a single captured (name, value) pair produced by Find.
type Param struct {
	Name  string
	Value string
}

type paramChild[T any] struct {
	name string
	node *Node[T]
}

// Node is a single trie node. The zero value is a usable empty node.
type Node[T any] struct {
	terminal    T
	hasTerminal bool

	literals map[string]*Node[T]
	param    *paramChild[T]
}

// Tree is a PathTree[T]: a rooted trie indexed by sanitized path
// segments, carrying a terminal value of type T at matching nodes.
type Tree[T any] struct {
	root Node[T]
}

// New creates an empty tree.
func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// Sanitize splits a raw path into its canonical segment sequence:
// leading/trailing slashes trimmed, empty segments discarded. Calling
// Sanitize on an already-sanitized sequence joined by "/" yields the
// same sequence (normalization idempotence).
func Sanitize(path string) []string {
	path = strings.Trim(path, "/")
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Insert traverses or creates nodes for the given sanitized segment
// sequence and stores value as its terminal. A segment beginning with
// ':' is a parameter capture; the substring after ':' is its name.
//
// If a parameter child already exists at a node with a different name
// than the one being inserted, the existing name is kept silently
// (matches the original source's documented behavior; see DESIGN.md).
//
// Returns true if a terminal value already existed at the resulting
// node (duplicate registration) — the caller is responsible for
// treating that as an error, Insert itself does not refuse the write.
func (t *Tree[T]) Insert(segments []string, value T) (duplicate bool) {
	n := &t.root
	for _, seg := range segments {
		if len(seg) > 0 && seg[0] == ':' {
			name := seg[1:]
			if n.param == nil {
				n.param = &paramChild[T]{name: name, node: &Node[T]{}}
			}
			n = n.param.node
		} else {
			if n.literals == nil {
				n.literals = make(map[string]*Node[T])
			}
			child, ok := n.literals[seg]
			if !ok {
				child = &Node[T]{}
				n.literals[seg] = child
			}
			n = child
		}
	}
	duplicate = n.hasTerminal
	n.terminal = value
	n.hasTerminal = true
	return duplicate
}

// Match is a successful lookup result: a pointer to the stored value
// and the ordered list of captures made along the path.
type Match[T any] struct {
	Value  *T
	Params []Param
}

// Find traverses the tree greedily for the given sanitized segment
// sequence: a literal child always wins over the parameter child at
// the same node (most-specific-wins, no backtracking). Returns false
// if no terminal value exists at the node reached after consuming all
// segments.
func (t *Tree[T]) Find(segments []string) (Match[T], bool) {
	n := &t.root
	var params []Param
	for _, seg := range segments {
		if n.literals != nil {
			if child, ok := n.literals[seg]; ok {
				n = child
				continue
			}
		}
		if n.param != nil {
			params = append(params, Param{Name: n.param.name, Value: seg})
			n = n.param.node
			continue
		}
		return Match[T]{}, false
	}
	if !n.hasTerminal {
		return Match[T]{}, false
	}
	return Match[T]{Value: &n.terminal, Params: params}, true
}
