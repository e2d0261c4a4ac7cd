package theme

import (
	"fmt"
	"iter"
	"strings"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// refTag marks scalar holding dotted path of another theme node.
const refTag = "!theme"

func unalias(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// isEmpty reports whether node is absent or explicit null.
func isEmpty(n *yaml.Node) bool {
	return n == nil || n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// pairs iterates mapping key/value nodes in document order.
func pairs(n *yaml.Node) iter.Seq2[*yaml.Node, *yaml.Node] {
	return func(yield func(*yaml.Node, *yaml.Node) bool) {
		for i := 0; i+1 < len(n.Content); i += 2 {
			if !yield(unalias(n.Content[i]), unalias(n.Content[i+1])) {
				return
			}
		}
	}
}

func child(n *yaml.Node, key string) *yaml.Node {
	for k, v := range pairs(n) {
		if k.Value == key {
			return v
		}
	}
	return nil
}

func lookup(root *yaml.Node, path string) *yaml.Node {
	n := unalias(root)
	for key := range strings.SplitSeq(path, ".") {
		if n == nil || n.Kind != yaml.MappingNode {
			return nil
		}
		n = child(n, key)
	}
	return n
}

// linker replaces references with nodes they point to.
type linker struct {
	root   *yaml.Node
	active []string
	errs   error
}

// link resolves every reference in the tree, it returns all problems found.
// Broken references are replaced with null.
func link(root *yaml.Node) error {
	if isEmpty(root) {
		return nil
	}
	l := &linker{root: root}
	l.walk(root)
	return l.errs
}

func (l *linker) walk(n *yaml.Node) {
	switch n.Kind {
	case yaml.MappingNode:
		for i := 1; i < len(n.Content); i += 2 {
			l.walk(n.Content[i])
		}
	case yaml.SequenceNode:
		for _, c := range n.Content {
			l.walk(c)
		}
	case yaml.ScalarNode:
		if n.Tag != refTag {
			return
		}
		target := l.deref(strings.TrimSpace(n.Value), n.Line)
		if n.Tag != refTag {
			// already replaced while resolving a cycle through this node
			return
		}
		if target == nil {
			*n = yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Line: n.Line, Column: n.Column}
			return
		}
		*n = *target
	}
}

// deref finds node for the path making sure it has no references left.
func (l *linker) deref(path string, line int) *yaml.Node {
	for i, p := range l.active {
		if p == path {
			chain := append(append([]string(nil), l.active[i:]...), path)
			l.errs = multierr.Append(l.errs, fmt.Errorf("reference cycle %s (line %d)", strings.Join(chain, " -> "), line))
			return nil
		}
	}
	l.active = append(l.active, path)
	defer func() { l.active = l.active[:len(l.active)-1] }()

	n := unalias(l.root)
	for key := range strings.SplitSeq(path, ".") {
		if n.Kind == yaml.ScalarNode && n.Tag == refTag {
			l.walk(n)
		}
		if n.Kind != yaml.MappingNode {
			n = nil
			break
		}
		if n = child(n, key); n == nil {
			break
		}
	}
	if n == nil {
		l.errs = multierr.Append(l.errs, fmt.Errorf("reference to undefined theme path '%s' (line %d)", path, line))
		return nil
	}
	l.walk(n)
	if isEmpty(n) {
		return nil
	}
	return n
}
