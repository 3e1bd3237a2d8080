package tree

import (
	"errors"

	"github.com/figtreehq/figtree/figma"
)

// MaxDepth caps traversal depth. Real documents are a handful of levels
// deep; anything past this is a malformed or adversarial tree.
const MaxDepth = 10000

var (
	// ErrCycle reports that a node was reachable twice. The document
	// contract is a strict tree, so a revisit means a cycle or shared
	// subtree and the traversal stops rather than looping.
	ErrCycle = errors.New("tree: cycle detected")

	// ErrTooDeep reports a traversal deeper than MaxDepth.
	ErrTooDeep = errors.New("tree: max depth exceeded")
)

type frame struct {
	node  *figma.Node
	depth int
}

// traverse drives both Find and Walk. visit returns false to stop early.
func traverse(root *figma.Node, visit func(*figma.Node) bool) error {
	if root == nil {
		return nil
	}

	visited := make(map[*figma.Node]struct{})
	stack := []frame{{root, 0}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := top.node
		if node == nil {
			continue
		}
		if _, seen := visited[node]; seen {
			return ErrCycle
		}
		visited[node] = struct{}{}
		if top.depth > MaxDepth {
			return ErrTooDeep
		}

		if !visit(node) {
			return nil
		}

		// Reverse push keeps document order on a LIFO work list.
		for i := len(node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{node.Children[i], top.depth + 1})
		}
	}

	return nil
}

// Find returns the first node in document order for which match returns
// true, or nil when nothing matches. Not-found is not an error; only a
// guard violation is.
func Find(root *figma.Node, match func(*figma.Node) bool) (*figma.Node, error) {
	var found *figma.Node
	err := traverse(root, func(n *figma.Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Walk visits every node in document order.
func Walk(root *figma.Node, visit func(*figma.Node)) error {
	return traverse(root, func(n *figma.Node) bool {
		visit(n)
		return true
	})
}
