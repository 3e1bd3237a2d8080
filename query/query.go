package query

import (
	"strings"

	"github.com/figtreehq/figtree/figma"
	"github.com/figtreehq/figtree/tree"
)

// FindByName returns the first node in document order whose name equals
// name after trimming whitespace and folding case on both sides. Nodes
// with empty names never match. Returns nil when nothing matches.
func FindByName(root *figma.Node, name string) (*figma.Node, error) {
	want := strings.TrimSpace(name)
	return tree.Find(root, func(n *figma.Node) bool {
		return n.Name != "" && strings.EqualFold(strings.TrimSpace(n.Name), want)
	})
}

// FindByID returns the node with the given ID, or nil. IDs are opaque
// tokens compared exactly; callers normalize dash-separated IDs first
// (see locator.NormalizeNodeID).
func FindByID(root *figma.Node, id string) (*figma.Node, error) {
	return tree.Find(root, func(n *figma.Node) bool {
		return n.ID == id
	})
}

// Container is a frame-level node found directly under a page, tagged
// with the owning page's name.
type Container struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Page string `json:"page"`
}

// TopLevelContainers lists frames, components, and component sets that
// sit exactly two levels below the document root (document → page →
// container). This is deliberately a fixed-depth scan, not a traversal:
// matching nodes nested any deeper are not containers in the canonical
// document structure and are excluded.
func TopLevelContainers(root *figma.Node) []Container {
	if root == nil {
		return nil
	}

	var containers []Container
	for _, page := range root.Children {
		if page == nil {
			continue
		}
		for _, node := range page.Children {
			if node == nil {
				continue
			}
			switch node.Type {
			case figma.TypeFrame, figma.TypeComponent, figma.TypeComponentSet:
				containers = append(containers, Container{
					ID:   node.ID,
					Name: displayName(node.Name, "Unnamed"),
					Type: node.Type,
					Page: displayName(page.Name, "Unnamed Page"),
				})
			}
		}
	}
	return containers
}

// ComponentRef identifies a component-like node.
type ComponentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// AllComponents collects every component, component set, and instance in
// the tree, full depth, pre-order.
func AllComponents(root *figma.Node) ([]ComponentRef, error) {
	var components []ComponentRef
	err := tree.Walk(root, func(n *figma.Node) {
		switch n.Type {
		case figma.TypeComponent, figma.TypeComponentSet, figma.TypeInstance:
			components = append(components, ComponentRef{
				ID:   n.ID,
				Name: displayName(n.Name, "Unnamed"),
				Type: n.Type,
			})
		}
	})
	if err != nil {
		return nil, err
	}
	return components, nil
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}
