package tree

import (
	"fmt"
	"testing"

	"github.com/figtreehq/figtree/figma"
)

func makeBenchTree(pages, framesPerPage int) *figma.Node {
	root := &figma.Node{ID: "0:0", Type: figma.TypeDocument}
	for p := range pages {
		page := &figma.Node{
			ID:   fmt.Sprintf("%d:0", p+1),
			Name: fmt.Sprintf("Page %d", p+1),
			Type: figma.TypeCanvas,
		}
		for f := range framesPerPage {
			page.Children = append(page.Children, &figma.Node{
				ID:   fmt.Sprintf("%d:%d", p+1, f+1),
				Name: fmt.Sprintf("Frame %d", f+1),
				Type: figma.TypeFrame,
			})
		}
		root.Children = append(root.Children, page)
	}
	return root
}

func BenchmarkWalk(b *testing.B) {
	root := makeBenchTree(10, 100)

	for b.Loop() {
		count := 0
		_ = Walk(root, func(*figma.Node) { count++ })
	}
}

func BenchmarkFind_LastNode(b *testing.B) {
	root := makeBenchTree(10, 100)

	for b.Loop() {
		_, _ = Find(root, func(n *figma.Node) bool { return n.ID == "10:100" })
	}
}
