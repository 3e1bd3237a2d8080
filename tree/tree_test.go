package tree

import (
	"errors"
	"testing"

	"github.com/figtreehq/figtree/figma"
)

func testTree() *figma.Node {
	return &figma.Node{
		ID: "0:0", Name: "Document", Type: figma.TypeDocument,
		Children: []*figma.Node{
			{
				ID: "1:0", Name: "Page 1", Type: figma.TypeCanvas,
				Children: []*figma.Node{
					{ID: "1:1", Name: "Header", Type: figma.TypeFrame},
					{ID: "1:2", Name: "Body", Type: figma.TypeFrame,
						Children: []*figma.Node{
							{ID: "1:3", Name: "Title", Type: figma.TypeText},
						}},
				},
			},
			{
				ID: "2:0", Name: "Page 2", Type: figma.TypeCanvas,
				Children: []*figma.Node{
					{ID: "2:1", Name: "Header", Type: figma.TypeFrame},
				},
			},
		},
	}
}

func TestWalk_DocumentOrder(t *testing.T) {
	var ids []string
	err := Walk(testTree(), func(n *figma.Node) {
		ids = append(ids, n.ID)
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	want := []string{"0:0", "1:0", "1:1", "1:2", "1:3", "2:0", "2:1"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d nodes, got %d: %v", len(want), len(ids), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], ids[i])
		}
	}
}

func TestFind_FirstMatchWins(t *testing.T) {
	// Two frames named "Header"; document order picks the Page 1 one.
	node, err := Find(testTree(), func(n *figma.Node) bool {
		return n.Name == "Header"
	})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if node == nil || node.ID != "1:1" {
		t.Errorf("expected node 1:1, got %+v", node)
	}
}

func TestFind_NotFoundIsNil(t *testing.T) {
	node, err := Find(testTree(), func(n *figma.Node) bool {
		return n.Name == "Missing"
	})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected nil for not-found, got %+v", node)
	}
}

func TestFind_NilRoot(t *testing.T) {
	node, err := Find(nil, func(n *figma.Node) bool { return true })
	if err != nil || node != nil {
		t.Errorf("expected nil, nil for nil root, got %v, %v", node, err)
	}
}

func TestTraversal_SkipsNilChildren(t *testing.T) {
	root := &figma.Node{ID: "0:0", Children: []*figma.Node{nil, {ID: "1:0"}}}

	var ids []string
	if err := Walk(root, func(n *figma.Node) { ids = append(ids, n.ID) }); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(ids) != 2 || ids[1] != "1:0" {
		t.Errorf("unexpected visit order: %v", ids)
	}
}

func TestWalk_CycleDetected(t *testing.T) {
	a := &figma.Node{ID: "0:0"}
	b := &figma.Node{ID: "1:0"}
	a.Children = []*figma.Node{b}
	b.Children = []*figma.Node{a}

	err := Walk(a, func(n *figma.Node) {})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestWalk_SelfReference(t *testing.T) {
	a := &figma.Node{ID: "0:0"}
	a.Children = []*figma.Node{a}

	err := Walk(a, func(n *figma.Node) {})
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("expected ErrCycle, got %v", err)
	}
}

func TestFind_DeepTree(t *testing.T) {
	// Deep but legal chain; iterative traversal must not blow the stack.
	root := &figma.Node{ID: "n0"}
	current := root
	for i := 1; i <= 5000; i++ {
		child := &figma.Node{ID: "deep"}
		current.Children = []*figma.Node{child}
		current = child
	}
	current.Name = "Leaf"

	node, err := Find(root, func(n *figma.Node) bool { return n.Name == "Leaf" })
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if node == nil {
		t.Fatal("expected to find deep leaf")
	}
}
