package query

import (
	"testing"

	"github.com/figtreehq/figtree/figma"
)

func fixtureTree() *figma.Node {
	return &figma.Node{
		ID: "0:0", Name: "Document", Type: figma.TypeDocument,
		Children: []*figma.Node{
			{
				ID: "1:0", Name: "Page 1", Type: figma.TypeCanvas,
				Children: []*figma.Node{
					{ID: "1:1", Name: "  Header  ", Type: figma.TypeFrame},
					{ID: "1:2", Name: "Button", Type: figma.TypeComponent,
						Children: []*figma.Node{
							{ID: "1:3", Name: "Label", Type: figma.TypeText},
						}},
					{ID: "1:4", Name: "Hero Shot", Type: "RECTANGLE"},
					{ID: "1:5", Name: "Card", Type: figma.TypeFrame,
						Children: []*figma.Node{
							// Nested frame: must not appear as top-level.
							{ID: "1:6", Name: "Card Inner", Type: figma.TypeFrame},
							{ID: "1:7", Name: "Icon", Type: figma.TypeInstance},
						}},
				},
			},
			{
				ID: "2:0", Type: figma.TypeCanvas, // unnamed page
				Children: []*figma.Node{
					{ID: "2:1", Name: "Buttons", Type: figma.TypeComponentSet},
				},
			},
		},
	}
}

func TestFindByName_CaseAndWhitespaceInsensitive(t *testing.T) {
	node, err := FindByName(fixtureTree(), "header")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if node == nil || node.ID != "1:1" {
		t.Errorf("expected node 1:1, got %+v", node)
	}

	node, err = FindByName(fixtureTree(), "  BUTTON ")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if node == nil || node.ID != "1:2" {
		t.Errorf("expected node 1:2, got %+v", node)
	}
}

func TestFindByName_NotFound(t *testing.T) {
	node, err := FindByName(fixtureTree(), "Footer")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected nil, got %+v", node)
	}
}

func TestFindByName_EmptyNameNeverMatches(t *testing.T) {
	root := &figma.Node{ID: "0:0", Children: []*figma.Node{{ID: "1:0"}}}
	node, err := FindByName(root, "")
	if err != nil {
		t.Fatalf("FindByName failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected no match for empty query, got %+v", node)
	}
}

func TestFindByID(t *testing.T) {
	node, err := FindByID(fixtureTree(), "1:3")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if node == nil || node.Name != "Label" {
		t.Errorf("expected Label, got %+v", node)
	}

	// IDs are opaque: no case folding, no normalization.
	node, err = FindByID(fixtureTree(), "1-3")
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if node != nil {
		t.Errorf("expected nil for unnormalized id, got %+v", node)
	}
}

func TestTopLevelContainers(t *testing.T) {
	containers := TopLevelContainers(fixtureTree())

	want := []Container{
		{ID: "1:1", Name: "  Header  ", Type: figma.TypeFrame, Page: "Page 1"},
		{ID: "1:2", Name: "Button", Type: figma.TypeComponent, Page: "Page 1"},
		{ID: "1:5", Name: "Card", Type: figma.TypeFrame, Page: "Page 1"},
		{ID: "2:1", Name: "Buttons", Type: figma.TypeComponentSet, Page: "Unnamed Page"},
	}

	if len(containers) != len(want) {
		t.Fatalf("expected %d containers, got %d: %+v", len(want), len(containers), containers)
	}
	for i := range want {
		if containers[i] != want[i] {
			t.Errorf("container %d: expected %+v, got %+v", i, want[i], containers[i])
		}
	}
}

func TestTopLevelContainers_ExcludesDeeplyNested(t *testing.T) {
	for _, c := range TopLevelContainers(fixtureTree()) {
		if c.ID == "1:6" {
			t.Error("frame three levels deep must not be a top-level container")
		}
	}
}

func TestAllComponents_DocumentOrder(t *testing.T) {
	components, err := AllComponents(fixtureTree())
	if err != nil {
		t.Fatalf("AllComponents failed: %v", err)
	}

	want := []ComponentRef{
		{ID: "1:2", Name: "Button", Type: figma.TypeComponent},
		{ID: "1:7", Name: "Icon", Type: figma.TypeInstance},
		{ID: "2:1", Name: "Buttons", Type: figma.TypeComponentSet},
	}

	if len(components) != len(want) {
		t.Fatalf("expected %d components, got %d: %+v", len(want), len(components), components)
	}
	for i := range want {
		if components[i] != want[i] {
			t.Errorf("component %d: expected %+v, got %+v", i, want[i], components[i])
		}
	}
}

func TestAllComponents_Deterministic(t *testing.T) {
	first, err := AllComponents(fixtureTree())
	if err != nil {
		t.Fatalf("AllComponents failed: %v", err)
	}
	for range 5 {
		again, err := AllComponents(fixtureTree())
		if err != nil {
			t.Fatalf("AllComponents failed: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("non-deterministic length: %d vs %d", len(again), len(first))
		}
		for i := range first {
			if again[i] != first[i] {
				t.Errorf("non-deterministic order at %d: %+v vs %+v", i, again[i], first[i])
			}
		}
	}
}
