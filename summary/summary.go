package summary

import "github.com/figtreehq/figtree/figma"

const (
	// MaxChildren is the cap on child digests per summary.
	MaxChildren = 10

	// MaxTextChars is the cap on text content, in runes. Truncation is
	// silent: no ellipsis is appended.
	MaxTextChars = 100
)

// Size is a node's dimensions. Position is deliberately dropped: a
// summary answers "what is this", not "where is it".
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Summary is the bounded digest of a single node.
type Summary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	Size *Size `json:"size,omitempty"`

	// Characters is set only for TEXT nodes, truncated to MaxTextChars.
	Characters *string `json:"characters,omitempty"`

	// ChildCount is the true (untruncated) child count; present only
	// when children were requested.
	ChildCount        *int       `json:"childCount,omitempty"`
	Children          []*Summary `json:"children,omitempty"`
	ChildrenTruncated bool       `json:"childrenTruncated,omitempty"`
}

// Summarize digests a node. When includeChildren is set, the first
// MaxChildren children are digested one level deep — child digests never
// include their own children, so output size is bounded regardless of
// tree depth. Nil input yields nil.
func Summarize(node *figma.Node, includeChildren bool) *Summary {
	if node == nil {
		return nil
	}

	s := &Summary{
		ID:   node.ID,
		Name: node.Name,
		Type: node.Type,
	}

	if box := node.AbsoluteBoundingBox; box != nil {
		s.Size = &Size{Width: box.Width, Height: box.Height}
	}

	if node.Type == figma.TypeText {
		text := truncate(node.Characters, MaxTextChars)
		s.Characters = &text
	}

	if includeChildren {
		count := len(node.Children)
		s.ChildCount = &count

		limit := count
		if limit > MaxChildren {
			limit = MaxChildren
			s.ChildrenTruncated = true
		}
		for _, child := range node.Children[:limit] {
			s.Children = append(s.Children, Summarize(child, false))
		}
	}

	return s
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
