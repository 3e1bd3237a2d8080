package style

import (
	"encoding/json"

	"github.com/figtreehq/figtree/figma"
)

// Layout is the normalized auto-layout group. Spacing and padding are
// nullable and copied as-is — a missing value is emitted as null, never
// defaulted to zero.
type Layout struct {
	Mode          string   `json:"mode"`
	ItemSpacing   *float64 `json:"itemSpacing"`
	PaddingLeft   *float64 `json:"paddingLeft"`
	PaddingRight  *float64 `json:"paddingRight"`
	PaddingTop    *float64 `json:"paddingTop"`
	PaddingBottom *float64 `json:"paddingBottom"`
}

// Styles is the side-structure of attribute groups present on a node.
// Paint groups are verbatim copies of the node's raw JSON; the text
// style and bounding box groups are re-keyed to their normalized names.
type Styles struct {
	Fills       json.RawMessage    `json:"fills,omitempty"`
	Strokes     json.RawMessage    `json:"strokes,omitempty"`
	Effects     json.RawMessage    `json:"effects,omitempty"`
	TextStyle   json.RawMessage    `json:"textStyle,omitempty"`
	BoundingBox *figma.BoundingBox `json:"boundingBox,omitempty"`
	Layout      *Layout            `json:"layout,omitempty"`
}

// Extract collects the attribute groups present on node. The layout
// group is assembled only when layoutMode is set.
func Extract(node *figma.Node) Styles {
	var styles Styles
	if node == nil {
		return styles
	}

	styles.Fills = node.Fills
	styles.Strokes = node.Strokes
	styles.Effects = node.Effects
	styles.TextStyle = node.Style
	styles.BoundingBox = node.AbsoluteBoundingBox

	if node.LayoutMode != "" {
		styles.Layout = &Layout{
			Mode:          node.LayoutMode,
			ItemSpacing:   node.ItemSpacing,
			PaddingLeft:   node.PaddingLeft,
			PaddingRight:  node.PaddingRight,
			PaddingTop:    node.PaddingTop,
			PaddingBottom: node.PaddingBottom,
		}
	}

	return styles
}
