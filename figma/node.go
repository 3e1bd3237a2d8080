package figma

import "encoding/json"

// Node types the query layer distinguishes. The vocabulary is open-ended;
// unlisted types are treated as generic nodes.
const (
	TypeDocument     = "DOCUMENT"
	TypeCanvas       = "CANVAS"
	TypeFrame        = "FRAME"
	TypeComponent    = "COMPONENT"
	TypeComponentSet = "COMPONENT_SET"
	TypeInstance     = "INSTANCE"
	TypeText         = "TEXT"
)

// Node is one element of a Figma document tree.
//
// Only ID is guaranteed by the API. Children are in z-order and their
// order is semantically meaningful. Properties this module does not model
// are preserved in Extra so a decoded node can be re-serialized without
// losing information.
type Node struct {
	ID       string  `json:"id"`
	Name     string  `json:"name,omitempty"`
	Type     string  `json:"type,omitempty"`
	Children []*Node `json:"children,omitempty"`

	AbsoluteBoundingBox *BoundingBox `json:"absoluteBoundingBox,omitempty"`
	Characters          string       `json:"characters,omitempty"`

	Fills   json.RawMessage `json:"fills,omitempty"`
	Strokes json.RawMessage `json:"strokes,omitempty"`
	Effects json.RawMessage `json:"effects,omitempty"`
	Style   json.RawMessage `json:"style,omitempty"`

	LayoutMode    string   `json:"layoutMode,omitempty"`
	ItemSpacing   *float64 `json:"itemSpacing,omitempty"`
	PaddingLeft   *float64 `json:"paddingLeft,omitempty"`
	PaddingRight  *float64 `json:"paddingRight,omitempty"`
	PaddingTop    *float64 `json:"paddingTop,omitempty"`
	PaddingBottom *float64 `json:"paddingBottom,omitempty"`

	// Extra holds properties not modeled above, keyed by their JSON name.
	Extra map[string]json.RawMessage `json:"-"`
}

// nodeFieldNames are the JSON keys owned by Node's typed fields.
var nodeFieldNames = []string{
	"id", "name", "type", "children",
	"absoluteBoundingBox", "characters",
	"fills", "strokes", "effects", "style",
	"layoutMode", "itemSpacing",
	"paddingLeft", "paddingRight", "paddingTop", "paddingBottom",
}

// nodeAlias breaks the UnmarshalJSON/MarshalJSON recursion.
type nodeAlias Node

// UnmarshalJSON decodes the typed fields and stashes everything else in
// Extra.
func (n *Node) UnmarshalJSON(data []byte) error {
	var alias nodeAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var extra map[string]json.RawMessage
	if err := json.Unmarshal(data, &extra); err != nil {
		return err
	}
	for _, name := range nodeFieldNames {
		delete(extra, name)
	}
	if len(extra) == 0 {
		extra = nil
	}

	*n = Node(alias)
	n.Extra = extra
	return nil
}

// MarshalJSON re-merges Extra with the typed fields. Keys are emitted in
// sorted order, so output is deterministic.
func (n Node) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(nodeAlias(n))
	if err != nil {
		return nil, err
	}
	if len(n.Extra) == 0 {
		return typed, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(typed, &merged); err != nil {
		return nil, err
	}
	for name, value := range n.Extra {
		merged[name] = value
	}
	return json.Marshal(merged)
}

// BoundingBox is a node's absolute position and size.
type BoundingBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Color is an RGBA color with channels in the 0-1 range. Alpha is a
// pointer because an absent channel means fully opaque, not transparent.
type Color struct {
	R float64  `json:"r"`
	G float64  `json:"g"`
	B float64  `json:"b"`
	A *float64 `json:"a,omitempty"`
}

// Alpha returns the alpha channel, defaulting to 1 when absent.
func (c *Color) Alpha() float64 {
	if c == nil || c.A == nil {
		return 1
	}
	return *c.A
}
