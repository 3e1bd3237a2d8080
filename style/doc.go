// Package style pulls the visual attribute groups off a single node
// into a normalized side-structure, and converts Figma's 0-1 RGBA
// colors into CSS color strings. Extraction never synthesizes a group:
// whatever the node lacks stays absent in the result.
package style
