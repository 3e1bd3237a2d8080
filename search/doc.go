// Package search builds an in-memory full-text index over a fetched
// document tree. Node names, types, text content, and owning page names
// are indexed per node, so a consumer can find "the frame with the
// checkout button" without knowing its exact name or ID.
//
// The index is scoped to a single document and a single query's
// lifetime; it is built from a fetched tree, queried, and discarded.
package search
