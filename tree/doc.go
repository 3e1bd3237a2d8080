// Package tree provides traversal primitives over a Figma node tree.
//
// Both the first-match search and the whole-tree walk are iterative,
// stack-based depth-first traversals: document trees can be arbitrarily
// deep, and an explicit work list avoids recursion limits. Children are
// pushed in reverse so nodes are visited in document order (pre-order,
// children left to right).
//
// The API trusts the fetch layer to deliver a tree, but does not trust
// it blindly: every traversal carries a visited-node guard and a depth
// cap, so a cyclic or self-referential structure fails with ErrCycle or
// ErrTooDeep instead of looping forever.
package tree
