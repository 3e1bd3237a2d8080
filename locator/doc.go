// Package locator extracts file keys and node IDs from Figma reference
// strings. A reference is either a share URL or a bare file key; both
// forms resolve to the same identifiers, so tools accept either.
package locator
