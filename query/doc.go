// Package query implements the domain lookups over a Figma document:
// find-by-name, find-by-id, top-level container listing, and component
// enumeration. All lookups are deterministic and return results in
// document order. A lookup that finds nothing returns nil rather than an
// error; callers branch on the result.
package query
