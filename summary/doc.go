// Package summary projects a Figma node into a bounded, serializable
// digest. Documents can be arbitrarily large; a summary never is. The
// bounding policy is fixed: identity fields always, width/height when
// geometry exists, at most MaxTextChars characters of text content, and
// at most MaxChildren child digests exactly one level deep. The child
// count always reflects the true number of children, and an explicit
// truncation flag marks a clipped child list.
package summary
