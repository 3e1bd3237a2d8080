// Package figma provides the document data model and a thin authenticated
// client for the Figma REST API.
//
// # Node Model
//
// A Figma document is a single tree of Node values. Only the node ID is
// guaranteed to be present; every other field is populated depending on
// the node type and must be read as optional. Attribute groups that the
// rest of the system passes through untouched (fills, strokes, effects,
// text style) are kept as raw JSON so that presence can be distinguished
// from emptiness and copies stay byte-for-byte faithful.
//
// Nodes are read-only snapshots: nothing in this module mutates a Node
// after it is decoded, and higher layers are free to share subtrees.
//
// # Client
//
// Client wraps the v1 REST endpoints used by the server. It performs no
// retries, caching, or rate limiting; any transport or status failure
// surfaces as ErrFetchFailed. The access token is an explicit
// configuration value:
//
//	client, err := figma.NewClient(figma.Config{Token: token})
//	file, err := client.GetFile(ctx, "a1b2c3", nil)
package figma
