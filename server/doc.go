// Package server registers the Figma query and projection operations as
// MCP tools on the official go-sdk server.
//
// Every tool accepts a file reference (share URL or bare key) and
// returns an indented JSON text payload. Lookups that find nothing
// return a normal payload with an "error" field and, where it helps,
// a bounded list of valid alternatives; only fetch and input failures
// surface as tool errors.
//
// The server holds no state between calls: each invocation fetches a
// fresh tree, queries it, and discards it.
//
// Example:
//
//	client, _ := figma.NewClient(figma.Config{Token: token})
//	srv, _ := server.New(server.Config{Client: client})
//	srv.Run(ctx) // stdio transport, blocks
package server
