// figtree is an MCP server that exposes the Figma API as query and
// projection tools over stdio.
//
// The access token is resolved from --token, then the config file, then
// the FIGMA_TOKEN environment variable, and is passed explicitly into
// the client; nothing below main reads the environment.
//
// Usage:
//
//	figtree --token <FIGMA_TOKEN>
//	figtree --config /etc/figtree.yaml --log-level debug
package main
