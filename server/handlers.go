package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figtreehq/figtree/figma"
	"github.com/figtreehq/figtree/locator"
	"github.com/figtreehq/figtree/query"
	"github.com/figtreehq/figtree/search"
	"github.com/figtreehq/figtree/style"
	"github.com/figtreehq/figtree/summary"
)

// Tool inputs. Schemas are inferred from these structs by the SDK.

type urlInput struct {
	URL string `json:"url" jsonschema:"Figma URL to parse"`
}

type fileInput struct {
	FileURLOrKey string `json:"file_url_or_key" jsonschema:"Figma file URL or file key"`
	Depth        *int   `json:"depth,omitempty" jsonschema:"optional depth limit for the document tree"`
}

type fileRef struct {
	FileURLOrKey string `json:"file_url_or_key" jsonschema:"Figma file URL or file key"`
}

type nodeInput struct {
	FileURLOrKey string `json:"file_url_or_key" jsonschema:"Figma file URL or file key"`
	NodeID       string `json:"node_id" jsonschema:"node ID to fetch, colon or dash separated (e.g. 1:2 or 1-2)"`
}

type nameInput struct {
	FileURLOrKey string `json:"file_url_or_key" jsonschema:"Figma file URL or file key"`
	Name         string `json:"name" jsonschema:"frame or component name, matched case-insensitively"`
}

type searchInput struct {
	FileURLOrKey string `json:"file_url_or_key" jsonschema:"Figma file URL or file key"`
	Query        string `json:"query" jsonschema:"full-text query over node names, types, and text content"`
	Limit        int    `json:"limit,omitempty" jsonschema:"maximum number of hits (default 10)"`
}

type renderInput struct {
	FileURLOrKey string   `json:"file_url_or_key" jsonschema:"Figma file URL or file key"`
	NodeID       string   `json:"node_id" jsonschema:"node ID to render, colon or dash separated"`
	Format       string   `json:"format,omitempty" jsonschema:"image format: png, jpg, svg, or pdf (default png)"`
	Scale        *float64 `json:"scale,omitempty" jsonschema:"scale factor from 0.01 to 4 (default 1)"`
}

type teamInput struct {
	TeamID string `json:"team_id" jsonschema:"Figma team ID"`
}

type projectInput struct {
	ProjectID string `json:"project_id" jsonschema:"Figma project ID"`
}

func (s *Server) parseFigmaURL(ctx context.Context, req *mcp.CallToolRequest, in urlInput) (*mcp.CallToolResult, any, error) {
	loc, err := locator.Parse(in.URL)
	if err != nil {
		return textResult(map[string]any{"error": err.Error()})
	}

	var nodeID any
	if loc.NodeID != "" {
		nodeID = loc.NodeID
	}
	return textResult(map[string]any{
		"fileKey": loc.FileKey,
		"nodeId":  nodeID,
		"url":     in.URL,
	})
}

func (s *Server) getFigmaFile(ctx context.Context, req *mcp.CallToolRequest, in fileInput) (*mcp.CallToolResult, any, error) {
	file, err := s.fetchFile(ctx, in.FileURLOrKey, in.Depth)
	if err != nil {
		return nil, nil, err
	}

	return textResult(map[string]any{
		"name":           file.Name,
		"lastModified":   file.LastModified,
		"version":        file.Version,
		"document":       summary.Summarize(file.Document, true),
		"componentCount": len(file.Components),
		"styleCount":     len(file.Styles),
	})
}

func (s *Server) getFigmaFileFull(ctx context.Context, req *mcp.CallToolRequest, in fileInput) (*mcp.CallToolResult, any, error) {
	key, err := locator.FileKey(in.FileURLOrKey)
	if err != nil {
		return nil, nil, err
	}

	opts := &figma.FileOptions{}
	if in.Depth != nil {
		opts.Depth = *in.Depth
	}
	raw, err := s.client.GetFileRaw(ctx, key, opts)
	if err != nil {
		return nil, nil, err
	}
	return rawResult(raw)
}

func (s *Server) getFigmaNode(ctx context.Context, req *mcp.CallToolRequest, in nodeInput) (*mcp.CallToolResult, any, error) {
	key, err := locator.FileKey(in.FileURLOrKey)
	if err != nil {
		return nil, nil, err
	}

	normalized := locator.NormalizeNodeID(in.NodeID)
	nodes, err := s.client.GetFileNodes(ctx, key, []string{normalized})
	if err != nil {
		return nil, nil, err
	}

	entry := nodes.Nodes[normalized]
	if entry == nil || entry.Document == nil {
		return textResult(map[string]any{
			"error": fmt.Sprintf("Node %s not found", in.NodeID),
		})
	}
	return textResult(map[string]any{
		"node": summary.Summarize(entry.Document, true),
	})
}

func (s *Server) listFrames(ctx context.Context, req *mcp.CallToolRequest, in fileRef) (*mcp.CallToolResult, any, error) {
	// Two levels is all the container scan inspects.
	depth := 2
	file, err := s.fetchFile(ctx, in.FileURLOrKey, &depth)
	if err != nil {
		return nil, nil, err
	}

	frames := query.TopLevelContainers(file.Document)
	if frames == nil {
		frames = []query.Container{}
	}
	return textResult(map[string]any{
		"fileName":   file.Name,
		"frameCount": len(frames),
		"frames":     frames,
	})
}

func (s *Server) findFrameByName(ctx context.Context, req *mcp.CallToolRequest, in nameInput) (*mcp.CallToolResult, any, error) {
	file, err := s.fetchFile(ctx, in.FileURLOrKey, nil)
	if err != nil {
		return nil, nil, err
	}

	node, err := query.FindByName(file.Document, in.Name)
	if err != nil {
		return nil, nil, err
	}
	if node == nil {
		return textResult(map[string]any{
			"error":           fmt.Sprintf("Frame %q not found", in.Name),
			"availableFrames": frameNames(file.Document, maxAlternatives),
			"hint":            "Try one of the available frame names listed above",
		})
	}

	return textResult(map[string]any{
		"found":  true,
		"node":   summary.Summarize(node, true),
		"styles": style.Extract(node),
	})
}

func (s *Server) getFrameFull(ctx context.Context, req *mcp.CallToolRequest, in nameInput) (*mcp.CallToolResult, any, error) {
	file, err := s.fetchFile(ctx, in.FileURLOrKey, nil)
	if err != nil {
		return nil, nil, err
	}

	node, err := query.FindByName(file.Document, in.Name)
	if err != nil {
		return nil, nil, err
	}
	if node == nil {
		return textResult(map[string]any{
			"error": fmt.Sprintf("Frame %q not found", in.Name),
		})
	}
	return textResult(node)
}

func (s *Server) listComponents(ctx context.Context, req *mcp.CallToolRequest, in fileRef) (*mcp.CallToolResult, any, error) {
	file, err := s.fetchFile(ctx, in.FileURLOrKey, nil)
	if err != nil {
		return nil, nil, err
	}

	components, err := query.AllComponents(file.Document)
	if err != nil {
		return nil, nil, err
	}
	if components == nil {
		components = []query.ComponentRef{}
	}
	return textResult(map[string]any{
		"fileName":       file.Name,
		"componentCount": len(components),
		"components":     components,
	})
}

func (s *Server) searchNodes(ctx context.Context, req *mcp.CallToolRequest, in searchInput) (*mcp.CallToolResult, any, error) {
	file, err := s.fetchFile(ctx, in.FileURLOrKey, nil)
	if err != nil {
		return nil, nil, err
	}

	index, err := search.New()
	if err != nil {
		return nil, nil, err
	}
	defer index.Close()

	if _, err := index.AddDocument(file.Document); err != nil {
		return nil, nil, err
	}
	hits, err := index.Search(in.Query, in.Limit)
	if err != nil {
		return nil, nil, err
	}
	if hits == nil {
		hits = []search.Hit{}
	}
	return textResult(map[string]any{
		"fileName": file.Name,
		"query":    in.Query,
		"hitCount": len(hits),
		"hits":     hits,
	})
}

func (s *Server) renderNodeImage(ctx context.Context, req *mcp.CallToolRequest, in renderInput) (*mcp.CallToolResult, any, error) {
	key, err := locator.FileKey(in.FileURLOrKey)
	if err != nil {
		return nil, nil, err
	}

	format := figma.FormatPNG
	if in.Format != "" {
		format = figma.ImageFormat(in.Format)
	}
	if !format.Valid() {
		return nil, nil, fmt.Errorf("unsupported image format %q (must be png, jpg, svg, or pdf)", in.Format)
	}

	opts := &figma.ImageOptions{Format: format}
	if in.Scale != nil {
		opts.Scale = *in.Scale
	}

	normalized := locator.NormalizeNodeID(in.NodeID)
	images, err := s.client.GetImages(ctx, key, []string{normalized}, opts)
	if err != nil {
		return nil, nil, err
	}

	imageURL := images.Images[normalized]
	if imageURL == "" {
		return textResult(map[string]any{
			"error":   fmt.Sprintf("Failed to render node %s", in.NodeID),
			"details": images.Err,
		})
	}
	return textResult(map[string]any{
		"nodeId":   in.NodeID,
		"format":   string(format),
		"imageUrl": imageURL,
	})
}

func (s *Server) getFileStyles(ctx context.Context, req *mcp.CallToolRequest, in fileRef) (*mcp.CallToolResult, any, error) {
	return s.passThrough(ctx, in.FileURLOrKey, s.client.GetFileStyles)
}

func (s *Server) getFileVariables(ctx context.Context, req *mcp.CallToolRequest, in fileRef) (*mcp.CallToolResult, any, error) {
	return s.passThrough(ctx, in.FileURLOrKey, s.client.GetLocalVariables)
}

func (s *Server) getFileComments(ctx context.Context, req *mcp.CallToolRequest, in fileRef) (*mcp.CallToolResult, any, error) {
	return s.passThrough(ctx, in.FileURLOrKey, s.client.GetComments)
}

func (s *Server) getTeamProjects(ctx context.Context, req *mcp.CallToolRequest, in teamInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.GetTeamProjects(ctx, in.TeamID)
	if err != nil {
		return nil, nil, err
	}
	return rawResult(raw)
}

func (s *Server) getProjectFiles(ctx context.Context, req *mcp.CallToolRequest, in projectInput) (*mcp.CallToolResult, any, error) {
	raw, err := s.client.GetProjectFiles(ctx, in.ProjectID)
	if err != nil {
		return nil, nil, err
	}
	return rawResult(raw)
}

// fetchFile resolves the locator and fetches the file, optionally depth
// limited.
func (s *Server) fetchFile(ctx context.Context, urlOrKey string, depth *int) (*figma.File, error) {
	key, err := locator.FileKey(urlOrKey)
	if err != nil {
		return nil, err
	}

	var opts *figma.FileOptions
	if depth != nil {
		opts = &figma.FileOptions{Depth: *depth}
	}
	return s.client.GetFile(ctx, key, opts)
}

// passThrough resolves the locator and relays an endpoint's raw response.
func (s *Server) passThrough(ctx context.Context, urlOrKey string, fetch func(context.Context, string) (json.RawMessage, error)) (*mcp.CallToolResult, any, error) {
	key, err := locator.FileKey(urlOrKey)
	if err != nil {
		return nil, nil, err
	}
	raw, err := fetch(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	return rawResult(raw)
}

// frameNames returns up to limit top-level container names, for
// suggesting alternatives after a failed lookup.
func frameNames(root *figma.Node, limit int) []string {
	frames := query.TopLevelContainers(root)
	names := make([]string, 0, limit)
	for _, frame := range frames {
		if len(names) == limit {
			break
		}
		names = append(names, frame.Name)
	}
	return names
}

// textResult serializes v as indented JSON text content.
func textResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
	}, nil, nil
}

// rawResult re-indents an upstream response and relays it verbatim.
func rawResult(raw json.RawMessage) (*mcp.CallToolResult, any, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: buf.String()}},
	}, nil, nil
}
