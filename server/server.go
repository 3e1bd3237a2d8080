package server

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/figtreehq/figtree/figma"
)

// maxAlternatives caps the frame names suggested after a failed name
// lookup.
const maxAlternatives = 20

// ErrNoClient reports a Config without a Figma client.
var ErrNoClient = errors.New("server: figma client is required")

const instructions = `This server provides tools to interact with the Figma API.
You can fetch file data, find nodes, list frames and components, search
node text, and render images.

Most tools take a file_url_or_key parameter. Provide either a Figma file
URL (e.g. https://www.figma.com/design/ABC123/MyFile) or a file key
directly (e.g. ABC123).`

// ServerInfo names this server in the MCP initialize handshake.
type ServerInfo struct {
	Name    string
	Version string
}

// Config configures a Server.
type Config struct {
	// Client performs all Figma API access. Required.
	Client *figma.Client
	// Info defaults to "figtree" / "dev".
	Info ServerInfo
	// Logger defaults to slog.Default.
	Logger *slog.Logger
}

// Server exposes the document query engine as MCP tools.
type Server struct {
	client *figma.Client
	logger *slog.Logger
	mcp    *mcp.Server
}

// New creates a Server and registers all tools.
func New(cfg Config) (*Server, error) {
	if cfg.Client == nil {
		return nil, ErrNoClient
	}

	info := cfg.Info
	if info.Name == "" {
		info.Name = "figtree"
	}
	if info.Version == "" {
		info.Version = "dev"
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		client: cfg.Client,
		logger: logger,
		mcp: mcp.NewServer(
			&mcp.Implementation{Name: info.Name, Version: info.Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	return s, nil
}

func (s *Server) registerTools() {
	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "parse_figma_url",
		Description: "Parse a Figma URL to extract the file key and node ID.",
	}, s.parseFigmaURL)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_figma_file",
		Description: "Fetch a Figma file's metadata and a bounded summary of its document tree.",
	}, s.getFigmaFile)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_figma_file_full",
		Description: "Fetch a Figma file's complete document tree (full data, not summarized).",
	}, s.getFigmaFileFull)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_figma_node",
		Description: "Fetch a specific node by ID and return its bounded summary.",
	}, s.getFigmaNode)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_frames",
		Description: "List all top-level frames and components in a Figma file.",
	}, s.listFrames)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "find_frame_by_name",
		Description: "Find a frame or component by name (case-insensitive) and return its summary and styles.",
	}, s.findFrameByName)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_frame_full",
		Description: "Get complete data for a frame found by name (for code generation).",
	}, s.getFrameFull)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "list_components",
		Description: "List all components, component sets, and instances in a Figma file.",
	}, s.listComponents)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "search_nodes",
		Description: "Full-text search over node names, types, and text content in a Figma file.",
	}, s.searchNodes)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "render_node_image",
		Description: "Render a node as an image and return the download URL.",
	}, s.renderNodeImage)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_file_styles",
		Description: "Get published styles from a Figma file (text, fill, effect, grid).",
	}, s.getFileStyles)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_file_variables",
		Description: "Get design variables from a Figma file (Enterprise feature).",
	}, s.getFileVariables)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_file_comments",
		Description: "Get all comments on a Figma file.",
	}, s.getFileComments)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_team_projects",
		Description: "List all projects in a Figma team.",
	}, s.getTeamProjects)

	mcp.AddTool(s.mcp, &mcp.Tool{
		Name:        "get_project_files",
		Description: "List all files in a Figma project.",
	}, s.getProjectFiles)
}

// Run serves MCP over stdio until the context is cancelled or stdin
// closes.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving mcp over stdio")
	return s.mcp.Run(ctx, &mcp.StdioTransport{})
}

// Serve runs the server over a custom transport (useful for tests and
// in-process clients).
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	return s.mcp.Run(ctx, transport)
}
