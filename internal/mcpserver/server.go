// Package mcpserver exposes the dispatcher's tools over the Model Context Protocol.
package mcpserver

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/bytedance/sonic"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"

	"fapimcp/pkg/core"
	"fapimcp/pkg/dispatch"
)

// Server wraps an MCP server whose every tool routes through one Dispatcher.
type Server struct {
	dispatcher *dispatch.Dispatcher
	mcpServer  *server.MCPServer
	logger     zerolog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for protocol-level diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// New creates a Server named name and registers every tool of the dispatcher's registry.
func New(name, version string, d *dispatch.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: d,
		mcpServer: server.NewMCPServer(name, version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying protocol server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves JSON-RPC on stdin and stdout until stdin closes.
func (s *Server) ServeStdio() error {
	errLog := log.New(s.logger, "", 0)
	return server.ServeStdio(s.mcpServer, server.WithErrorLogger(errLog))
}

func (s *Server) registerTools() {
	for _, tool := range s.dispatcher.Registry().Tools() {
		s.mcpServer.AddTool(BuildTool(tool), s.handler(tool.Name))
	}
	s.logger.Debug().Int("tools", s.dispatcher.Registry().Len()).Msg("tools registered")
}

func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.dispatcher.Dispatch(ctx, name, r.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := sonic.ConfigStd.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
		}
		return mcp.NewToolResultText(string(text)), nil
	}
}

// BuildTool converts a ToolSpec into an mcp.Tool with the matching input schema.
func BuildTool(tool core.ToolSpec) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(tool.Description)}
	for _, p := range tool.Params {
		opts = append(opts, buildParamOption(p))
	}
	return mcp.NewTool(tool.Name, opts...)
}

func buildParamOption(p core.ParamSpec) mcp.ToolOption {
	var opts []mcp.PropertyOption
	if p.Description != "" {
		opts = append(opts, mcp.Description(p.Description))
	}
	if p.Required {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case core.ParamInteger, core.ParamNumber:
		if n, ok := numericDefault(p.Default); ok {
			opts = append(opts, mcp.DefaultNumber(n))
		}
		return mcp.WithNumber(p.Name, opts...)
	case core.ParamBoolean:
		if b, ok := p.Default.(bool); ok {
			opts = append(opts, mcp.DefaultBool(b))
		}
		return mcp.WithBoolean(p.Name, opts...)
	case core.ParamDecimal:
		opts = append(opts, mcp.Pattern(dispatch.DecimalPattern))
		return mcp.WithString(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		if str, ok := p.Default.(string); ok {
			opts = append(opts, mcp.DefaultString(str))
		}
		return mcp.WithString(p.Name, opts...)
	}
}

func numericDefault(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
