package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-divide/pkg/calculator"
	"github.com/sunfmin/mcp-go-divide/pkg/config"
	"github.com/sunfmin/mcp-go-divide/pkg/logger"
	"github.com/sunfmin/mcp-go-divide/pkg/types"
)

// DivideServer encapsulates the MCP server with the divide tool
type DivideServer struct {
	server  *server.MCPServer
	name    string
	version string

	served    atomic.Uint64
	succeeded atomic.Uint64
	failed    atomic.Uint64
}

// NewDivideServer creates a new MCP server exposing the divide tool
func NewDivideServer(cfg config.Config, version string) *DivideServer {
	s := &DivideServer{
		server:  server.NewMCPServer(cfg.Server.Name, version),
		name:    cfg.Server.Name,
		version: version,
	}

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *DivideServer) Server() *server.MCPServer {
	return s.server
}

func (s *DivideServer) registerTools() {
	s.addPingTool()
	s.addDivideTool()
	s.addStatusTool()
}

// addPingTool adds a simple ping tool for health checks
func (s *DivideServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

func (s *DivideServer) addDivideTool() {
	divideTool := mcp.NewTool("divide",
		mcp.WithDescription("Divide two numbers. Division by zero returns a structured DIVISION_BY_ZERO error"),
		mcp.WithNumber("dividend",
			mcp.Required(),
			mcp.Description("Number to divide"),
		),
		mcp.WithNumber("divisor",
			mcp.Required(),
			mcp.Description("Number to divide by"),
		),
	)

	s.server.AddTool(divideTool, s.Divide)
}

func (s *DivideServer) addStatusTool() {
	statusTool := mcp.NewTool("status",
		mcp.WithDescription("Report server identity and how many divisions were served"),
	)

	s.server.AddTool(statusTool, s.Status)
}

// Ping handles the ping command
func (s *DivideServer) Ping(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")
	return mcp.FormatNumberResult(1.0), nil
}

// Divide handles the divide command. The result text is always the
// serialized outcome; failures also set IsError.
func (s *DivideServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := logger.With("request_id", uuid.NewString(), "tool", "divide")
	log.Debug("Received divide request", "arguments", request.Params.Arguments)

	s.served.Add(1)

	var outcome types.Outcome
	req, err := calculator.RequestFromArguments(request.Params.Arguments)
	if err != nil {
		log.Warn("Rejected divide arguments", "error", err)
		outcome = types.Failure(types.ErrorDetails{
			Code:    types.CodeInvalidInput,
			Message: err.Error(),
		})
	} else {
		outcome = calculator.Divide(req)
	}

	if e := outcome.Err(); e != nil {
		s.failed.Add(1)
		log.Info("Division failed", "code", e.Code, "message", e.Message)
	} else {
		s.succeeded.Add(1)
		log.Debug("Division succeeded", "dividend", req.Dividend(), "divisor", req.Divisor())
	}

	result, err := newToolResultJSON(outcome)
	if err == nil && !outcome.OK() {
		result.IsError = true
	}
	return result, err
}

// Status handles the status command
func (s *DivideServer) Status(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received status request")

	response := types.StatusResponse{
		Status: "success",
		Server: types.ServerInfo{
			Name:    s.name,
			Version: s.version,
		},
		Divisions: s.Stats(),
	}

	return newToolResultJSON(response)
}

// Stats returns the division counters
func (s *DivideServer) Stats() types.DivisionStats {
	return types.DivisionStats{
		Served:    s.served.Load(),
		Succeeded: s.succeeded.Load(),
		Failed:    s.failed.Load(),
	}
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		logger.Error("Failed to serialize result", "error", err)
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
