package mcp

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"clubhub/internal/application"
	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
)

// RegisterWriteTools adds one tool per deck operation plus swipe and rewind.
func RegisterWriteTools(s *server.MCPServer, session *application.Session) {
	for _, op := range commands.Operations {
		s.AddTool(operationTool(op), operationHandler(session, op))
	}
	paginate := commands.Operation{Name: commands.OpPaginate, Title: "Append a fresh page of spots at the end"}
	s.AddTool(operationTool(paginate), operationHandler(session, paginate))

	s.AddTool(swipeTool(), swipeHandler(session))
	s.AddTool(rewindTool(), rewindHandler(session))
}

// ToolName maps an operation name to its tool name
func ToolName(op string) string {
	return strings.ReplaceAll(op, "-", "_")
}

// --- deck operations ---

func operationTool(op commands.Operation) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(op.Title + ". Returns the edit script summary."),
	}
	if op.TakesCount {
		opts = append(opts, mcp.WithNumber("count",
			mcp.Description("Number of spots (1-100, default 1)"),
		))
	}
	return mcp.NewTool(ToolName(op.Name), opts...)
}

func operationHandler(session *application.Session, op commands.Operation) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd, err := commands.NewOperationCommand(session, op.Name, req.GetInt("count", 1))
		if err != nil {
			return toolError(err)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- swipe ---

func swipeTool() mcp.Tool {
	return mcp.NewTool("swipe",
		mcp.WithDescription("Swipe the card on top: like (right) or skip (left). Loads more spots when the stack runs low."),
		mcp.WithString("direction",
			mcp.Description("like, skip, right or left"),
			mcp.Required(),
		),
	)
}

func swipeHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir, err := domain.ParseDirection(req.GetString("direction", ""))
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewSwipeCommand(session, dir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- rewind ---

func rewindTool() mcp.Tool {
	return mcp.NewTool("rewind",
		mcp.WithDescription("Bring the last swiped card back on top."),
	)
}

func rewindHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRewindCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
