package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"clubhub/internal/adapters/catalog"
	"clubhub/internal/application"
	"clubhub/internal/application/commands"
	"clubhub/internal/domain"
	"clubhub/internal/ports"
)

// RegisterReadTools adds the tools that inspect the deck without changing it.
func RegisterReadTools(s *server.MCPServer, session *application.Session, repo ports.DeckRepository) {
	s.AddTool(showTool(), showHandler(session))
	s.AddTool(swipesTool(), swipesHandler(repo))
	s.AddTool(diffTool(), diffHandler())
}

// --- show ---

func showTool() mcp.Tool {
	return mcp.NewTool("show",
		mcp.WithDescription("Show the card stack. The card on top is marked with ▶; swiped cards are listed above it."),
		mcp.WithNumber("visible",
			mcp.Description("Only show this many cards starting from the top. Omit to show the whole deck."),
		),
	)
}

func showHandler(session *application.Session) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		deck, err := commands.NewShowCommand(session).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if visible := req.GetInt("visible", 0); visible > 0 {
			return formatEntities(deck.Visible(visible), formatSpot)
		}
		return mcp.NewToolResultText(FormatDeck(deck)), nil
	}
}

// --- swipes ---

func swipesTool() mcp.Tool {
	return mcp.NewTool("swipes",
		mcp.WithDescription("List the swipe log, newest first."),
		mcp.WithString("filter",
			mcp.Description("Which swipes to list"),
			mcp.Enum("like", "skip", "all"),
		),
	)
}

func swipesHandler(repo ports.DeckRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		dir := domain.DirectionNone
		if filter := req.GetString("filter", "all"); filter != "all" {
			parsed, err := domain.ParseDirection(filter)
			if err != nil {
				return toolError(err)
			}
			dir = parsed
		}

		swipes, err := commands.NewListSwipesCommand(repo, dir).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntities(swipes, formatSwipe)
	}
}

// --- diff ---

func diffTool() mcp.Tool {
	return mcp.NewTool("diff",
		mcp.WithDescription("Compute the edit script that turns one spot sequence into another. Both sequences are YAML documents with a top-level `spots` list of {id, name, type, url}."),
		mcp.WithString("old",
			mcp.Description("YAML of the old sequence"),
			mcp.Required(),
		),
		mcp.WithString("new",
			mcp.Description("YAML of the new sequence"),
			mcp.Required(),
		),
	)
}

func diffHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		old, err := catalog.Parse([]byte(req.GetString("old", "")))
		if err != nil {
			return toolError(fmt.Errorf("old: %w", err))
		}
		updated, err := catalog.Parse([]byte(req.GetString("new", "")))
		if err != nil {
			return toolError(fmt.Errorf("new: %w", err))
		}

		result, err := commands.NewDiffCommand(old, updated).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntities[T any](entities []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entities) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entities {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatSpot(s domain.Spot) string {
	if s.URL == "" {
		return fmt.Sprintf("#%d  %s  (%s)", s.ID, s.Name, s.Type)
	}
	return fmt.Sprintf("#%d  %s  (%s)  %s", s.ID, s.Name, s.Type, s.URL)
}

func formatSwipe(s domain.Swipe) string {
	verb := "skip"
	if s.Direction.Liked() {
		verb = "like"
	}
	return fmt.Sprintf("%s  %-4s  #%d  %s", s.At.Local().Format(time.DateTime), verb, s.Spot.ID, s.Spot.Name)
}

// FormatDeck renders the whole deck one card per line
func FormatDeck(deck domain.Deck) string {
	if deck.Len() == 0 {
		return "The stack is empty."
	}

	var sb strings.Builder
	for i, s := range deck.Spots {
		marker := "  "
		switch {
		case i == deck.Top:
			marker = "▶ "
		case i < deck.Top:
			marker = "✓ "
		}
		sb.WriteString(marker)
		sb.WriteString(formatSpot(s))
		sb.WriteByte('\n')
	}
	if deck.Exhausted() {
		sb.WriteString("(no cards left)\n")
	}
	return sb.String()
}
