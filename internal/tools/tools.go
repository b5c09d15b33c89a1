// Package tools exposes the team roster and the statistics dashboard as MCP tools.
package tools

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/reyes-code/football-stats-service/internal/app/statistics"
	"github.com/reyes-code/football-stats-service/internal/app/teams"
	"github.com/reyes-code/football-stats-service/internal/logging"
	"github.com/reyes-code/football-stats-service/internal/viewmodel"
)

const (
	serverName = "football-stats-mcp"

	ToolListTeams      = "list_teams"
	ToolTeamStatistics = "team_statistics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ListTeamsArgs is the (empty) input of list_teams.
type ListTeamsArgs struct{}

// TeamStatisticsArgs is the input of team_statistics.
type TeamStatisticsArgs struct {
	TeamID int `json:"team_id" jsonschema:"API-Football team id (required)"`
}

type toolset struct {
	loader  *teams.Loader
	fetcher *statistics.Fetcher
	logger  *slog.Logger
}

// NewServer registers list_teams and team_statistics on a new MCP server.
func NewServer(loader *teams.Loader, fetcher *statistics.Fetcher, version string, logger *slog.Logger) *mcp.Server {
	if version == "" {
		version = "dev"
	}
	ts := &toolset{loader: loader, fetcher: fetcher, logger: logger}

	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolListTeams,
		Description: "Teams of the configured league and season",
	}, ts.listTeams)
	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolTeamStatistics,
		Description: "Season dashboard for one team: form, fixtures, goals, penalties, formations and cards",
	}, ts.teamStatistics)
	return server
}

// NewHTTPHandler serves server over streamable HTTP with plain JSON responses.
func NewHTTPHandler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func (t *toolset) listTeams(ctx context.Context, _ *mcp.CallToolRequest, _ ListTeamsArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(t.loader.Load(ctx))
}

func (t *toolset) teamStatistics(ctx context.Context, _ *mcp.CallToolRequest, args TeamStatisticsArgs) (*mcp.CallToolResult, any, error) {
	state := t.fetcher.Fetch(ctx, strconv.Itoa(args.TeamID))
	if state.Phase != statistics.PhaseLoaded {
		logging.Warn(logging.FromContext(ctx, t.logger), "team_statistics tool failed",
			slog.Int(logging.FieldTeamID, args.TeamID),
			slog.Any(logging.FieldError, state.Err),
		)
		return toolError(state.Message), nil, nil
	}
	return toolJSON(viewmodel.Build(state.Stats, t.fetcher.Season()))
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(fmt.Sprintf("encode result: %v", err)), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: string(b)}},
	}, nil, nil
}

func toolError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: message}},
	}
}
