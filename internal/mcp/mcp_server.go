// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Faithboard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, provider contract.StatsProvider) *server.MCPServer {
	s := server.NewMCPServer(
		"Faithboard Stats Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:  baseCfg,
		provider: provider,
	}

	// --- 1. Tool: get_bible_stats ---
	s.AddTool(mcp.NewTool("get_bible_stats",
		mcp.WithDescription("Bible memorization progress per book, with tier counts and testament totals."),
		mcp.WithString("view", mcp.Description("Count verses or passages. Defaults to the configured view."), mcp.Enum("verses", "passages")),
	), h.handleGetBibleStats)

	// --- 2. Tool: get_faith_today ---
	s.AddTool(mcp.NewTool("get_faith_today",
		mcp.WithDescription("Today's minutes of Anki review, Bible reading and prayer."),
	), h.handleGetFaithToday)

	// --- 3. Tool: get_faith_daily ---
	s.AddTool(mcp.NewTool("get_faith_daily",
		mcp.WithDescription("Daily Anki, reading and prayer minutes with a summary, oldest day first."),
	), h.handleGetFaithDaily)

	// --- 4. Tool: get_faith_weekly ---
	s.AddTool(mcp.NewTool("get_faith_weekly",
		mcp.WithDescription("Weekly Anki, reading, church and prayer minutes with a summary, oldest week first."),
	), h.handleGetFaithWeekly)

	// --- 5. Tool: get_top_places ---
	s.AddTool(mcp.NewTool("get_top_places",
		mcp.WithDescription("Places with the most hours spent in the configured window, excluding home."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of places returned.")),
	), h.handleGetTopPlaces)

	// --- 6. Tool: get_chart ---
	s.AddTool(mcp.NewTool("get_chart",
		mcp.WithDescription("Chart.js configuration of a dashboard chart."),
		mcp.WithString("name", mcp.Description("The chart to build."), mcp.Required(), mcp.Enum("bible", "daily", "weekly", "church", "places")),
		mcp.WithString("view", mcp.Description("Count verses or passages (bible chart)."), mcp.Enum("verses", "passages")),
		mcp.WithString("unit", mcp.Description("Show minutes or hours (time charts)."), mcp.Enum("minutes", "hours")),
	), h.handleGetChart)

	return s
}

// StartMCPServer starts the Faithboard MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, provider contract.StatsProvider) error {
	s := NewMCPServer(baseCfg, provider)
	return server.ServeStdio(s)
}
