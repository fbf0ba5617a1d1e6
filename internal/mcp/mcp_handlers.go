package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/faithboard/faithboard/internal/bible"
	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/internal/faith"
	"github.com/faithboard/faithboard/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg  *contract.Config
	provider contract.StatsProvider
}

// bookTiers is one book of get_bible_stats in a single view.
type bookTiers struct {
	Book      string                `json:"book"`
	Testament bible.Testament       `json:"testament"`
	Tiers     map[schema.Tier]int64 `json:"tiers"`
	Total     int64                 `json:"total"`
}

// bibleResult is the payload of get_bible_stats.
type bibleResult struct {
	View           schema.ViewMode       `json:"view"`
	Books          []bookTiers           `json:"books"`
	OldTestament   map[schema.Tier]int64 `json:"old_testament"`
	NewTestament   map[schema.Tier]int64 `json:"new_testament"`
	GrandTotal     int64                 `json:"grand_total"`
	MatureFraction float64               `json:"mature_fraction"`
}

func textResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) viewArg(request mcp.CallToolRequest) (schema.ViewMode, error) {
	v := schema.ViewMode(strings.ToLower(request.GetString("view", "")))
	if v == "" {
		if h.baseCfg != nil && h.baseCfg.View != "" {
			return h.baseCfg.View, nil
		}
		return schema.VersesView, nil
	}
	if _, ok := schema.ValidViewModes[v]; !ok {
		return "", fmt.Errorf("invalid view '%s'. must be verses, passages", v)
	}
	return v, nil
}

func (h *toolHandler) unitArg(request mcp.CallToolRequest) (schema.TimeUnit, error) {
	u := schema.TimeUnit(strings.ToLower(request.GetString("unit", "")))
	if u == "" {
		if h.baseCfg != nil && h.baseCfg.Unit != "" {
			return h.baseCfg.Unit, nil
		}
		return schema.MinutesUnit, nil
	}
	if _, ok := schema.ValidTimeUnits[u]; !ok {
		return "", fmt.Errorf("invalid unit '%s'. must be minutes, hours", u)
	}
	return u, nil
}

func tierCounts(view schema.ViewMode, tier func(schema.Tier, schema.ViewMode) int64) (map[schema.Tier]int64, int64) {
	counts := make(map[schema.Tier]int64, len(schema.AllTiers))
	var total int64
	for _, t := range schema.AllTiers {
		n := tier(t, view)
		counts[t] = n
		total += n
	}
	return counts, total
}

func (h *toolHandler) handleGetBibleStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	view, err := h.viewArg(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	stats, err := h.provider.BibleStats(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("bible stats failed: %v", err)), nil
	}

	res := bibleResult{View: view, Books: []bookTiers{}}
	for _, b := range dashboard.BibleBooks(stats) {
		counts, total := tierCounts(view, b.Tier)
		testament := bible.OldTestament
		if bible.IsNewTestament(b.Book) {
			testament = bible.NewTestament
		}
		res.Books = append(res.Books, bookTiers{Book: b.Book, Testament: testament, Tiers: counts, Total: total})
	}
	var ot, nt int64
	res.OldTestament, ot = tierCounts(view, stats.OldTestament.Tier)
	res.NewTestament, nt = tierCounts(view, stats.NewTestament.Tier)
	res.GrandTotal = ot + nt
	if res.GrandTotal > 0 {
		mature := res.OldTestament[schema.MatureTier] + res.NewTestament[schema.MatureTier]
		res.MatureFraction = float64(mature) / float64(res.GrandTotal)
	}
	return textResult(res), nil
}

func (h *toolHandler) handleGetFaithToday(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	today, err := h.provider.FaithToday(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("faith today failed: %v", err)), nil
	}
	return textResult(today), nil
}

func (h *toolHandler) handleGetFaithDaily(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.provider.FaithDaily(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("faith daily failed: %v", err)), nil
	}
	return textResult(stats), nil
}

func (h *toolHandler) handleGetFaithWeekly(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.provider.FaithWeekly(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("faith weekly failed: %v", err)), nil
	}
	return textResult(stats), nil
}

func (h *toolHandler) handleGetTopPlaces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 0)
	if limit < 0 || limit > contract.MaxPlacesLimit {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: limit must be between 1 and %d", contract.MaxPlacesLimit)), nil
	}

	places, err := h.provider.TopPlaces(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("top places failed: %v", err)), nil
	}
	if limit > 0 && len(places) > limit {
		places = places[:limit]
	}
	if places == nil {
		places = []schema.PlaceStats{}
	}
	return textResult(places), nil
}

func (h *toolHandler) handleGetChart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := faith.ParseChartName(request.GetString("name", ""))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	view, err := h.viewArg(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}
	unit, err := h.unitArg(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid parameters: %v", err)), nil
	}

	opts := dashboard.Options{View: view, Unit: unit}
	if h.baseCfg != nil {
		opts.HideEmpty = h.baseCfg.HideEmpty
	}
	c, err := faith.BuildChart(ctx, h.provider, name, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("chart failed: %v", err)), nil
	}
	return textResult(c.ChartJS()), nil
}
