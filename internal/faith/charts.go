package faith

import (
	"context"
	"fmt"
	"strings"

	"github.com/faithboard/faithboard/internal/contract"
	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/faithboard/faithboard/schema"
)

// ParseChartName resolves a chart name, ignoring case.
func ParseChartName(name string) (schema.ChartName, error) {
	chart := schema.ChartName(strings.ToLower(strings.TrimSpace(name)))
	for _, c := range schema.AllCharts {
		if c == chart {
			return c, nil
		}
	}
	names := make([]string, len(schema.AllCharts))
	for i, c := range schema.AllCharts {
		names[i] = string(c)
	}
	return "", fmt.Errorf("unknown chart '%s'. must be %s", name, strings.Join(names, ", "))
}

// BuildChart loads the data of a chart from the provider and derives it.
func BuildChart(ctx context.Context, p contract.StatsProvider, name schema.ChartName, opts dashboard.Options) (dashboard.Chart, error) {
	switch name {
	case schema.BibleChart:
		stats, err := p.BibleStats(ctx)
		if err != nil {
			return dashboard.Chart{}, err
		}
		return dashboard.BibleChart(stats, opts), nil
	case schema.DailyChart:
		stats, err := p.FaithDaily(ctx)
		if err != nil {
			return dashboard.Chart{}, err
		}
		return dashboard.DailyChart(stats.Days, opts), nil
	case schema.WeeklyChart:
		stats, err := p.FaithWeekly(ctx)
		if err != nil {
			return dashboard.Chart{}, err
		}
		return dashboard.WeeklyChart(stats.Weeks, opts), nil
	case schema.ChurchChart:
		weeks, err := p.ChurchWeeks(ctx)
		if err != nil {
			return dashboard.Chart{}, err
		}
		return dashboard.ChurchChart(weeks, opts), nil
	case schema.PlacesChart:
		places, err := p.TopPlaces(ctx)
		if err != nil {
			return dashboard.Chart{}, err
		}
		return dashboard.PlacesChart(places), nil
	default:
		return dashboard.Chart{}, fmt.Errorf("unknown chart '%s'", name)
	}
}
