package dashboard

// ChartJS is a bar chart configuration in the Chart.js schema. Callbacks
// cannot be serialized, so tick texts, tick colors and tooltip texts are
// precomputed per index.
type ChartJS struct {
	Type    string         `json:"type"`
	Data    ChartJSData    `json:"data"`
	Options ChartJSOptions `json:"options"`
}

// ChartJSData holds labels and datasets.
type ChartJSData struct {
	Labels   []string         `json:"labels"`
	Datasets []ChartJSDataset `json:"datasets"`
}

// ChartJSDataset is one stacked series.
type ChartJSDataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BackgroundColor []string  `json:"backgroundColor"`
	BorderColor     []string  `json:"borderColor"`
	BorderWidth     []int     `json:"borderWidth"`
	Stack           string    `json:"stack"`
}

// ChartJSOptions mirrors the options object of a bar chart.
type ChartJSOptions struct {
	Responsive bool           `json:"responsive"`
	Scales     ChartJSScales  `json:"scales"`
	Plugins    ChartJSPlugins `json:"plugins"`
}

// ChartJSScales holds both axes.
type ChartJSScales struct {
	X ChartJSAxis `json:"x"`
	Y ChartJSAxis `json:"y"`
}

// ChartJSAxis is one stacked axis.
type ChartJSAxis struct {
	Stacked bool         `json:"stacked"`
	Title   ChartJSTitle `json:"title"`
	Grid    ChartJSGrid  `json:"grid"`
	Ticks   ChartJSTicks `json:"ticks"`
}

// ChartJSTitle is an axis or chart title.
type ChartJSTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// ChartJSGrid styles grid lines.
type ChartJSGrid struct {
	Color string `json:"color"`
}

// ChartJSTicks carries precomputed tick texts and colors.
type ChartJSTicks struct {
	Color  []string `json:"color,omitempty"`
	Labels []string `json:"labels,omitempty"`
	Format string   `json:"format,omitempty"`
}

// ChartJSPlugins holds legend, tooltip, title and the divider overlay.
type ChartJSPlugins struct {
	Legend           ChartJSLegend   `json:"legend"`
	Tooltip          ChartJSTooltip  `json:"tooltip"`
	Title            ChartJSTitle    `json:"title"`
	TestamentDivider *ChartJSDivider `json:"testamentDivider,omitempty"`
}

// ChartJSLegend positions the legend.
type ChartJSLegend struct {
	Display  bool   `json:"display"`
	Position string `json:"position"`
}

// ChartJSTooltip has one label per dataset and index and one footer per index.
type ChartJSTooltip struct {
	Mode    string     `json:"mode"`
	Labels  [][]string `json:"labels"`
	Footers []string   `json:"footers"`
}

// ChartJSDivider places the dashed testament separator.
type ChartJSDivider struct {
	Index int    `json:"index"`
	Color string `json:"color"`
	Dash  []int  `json:"dash"`
}

// ChartJS converts the chart to the Chart.js schema. An empty chart keeps
// empty arrays so hosts can skip drawing.
func (c Chart) ChartJS() ChartJS {
	n := len(c.Set.Labels)
	unit := c.Unit()

	datasets := make([]ChartJSDataset, 0, len(c.Set.Series))
	labels := make([][]string, 0, len(c.Set.Series))
	for _, s := range c.Set.Series {
		datasets = append(datasets, ChartJSDataset{
			Label:           s.Name,
			Data:            s.Data,
			BackgroundColor: s.BackgroundColor,
			BorderColor:     s.BorderColor,
			BorderWidth:     s.BorderWidth,
			Stack:           s.Stack,
		})
		texts := make([]string, len(s.Data))
		for i, v := range s.Data {
			texts[i] = TooltipLabel(s.Name, v, unit)
		}
		labels = append(labels, texts)
	}

	xTicks := ChartJSTicks{Labels: make([]string, n)}
	if c.SundayTicks {
		xTicks.Color = make([]string, n)
	}
	footers := make([]string, n)
	for i := range n {
		xTicks.Labels[i] = c.XTick(i)
		if c.SundayTicks {
			xTicks.Color[i] = c.XTickColor(i)
		}
		footers[i] = c.Footer(i)
	}

	yTicks := ChartJSTicks{}
	if c.DurationTicks {
		yTicks.Format = "duration"
	}

	cfg := ChartJS{
		Type: "bar",
		Data: ChartJSData{Labels: c.Set.Labels, Datasets: datasets},
		Options: ChartJSOptions{
			Responsive: true,
			Scales: ChartJSScales{
				X: ChartJSAxis{Stacked: true, Grid: ChartJSGrid{Color: GridColor}, Ticks: xTicks},
				Y: ChartJSAxis{
					Stacked: true,
					Title:   ChartJSTitle{Display: true, Text: c.AxisTitle},
					Grid:    ChartJSGrid{Color: GridColor},
					Ticks:   yTicks,
				},
			},
			Plugins: ChartJSPlugins{
				Legend:  ChartJSLegend{Display: true, Position: "top"},
				Tooltip: ChartJSTooltip{Mode: "index", Labels: labels, Footers: footers},
				Title:   ChartJSTitle{Display: true, Text: c.Title},
			},
		},
	}
	if DividerEnabled(c.Divider, n) {
		cfg.Options.Plugins.TestamentDivider = &ChartJSDivider{Index: c.Divider, Color: DividerColor, Dash: []int{6, 4}}
	}
	return cfg
}
