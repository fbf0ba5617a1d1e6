// Package render draws dashboard charts as PNG images with go-chart.
package render

import (
	"io"
	"math"
	"strings"

	"github.com/faithboard/faithboard/internal/dashboard"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Default image size.
const (
	DefaultWidth  = 1200
	DefaultHeight = 500
)

// NoDataMessage is drawn when a chart has no visible bars.
const NoDataMessage = "No data to display"

// barFill is the share of a slot a bar occupies.
const barFill = 0.7

// maxTicks bounds the number of category labels drawn on the x axis.
const maxTicks = 40

// Divider stroke. A whole pixel width keeps the line crisp on integer columns.
const (
	dividerWidth = 2.0
	dividerDash  = 6.0
	dividerGap   = 4.0
)

// Day axes draw their own tick labels below the canvas, so they need room.
const (
	tickLabelPadding = 56
	tickLabelGap     = 8
	tickLabelSize    = 9
)

func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// stackedMax returns the tallest stack of the set.
func stackedMax(set dashboard.SeriesSet) float64 {
	var top float64
	for i := range set.Labels {
		var sum float64
		for _, v := range set.Values(i) {
			if v > 0 {
				sum += v
			}
		}
		top = max(top, sum)
	}
	return top
}

// mapper converts category indexes and values to pixels inside the canvas.
type mapper struct {
	box  chart.Box
	n    int
	ymax float64
}

// slot is the width of one category.
func (m mapper) slot() float64 {
	if m.n == 0 {
		return 0
	}
	return float64(m.box.Width()) / float64(m.n)
}

// center returns the x pixel at the middle of bar i.
func (m mapper) center(i int) float64 {
	return float64(m.box.Left) + (float64(i)+0.5)*m.slot()
}

// y returns the pixel of a value.
func (m mapper) y(v float64) int {
	if m.ymax <= 0 {
		return m.box.Bottom
	}
	return m.box.Bottom - int(v/m.ymax*float64(m.box.Height()))
}

func (m mapper) barWidth() int {
	return max(1, int(m.slot()*barFill))
}

func rect(r chart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
}

// barsElement paints the stacks. It runs after the axes so bars sit on the grid.
func barsElement(c dashboard.Chart, ymax float64) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, _ chart.Style) {
		m := mapper{box: box, n: len(c.Set.Labels), ymax: ymax}
		half := m.barWidth() / 2
		for i := range c.Set.Labels {
			x := int(m.center(i))
			base := 0.0
			for _, s := range c.Set.Series {
				if i >= len(s.Data) || s.Data[i] <= 0 {
					continue
				}
				top := base + s.Data[i]
				r.SetFillColor(hexColor(s.BackgroundColor[i]))
				rect(r, x-half, m.y(top), x+half, m.y(base))
				if s.BorderWidth[i] > 0 {
					r.SetStrokeColor(hexColor(s.BorderColor[i]))
					r.SetStrokeWidth(float64(s.BorderWidth[i]))
					r.FillStroke()
				} else {
					r.Fill()
				}
				base = top
			}
		}
	}
}

// dividerElement draws the dashed testament separator on top of the bars.
func dividerElement(c dashboard.Chart) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, _ chart.Style) {
		m := mapper{box: box, n: len(c.Set.Labels)}
		x, ok := dashboard.DividerPixel(c.Divider, m.n, m.center)
		if !ok {
			return
		}
		r.SetStrokeColor(hexColor(dashboard.DividerColor))
		r.SetStrokeWidth(dividerWidth)
		r.SetStrokeDashArray([]float64{dividerDash, dividerGap})
		r.MoveTo(int(x), box.Top)
		r.LineTo(int(x), box.Bottom)
		r.Stroke()
		r.SetStrokeDashArray(nil)
	}
}

// legendElement lists the series above the canvas.
func legendElement(c dashboard.Chart) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(10)
		r.SetFontColor(hexColor(dashboard.LabelColor))
		x := box.Left
		y := box.Top - 12
		for _, s := range c.Set.Series {
			fill := dashboard.UnknownColor
			if len(s.BackgroundColor) > 0 {
				fill = s.BackgroundColor[0]
			}
			r.SetFillColor(hexColor(fill))
			rect(r, x, y-8, x+10, y+2)
			r.Fill()
			r.Text(s.Name, x+14, y+2)
			x += 24 + r.MeasureText(s.Name).Width()
		}
	}
}

// tickIndexes picks the labeled categories, thinning long axes.
func tickIndexes(n int) []int {
	step := max(1, (n+maxTicks-1)/maxTicks)
	idx := make([]int, 0, n/step+1)
	for i := 0; i < n; i += step {
		idx = append(idx, i)
	}
	return idx
}

// xTicks are the axis ticks. go-chart styles every tick label alike, so
// charts with Sunday ticks leave the labels blank for tickLabelsElement.
func xTicks(c dashboard.Chart) []chart.Tick {
	idx := tickIndexes(len(c.Set.Labels))
	ticks := make([]chart.Tick, 0, len(idx))
	for _, i := range idx {
		label := c.XTick(i)
		if c.SundayTicks {
			label = ""
		}
		ticks = append(ticks, chart.Tick{Value: float64(i), Label: label})
	}
	return ticks
}

// tickLabelsElement draws the x labels one by one in their own colors.
func tickLabelsElement(c dashboard.Chart) chart.Renderable {
	return func(r chart.Renderer, box chart.Box, defaults chart.Style) {
		if defaults.Font != nil {
			r.SetFont(defaults.Font)
		}
		r.SetFontSize(tickLabelSize)
		m := mapper{box: box, n: len(c.Set.Labels)}
		r.SetTextRotation(math.Pi / 4)
		defer r.ClearTextRotation()
		for _, i := range tickIndexes(m.n) {
			r.SetFontColor(hexColor(c.XTickColor(i)))
			r.Text(c.XTick(i), int(m.center(i))-tickLabelSize/2, box.Bottom+tickLabelGap)
		}
	}
}

// PNG renders the chart. A chart without bars renders the no-data placeholder.
func PNG(w io.Writer, c dashboard.Chart, width, height int) error {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if c.Set.Empty() {
		return Placeholder(w, NoDataMessage, width, height)
	}
	graph := newGraph(c, width, height)
	return graph.Render(chart.PNG, w)
}

// newGraph lays out the chart. Bars, divider, legend and day labels are
// elements painted over the sized axes.
func newGraph(c dashboard.Chart, width, height int) chart.Chart {
	n := len(c.Set.Labels)
	ymax := stackedMax(c.Set) * 1.1
	if ymax == 0 {
		ymax = 1
	}

	padding := chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20}
	elements := []chart.Renderable{
		barsElement(c, ymax),
		dividerElement(c),
		legendElement(c),
	}
	if c.SundayTicks {
		padding.Bottom = tickLabelPadding
		elements = append(elements, tickLabelsElement(c))
	}

	return chart.Chart{
		Title:  c.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: padding,
		},
		XAxis: chart.XAxis{
			Range: &chart.ContinuousRange{Min: -0.5, Max: float64(n) - 0.5},
			Ticks: xTicks(c),
			Style: chart.Style{
				FontColor:           hexColor(dashboard.LabelColor),
				TextRotationDegrees: 45,
			},
		},
		YAxis: chart.YAxis{
			Name:  c.AxisTitle,
			Range: &chart.ContinuousRange{Min: 0, Max: ymax},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return c.YTick(f)
				}
				return ""
			},
			GridMajorStyle: chart.Style{
				StrokeColor: hexColor(dashboard.GridColor),
				StrokeWidth: 1,
			},
		},
		// The axes need a series to size themselves; the bars are drawn as elements.
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: []float64{-0.5, float64(n) - 0.5},
				YValues: []float64{0, 0},
				Style:   chart.Style{StrokeColor: drawing.ColorTransparent, StrokeWidth: 0},
			},
		},
		Elements: elements,
	}
}

// Placeholder renders a blank image with a centered message.
func Placeholder(w io.Writer, msg string, width, height int) error {
	r, err := chart.PNG(width, height)
	if err != nil {
		return err
	}
	r.SetFillColor(drawing.ColorWhite)
	rect(r, 0, 0, width, height)
	r.Fill()

	font, err := chart.GetDefaultFont()
	if err != nil {
		return err
	}
	r.SetFont(font)
	r.SetFontColor(hexColor(dashboard.LabelColor))
	r.SetFontSize(14)
	tb := r.MeasureText(msg)
	r.Text(msg, (width-tb.Width())/2, (height+tb.Height())/2)
	return r.Save(w)
}
