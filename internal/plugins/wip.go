package plugins

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	apperrors "oper-review-backend/internal/errors"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const wipPrompt = `Ты аналитик процессов в ИТ команде. Тебе для анализа подаются данные по WIP (work in progress) команды - среднее количество задач в рабочих статусах за день с группировкой по классам задач. Пример:
[
  {
    "date": "2026-01",
    "categories": {
      "Бизнес": 8,
      "Техника": 8
    }
  },
  {
    "date": "2026-02",
    "categories": {
      "Баг": 5,
      "Бизнес": 13,
      "Техника": 28
    }
  }
]

Нужно проанализировать полученные данные и сформулировать короткий 4-5 предложений вердикт по динамике метрики, какие точки роста видишь и какой тренд - требует ли более детального внимания менеджеров. Обрати внимание на:
- насколько в процентном соотношении команда делает бизнес задач, достаточно ли этой доли?
- соблюдает ли команда WIP лимиты или есть подозрения на то, что не соблюдает`

// category palette, cycled when there are more categories than colors
var wipColors = []drawing.Color{
	{R: 180, G: 50, B: 50, A: 255},
	{R: 30, G: 96, B: 180, A: 255},
	{R: 80, G: 160, B: 80, A: 255},
	{R: 230, G: 140, B: 40, A: 255},
	{R: 120, G: 80, B: 160, A: 255},
	{R: 60, G: 180, B: 180, A: 255},
}

// WIPPoint is the average number of in-progress items per category for one month
type WIPPoint struct {
	Date       string             `json:"date"`
	Categories map[string]float64 `json:"categories"`
}

// WIP stacks in-progress work per category for each month
type WIP struct{}

// NewWIP creates the work in progress plugin
func NewWIP() *WIP {
	return &WIP{}
}

// Descriptor implements Variant
func (p *WIP) Descriptor() Descriptor {
	return Descriptor{
		PluginID:      WIPID,
		Label:         "Work In Progress",
		Group:         GroupDelivery,
		DefaultPrompt: wipPrompt,
	}
}

func (p *WIP) decode(data json.RawMessage) ([]WIPPoint, error) {
	var points []WIPPoint
	if err := decodeData(WIPID, data, &points); err != nil {
		return nil, err
	}
	for i, pt := range points {
		if pt.Date == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("data[%d].date", i), "is required")
		}
		for name, v := range pt.Categories {
			if v < 0 {
				return nil, apperrors.NewValidationError(fmt.Sprintf("data[%d].categories.%s", i, name), "cannot be negative")
			}
		}
	}
	return points, nil
}

// categoryNames returns every category seen across points, sorted
func categoryNames(points []WIPPoint) []string {
	seen := make(map[string]struct{})
	for _, pt := range points {
		for name := range pt.Categories {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Render implements Variant. Categories missing from a month count as zero.
func (p *WIP) Render(data json.RawMessage) (*Visualization, error) {
	points, err := p.decode(data)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(points))
	for i, pt := range points {
		labels[i] = pt.Date
	}

	names := categoryNames(points)
	series := make([]Series, len(names))
	for i, name := range names {
		values := make([]float64, len(points))
		for j, pt := range points {
			values[j] = pt.Categories[name]
		}
		series[i] = Series{Name: name, Values: values}
	}

	return &Visualization{Chart: &Chart{
		Kind:   ChartStackedBar,
		Labels: labels,
		Series: series,
	}}, nil
}

// Snapshot implements Variant
func (p *WIP) Snapshot(data json.RawMessage) ([]byte, error) {
	vis, err := p.Render(data)
	if err != nil {
		return nil, err
	}
	return renderStackedBarChart(p.Descriptor().Label, vis.Chart)
}

func renderStackedBarChart(title string, c *Chart) ([]byte, error) {
	if len(c.Labels) == 0 {
		return nil, apperrors.NewValidationError("data", "at least 1 point is required for a snapshot")
	}

	bars := make([]chart.StackedBar, len(c.Labels))
	for i, label := range c.Labels {
		total := 0.0
		values := make([]chart.Value, 0, len(c.Series))
		for k, s := range c.Series {
			v := s.Values[i]
			total += v
			values = append(values, chart.Value{
				Label: s.Name,
				Value: v,
				Style: chart.Style{
					FillColor:   wipColors[k%len(wipColors)],
					StrokeColor: wipColors[k%len(wipColors)],
				},
			})
		}
		if total <= 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("data[%d].categories", i), "at least one positive value is required for a snapshot")
		}
		bars[i] = chart.StackedBar{Name: label, Values: values}
	}

	graph := chart.StackedBarChart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		Bars: bars,
	}

	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
