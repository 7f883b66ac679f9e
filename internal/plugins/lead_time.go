package plugins

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "oper-review-backend/internal/errors"

	"github.com/wcharczuk/go-chart/v2"
)

const teamLeadTimePrompt = `Ты аналитик процессов в ИТ команде. Тебе для анализа подаются данные по Lead Time команды - время от точки принятия обязательства по реализации запроса до точки завершения работы над запросом. Данные даются в динамике за какой-то период в формате JSON - коллекция [месяц, медианна, 85 перцентиль, 95 перцентиль]. Пример:
[
  {
    "date": "2026-01",
    "median": 15,
    "percentile_85": 35,
    "percentile_95": 50
  },
  {
    "date": "2026-02",
    "median": 14,
    "percentile_85": 27,
    "percentile_95": 45
  }
]

Нужно проанализировать полученные данные и сформулировать короткий 4-5 предложений вердикт по динамике метрики, какие точки роста видишь и какой тренд - требует ли более детального внимания менеджеров.`

// LeadTimePoint is one month of lead time statistics, in days
type LeadTimePoint struct {
	Date         string  `json:"date"`
	Median       float64 `json:"median"`
	Percentile85 float64 `json:"percentile_85"`
	Percentile95 float64 `json:"percentile_95"`
}

// TeamLeadTime plots the median and upper percentiles of lead time per month
type TeamLeadTime struct{}

// NewTeamLeadTime creates the team lead time plugin
func NewTeamLeadTime() *TeamLeadTime {
	return &TeamLeadTime{}
}

// Descriptor implements Variant
func (p *TeamLeadTime) Descriptor() Descriptor {
	return Descriptor{
		PluginID:      TeamLeadTimeID,
		Label:         "Team Lead Time",
		Group:         GroupDelivery,
		DefaultPrompt: teamLeadTimePrompt,
	}
}

func (p *TeamLeadTime) decode(data json.RawMessage) ([]LeadTimePoint, error) {
	var points []LeadTimePoint
	if err := decodeData(TeamLeadTimeID, data, &points); err != nil {
		return nil, err
	}
	for i, pt := range points {
		if pt.Date == "" {
			return nil, apperrors.NewValidationError(fmt.Sprintf("data[%d].date", i), "is required")
		}
		if pt.Median < 0 || pt.Percentile85 < 0 || pt.Percentile95 < 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("data[%d]", i), "lead time cannot be negative")
		}
	}
	return points, nil
}

// Render implements Variant
func (p *TeamLeadTime) Render(data json.RawMessage) (*Visualization, error) {
	points, err := p.decode(data)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(points))
	median := make([]float64, len(points))
	p85 := make([]float64, len(points))
	p95 := make([]float64, len(points))
	for i, pt := range points {
		labels[i] = pt.Date
		median[i] = pt.Median
		p85[i] = pt.Percentile85
		p95[i] = pt.Percentile95
	}

	return &Visualization{Chart: &Chart{
		Kind:   ChartLine,
		Labels: labels,
		Series: []Series{
			{Name: "Median", Values: median},
			{Name: "85th percentile", Values: p85},
			{Name: "95th percentile", Values: p95},
		},
	}}, nil
}

// Snapshot implements Variant
func (p *TeamLeadTime) Snapshot(data json.RawMessage) ([]byte, error) {
	vis, err := p.Render(data)
	if err != nil {
		return nil, err
	}
	return renderLineChart(p.Descriptor().Label, vis.Chart)
}

// renderLineChart draws a line chart as PNG. At least two points are needed for an x range.
func renderLineChart(title string, c *Chart) ([]byte, error) {
	if len(c.Labels) < 2 {
		return nil, apperrors.NewValidationError("data", "at least 2 points are required for a snapshot")
	}

	xs := make([]float64, len(c.Labels))
	ticks := make([]chart.Tick, len(c.Labels))
	for i, l := range c.Labels {
		xs[i] = float64(i)
		ticks[i] = chart.Tick{Value: float64(i), Label: l}
	}

	maxY := 0.0
	series := make([]chart.Series, 0, len(c.Series))
	for _, s := range c.Series {
		for _, v := range s.Values {
			if v > maxY {
				maxY = v
			}
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: s.Values,
		})
	}
	if maxY <= 0 {
		maxY = 1
	}

	graph := chart.Chart{
		Title:  title,
		Width:  chartWidth,
		Height: chartHeight,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis:  chart.XAxis{Ticks: ticks},
		YAxis:  chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: maxY * 1.1}},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	buf := new(bytes.Buffer)
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return buf.Bytes(), nil
}
