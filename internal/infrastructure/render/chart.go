package render

import (
	stdErrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/johnquangdev/meeting-reporter/internal/domain/entities"
)

// Fixed three-slice palette: green for Positive, amber for Neutral, red for
// Negative.
var sentimentColors = map[entities.SentimentCategory]drawing.Color{
	entities.SentimentPositive: drawing.ColorFromHex("4CAF50"),
	entities.SentimentNeutral:  drawing.ColorFromHex("FFC107"),
	entities.SentimentNegative: drawing.ColorFromHex("F44336"),
}

var sentimentOrder = []entities.SentimentCategory{
	entities.SentimentPositive,
	entities.SentimentNeutral,
	entities.SentimentNegative,
}

// PieChartRenderer draws sentiment category counts as a PNG pie chart.
type PieChartRenderer struct{}

// NewPieChartRenderer constructs a PieChartRenderer.
func NewPieChartRenderer() *PieChartRenderer {
	return &PieChartRenderer{}
}

// SentimentPie writes a pie chart of the category counts to path. Returns
// an error when every count is zero, since an empty pie has no slices to
// draw.
func (r *PieChartRenderer) SentimentPie(counts map[entities.SentimentCategory]int, path string) error {
	total := 0
	for _, c := range sentimentOrder {
		total += counts[c]
	}
	if total == 0 {
		return stdErrors.New("no entries to chart")
	}

	var values []chart.Value
	for _, c := range sentimentOrder {
		n := counts[c]
		if n == 0 {
			continue
		}
		values = append(values, chart.Value{
			Value: float64(n),
			Label: fmt.Sprintf("%s (%.1f%%)", c, float64(n)*100/float64(total)),
			Style: chart.Style{
				FillColor:   sentimentColors[c],
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}

	pie := chart.PieChart{
		Width:  512,
		Height: 512,
		Values: values,
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return pie.Render(chart.PNG, f)
}
