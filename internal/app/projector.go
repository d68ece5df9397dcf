package app

import (
	"sort"
	"strings"

	"habitlog/internal/domain"
)

// Project returns records ordered for display. The input is never mutated.
// Under SortHighestWater ties keep the input's relative order, so repeated
// projections of the same input are identical.
func Project(records []domain.Record, mode domain.SortMode) []domain.Record {
	out := make([]domain.Record, len(records))
	copy(out, records)
	switch mode {
	case domain.SortHighestWater:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Water > out[j].Water })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	}
	return out
}

// ChartPoint is one (label, value) pair consumed by the water chart.
type ChartPoint struct {
	Label string  `json:"label"`
	Water float64 `json:"water"`
}

// ChartPoints derives the chart series from an already projected sequence.
// Labels keep only the day and month components of the display date.
func ChartPoints(records []domain.Record) []ChartPoint {
	points := make([]ChartPoint, 0, len(records))
	for _, r := range records {
		points = append(points, ChartPoint{Label: chartLabel(r.Date), Water: r.Water})
	}
	return points
}

func chartLabel(date string) string {
	parts := strings.SplitN(date, "/", 3)
	if len(parts) < 3 {
		return date
	}
	return parts[0] + "/" + parts[1]
}
