// Package chart renders the visual overview of a result: a radar chart
// and a bar chart, one axis or bar per pillar on a 0-100 scale. The PNGs
// are opaque artifacts consumed by both the terminal flow (saved next to
// the PDF) and the PDF assembler.
package chart

import (
	"errors"
	"fmt"

	charts "github.com/vicanso/go-charts/v2"

	"github.com/Joseph-Gomes/Cybersecurity-self-assessment-tool/internal/scoring"
)

const (
	radarSize  = 600
	barWidth   = 750
	barHeight  = 520
	titleRadar = "Security by area"
	titleBar   = "Security by area (0-100)"
)

var white = charts.Color{R: 255, G: 255, B: 255, A: 255}

// Radar renders the pillar breakdown as a radar chart PNG.
func Radar(pillars []scoring.PillarScore) ([]byte, error) {
	if len(pillars) == 0 {
		return nil, errors.New("chart.Radar: no pillars to render")
	}

	names := make([]string, len(pillars))
	maxes := make([]float64, len(pillars))
	values := make([]float64, len(pillars))
	for i, p := range pillars {
		names[i] = displayLabel(p.Name)
		maxes[i] = 100
		values[i] = p.Percent()
	}

	painter, err := charts.RadarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(titleRadar),
		charts.RadarIndicatorOptionFunc(names, maxes),
		charts.BackgroundColorOptionFunc(white),
		charts.WidthOptionFunc(radarSize),
		charts.HeightOptionFunc(radarSize),
		charts.PNGTypeOption(),
	)
	if err != nil {
		return nil, fmt.Errorf("chart.Radar: %w", err)
	}
	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("chart.Radar: %w", err)
	}
	return buf, nil
}

// Bar renders the pillar breakdown as a bar chart PNG.
func Bar(pillars []scoring.PillarScore) ([]byte, error) {
	if len(pillars) == 0 {
		return nil, errors.New("chart.Bar: no pillars to render")
	}

	labels := make([]string, len(pillars))
	values := make([]float64, len(pillars))
	for i, p := range pillars {
		labels[i] = displayLabel(p.Name)
		values[i] = p.Percent()
	}

	yMin, yMax := 0.0, 100.0
	painter, err := charts.BarRender(
		[][]float64{values},
		charts.TitleTextOptionFunc(titleBar),
		charts.XAxisDataOptionFunc(labels),
		charts.YAxisOptionFunc(charts.YAxisOption{Min: &yMin, Max: &yMax}),
		charts.BackgroundColorOptionFunc(white),
		charts.WidthOptionFunc(barWidth),
		charts.HeightOptionFunc(barHeight),
		charts.PNGTypeOption(),
	)
	if err != nil {
		return nil, fmt.Errorf("chart.Bar: %w", err)
	}
	buf, err := painter.Bytes()
	if err != nil {
		return nil, fmt.Errorf("chart.Bar: %w", err)
	}
	return buf, nil
}

// displayLabel shortens the long pillar names so axis labels do not get
// cut off.
func displayLabel(name string) string {
	switch name {
	case "Governance & People":
		return "Gov & People"
	case "Detect & Respond":
		return "Detect/Respond"
	}
	return name
}
