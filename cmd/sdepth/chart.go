package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/phagelab/sampledepth/internal/types"
)

// chartWidth is the bar length for a probability of 100%.
const chartWidth = 50

// maxChartRows caps the chart height; long curves are downsampled so the
// chart stays readable.
const maxChartRows = 20

// renderCurveTable prints the detection curve as a plain table, marking
// the rows at or above the confidence threshold.
func renderCurveTable(w io.Writer, curve []types.CurvePoint, threshold float64) {
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(w, "%-8s %-14s\n", "Copies", "Probability")
	fmt.Fprintln(w, strings.Repeat("-", 24))
	for _, pt := range curve {
		mark := " "
		if pt.Probability >= threshold {
			mark = green("✓")
		}
		fmt.Fprintf(w, "%-8d %10.2f%%  %s\n", pt.Copies, pt.Probability, mark)
	}
	fmt.Fprintf(w, "\n✓ = at or above the %.0f%% target\n", threshold)
}

// renderChart prints the detection curve as horizontal bars, one row per
// (possibly downsampled) copy number.
func renderChart(w io.Writer, curve []types.CurvePoint, threshold float64) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	stride := 1
	if len(curve) > maxChartRows {
		stride = (len(curve) + maxChartRows - 1) / maxChartRows
	}

	for i := 0; i < len(curve); i += stride {
		pt := curve[i]
		filled := int(pt.Probability / 100 * chartWidth)
		if filled > chartWidth {
			filled = chartWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("·", chartWidth-filled)
		if pt.Probability >= threshold {
			bar = green(bar)
		} else {
			bar = yellow(bar)
		}
		fmt.Fprintf(w, "%4d │%s│ %6.2f%%\n", pt.Copies, bar, pt.Probability)
	}

	mark := int(threshold / 100 * chartWidth)
	if mark >= 0 && mark <= chartWidth {
		fmt.Fprintf(w, "     %s^ %.0f%%\n", strings.Repeat(" ", mark+1), threshold)
	}
}
