package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
)

// Point is a plan-view coordinate: Y spanwise, X streamwise (forward positive).
type Point struct {
	X float64
	Y float64
}

// Distribution is one spanwise quantity sampled along a segment.
type Distribution struct {
	Title  string
	XLabel string
	YLabel string
	Span   []float64 // span fractions, ascending
	Values []float64
}

// SampleDistribution evaluates f at n+1 evenly spaced span fractions.
func SampleDistribution(title, ylabel string, n int, f func(float64) float64) Distribution {
	if n < 1 {
		n = 1
	}
	d := Distribution{
		Title:  title,
		XLabel: "Span fraction",
		YLabel: ylabel,
		Span:   make([]float64, n+1),
		Values: make([]float64, n+1),
	}
	for i := 0; i <= n; i++ {
		s := float64(i) / float64(n)
		d.Span[i] = s
		d.Values[i] = f(s)
	}
	return d
}

// DrawDistribution renders d as a terminal line graph.
func DrawDistribution(d Distribution, height int) string {
	if len(d.Values) == 0 {
		return "  (no data)\n"
	}
	if height < 2 {
		height = 2
	}

	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(precision(d.Values)),
		asciigraph.Offset(4),
	}
	if d.Title != "" {
		opts = append(opts, asciigraph.Caption(d.Title))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(d.Values, opts...))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  root (s = %.2f) ──► tip (s = %.2f)\n", d.Span[0], d.Span[len(d.Span)-1]))
	return sb.String()
}

// precision picks enough decimals to tell the plotted values apart.
func precision(values []float64) uint {
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	spread := hi - lo
	switch {
	case spread == 0 || spread >= 10:
		return 1
	case spread >= 1:
		return 2
	default:
		return 4
	}
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-2, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
