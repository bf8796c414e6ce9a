// calendar.go
// Generates a GitHub-like yearly grid of assignment due dates as an SVG string.
package heatmap

import (
	"fmt"
	"html"
	"strings"
	"time"
)

// GenerateDueCalendarSVG returns an SVG string with one cell per day that has
// assignments due. data should be sorted in ascending order by date.
func GenerateDueCalendarSVG(data []Data, opts *Options) string {
	// default options
	if opts == nil {
		opts = DefaultOptions()
	}
	colors := opts.Colors
	if len(colors) == 0 {
		colors = DefaultOptions().Colors
	}

	if len(data) == 0 {
		return ""
	}

	// determine date range from options, falling back to the data
	startDate := data[0].Date
	if !opts.From.IsZero() {
		startDate = truncateDay(opts.From)
	}
	endDate := data[len(data)-1].Date
	if !opts.To.IsZero() {
		endDate = truncateDay(opts.To)
	}

	// map date string to count
	countMap := make(map[string]int, len(data))
	for _, d := range data {
		key := d.Date.Format("2006-01-02")
		countMap[key] += d.Count
	}

	// align first column to Sunday
	firstSunday := startDate.AddDate(0, 0, -int(startDate.Weekday()))

	// calculate required number of weeks
	dayDiff := endDate.Sub(firstSunday).Hours() / 24
	weeks := int(dayDiff/7) + 1 // add 1 to ensure we have enough columns

	// compute dimensions
	titleHeight := 0
	if opts.Title != "" {
		titleHeight = opts.FontSize + 8 // title text + padding
	}
	width := weeks*(opts.CellSize+opts.CellPadding) + opts.CellPadding
	height := 7*(opts.CellSize+opts.CellPadding) + opts.CellPadding + opts.FontSize + 4 + titleHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`+"\n", width, height))
	sb.WriteString(fmt.Sprintf(`  <style>.label{font-family:%s;font-size:%dpx;fill:#666}.title{font-family:%s;font-size:%dpx;fill:#333;font-weight:bold}</style>`+"\n",
		opts.FontFamily, opts.FontSize, opts.FontFamily, opts.FontSize))

	if opts.Title != "" {
		sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="title">%s</text>`+"\n",
			opts.CellPadding, opts.FontSize, html.EscapeString(opts.Title)))
	}

	// month labels
	lastMonth := time.Month(0)
	monthLabelY := opts.FontSize + titleHeight
	for w := range weeks {
		x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
		current := firstSunday.AddDate(0, 0, w*7)
		if current.Day() <= 7 && current.Month() != lastMonth {
			sb.WriteString(fmt.Sprintf(`  <text x="%d" y="%d" class="label">%s</text>`+"\n",
				x, monthLabelY, current.Month().String()[:3]))
			lastMonth = current.Month()
		}
	}

	// find the maximum count for auto-scaling
	supCount := 5
	for _, n := range countMap {
		if n+1 > supCount {
			supCount = n + 1
		}
	}

	// draw cells
	levels := len(colors)
	for w := range weeks {
		for i := range 7 {
			current := firstSunday.AddDate(0, 0, w*7+i)
			if current.Before(startDate) || current.After(endDate) {
				continue
			}
			key := current.Format("2006-01-02")
			count, exists := countMap[key]
			if !exists {
				continue
			}

			x := opts.CellPadding + w*(opts.CellSize+opts.CellPadding)
			y := opts.CellPadding + opts.FontSize + 4 + titleHeight + i*(opts.CellSize+opts.CellPadding)

			// 各セルに矩形と、その中にtitle要素（ツールチップ）を追加
			sb.WriteString(fmt.Sprintf(`  <rect x="%d" y="%d" width="%d" height="%d" fill="%s" data-date="%s" data-count="%d">`+"\n",
				x, y, opts.CellSize, opts.CellSize, colors[level(count, supCount, levels)], key, count))
			sb.WriteString(fmt.Sprintf(`    <title>%s: %d due</title>`+"\n", key, count))
			sb.WriteString(`  </rect>` + "\n")
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// level maps a count onto a color index. 0 always uses level 0; counts of
// 1 and above are spread over 1..levels-1.
func level(count, supCount, levels int) int {
	if count == 0 || levels < 2 {
		return 0
	}
	l := ((count-1)*(levels-2))/(supCount-1) + 1
	return max(1, min(l, levels-1))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
