package heatmap

import (
	"slices"
	"time"

	"github.com/stsysd/notebook/model"
)

// Data holds the date and count for each day.
type Data struct {
	Date  time.Time
	Count int
}

// Options configures rendering parameters.
type Options struct {
	CellSize    int       // size of each day cell (px)
	CellPadding int       // padding between cells (px)
	Colors      []string  // array of N CSS colors for levels 0..N-1
	FontSize    int       // font size for month labels (px)
	FontFamily  string    // font family for labels
	Title       string    // optional title
	From        time.Time // first day drawn; zero means first data point
	To          time.Time // last day drawn; zero means last data point
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{
		CellSize:    12,
		CellPadding: 2,
		FontSize:    10,
		FontFamily:  "sans-serif",
		Colors:      []string{"#f0f0f0", "#c6e48b", "#7bc96f", "#239a3b", "#196127", "#0d4429"},
	}
}

// DueCounts counts assignments per due day, in ascending date order.
// Days are taken in the location of each due date.
func DueCounts(assignments []model.Assignment) []Data {
	counts := make(map[time.Time]int)
	for _, a := range assignments {
		y, m, d := a.DueDate.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		counts[day]++
	}

	data := make([]Data, 0, len(counts))
	for day, n := range counts {
		data = append(data, Data{Date: day, Count: n})
	}
	slices.SortFunc(data, func(a, b Data) int {
		return a.Date.Compare(b.Date)
	})
	return data
}
