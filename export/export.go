// Package export renders the assignment list for use outside the notebook.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/stsysd/notebook/heatmap"
	"github.com/stsysd/notebook/model"
)

// ShortDate is the layout used when a due date is shown to a person.
const ShortDate = "1/2/06"

// Source provides the list to export in display order.
type Source interface {
	Assignments() []model.Assignment
}

// Formats lists the supported export formats.
var Formats = []string{"json", "csv", "pdf", "svg"}

// Exporter renders the list of a Source in one of Formats.
type Exporter struct {
	src      Source
	from, to time.Time
}

// NewExporter returns an Exporter reading from src.
func NewExporter(src Source) *Exporter { return &Exporter{src: src} }

// WithRange limits the svg calendar to the days between from and to.
// A zero bound falls back to the earliest or latest due date.
func (e *Exporter) WithRange(from, to time.Time) *Exporter {
	e.from, e.to = from, to
	return e
}

// Export renders the list in the given format.
func (e *Exporter) Export(format string) ([]byte, error) {
	all := e.src.Assignments()
	switch strings.ToLower(format) {
	case "json":
		return json.MarshalIndent(all, "", "  ")
	case "csv":
		return toCSV(all)
	case "pdf":
		return toPDF(all)
	case "svg":
		opts := heatmap.DefaultOptions()
		opts.Title = "Assignments due"
		opts.From, opts.To = e.from, e.to
		return []byte(heatmap.GenerateDueCalendarSVG(heatmap.DueCounts(all), opts)), nil
	default:
		return nil, fmt.Errorf("unknown format %s", format)
	}
}

func toCSV(all []model.Assignment) ([]byte, error) {
	var b bytes.Buffer
	w := csv.NewWriter(&b)
	_ = w.Write([]string{"position", "id", "course", "description", "due_date"})
	for i, a := range all {
		_ = w.Write([]string{strconv.Itoa(i), a.ID.String(), a.Course, a.Description, a.DueDate.Format(time.RFC3339)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to write csv: %w", err)
	}
	return b.Bytes(), nil
}

func toPDF(all []model.Assignment) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Assignments")
	pdf.Ln(12)
	for i, a := range all {
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, a.Course)), "0", "L", false)
		pdf.SetFont("Arial", "", 10)
		if a.Description != "" {
			pdf.MultiCell(0, 5, tr(a.Description), "0", "L", false)
		}
		pdf.MultiCell(0, 5, "Due: "+a.DueDate.Format(ShortDate), "0", "L", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
