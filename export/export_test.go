package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stsysd/notebook/model"
)

type staticSource []model.Assignment

func (s staticSource) Assignments() []model.Assignment { return s }

func sample() staticSource {
	return staticSource{
		model.NewAssignment("Math", "page 42, all exercises", time.Date(2025, 5, 21, 0, 0, 0, 0, time.UTC)),
		model.NewAssignment("Español", "ensayo", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)),
	}
}

func TestExportJSON(t *testing.T) {
	src := sample()
	out, err := NewExporter(src).Export("JSON")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var got []model.Assignment
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Exported JSON does not decode: %v", err)
	}
	if diff := cmp.Diff([]model.Assignment(src), got); diff != "" {
		t.Errorf("JSON export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportCSV(t *testing.T) {
	src := sample()
	out, err := NewExporter(src).Export("csv")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("Exported CSV does not parse: %v", err)
	}
	want := [][]string{
		{"position", "id", "course", "description", "due_date"},
		{"0", src[0].ID.String(), "Math", "page 42, all exercises", "2025-05-21T00:00:00Z"},
		{"1", src[1].ID.String(), "Español", "ensayo", "2025-06-02T00:00:00Z"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Errorf("CSV export mismatch (-want +got):\n%s", diff)
	}
}

func TestExportPDF(t *testing.T) {
	out, err := NewExporter(sample()).Export("pdf")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Errorf("Expected PDF header, got %q", out[:min(len(out), 8)])
	}
}

func TestExportSVG(t *testing.T) {
	out, err := NewExporter(sample()).Export("svg")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	svg := string(out)
	if !strings.HasPrefix(svg, "<svg") {
		t.Errorf("Expected SVG output, got %q", svg)
	}
	for _, day := range []string{"2025-05-21", "2025-06-02"} {
		if !strings.Contains(svg, `data-date="`+day+`"`) {
			t.Errorf("Expected cell for %s", day)
		}
	}
}

func TestExportSVGWithRange(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	out, err := NewExporter(sample()).WithRange(from, time.Time{}).Export("svg")
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	svg := string(out)
	if strings.Contains(svg, `data-date="2025-05-21"`) {
		t.Error("2025-05-21 is before the range and should not be drawn")
	}
	if !strings.Contains(svg, `data-date="2025-06-02"`) {
		t.Error("Expected cell for 2025-06-02")
	}
}

func TestExportEmptyList(t *testing.T) {
	e := NewExporter(staticSource{})
	for _, format := range Formats {
		if _, err := e.Export(format); err != nil {
			t.Errorf("Export(%s) of empty list failed: %v", format, err)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := NewExporter(sample()).Export("xml"); err == nil {
		t.Error("Expected error for unknown format, got nil")
	}
}
