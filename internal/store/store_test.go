package store

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aprato/gravbox/internal/grav"
)

func testRun() (RunMetadata, grav.Points, []float64) {
	meta := RunMetadata{
		Model:    "worked-example",
		Field:    "g_z",
		Unit:     "mGal",
		Prisms:   1,
		GridRows: 1,
		GridCols: 3,
		Parallel: true,
	}
	points := grav.Points{
		Easting:  []float64{-40, 0, 40},
		Northing: []float64{0, 0, 0},
		Upward:   []float64{30, 30, 30},
	}
	values := []float64{0.06551, 0.06628, 0.06173}
	return meta, points, values
}

func TestSaveAndLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	meta, points, values := testRun()
	runID, err := st.Save(meta, points, values)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(runID, "g_z_") {
		t.Errorf("run id %q does not start with the field tag", runID)
	}

	loaded, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Field != "g_z" || loaded.Unit != "mGal" || loaded.Points != 3 {
		t.Errorf("metadata round trip: %+v", loaded)
	}

	gotPoints, gotValues, err := st.LoadResult(runID)
	if err != nil {
		t.Fatalf("LoadResult: %v", err)
	}
	if diff := cmp.Diff(points, gotPoints); diff != "" {
		t.Errorf("points (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(values, gotValues); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List on empty store: %v", err)
	}
	if len(runs) != 0 {
		t.Fatalf("empty store lists %d runs", len(runs))
	}

	meta, points, values := testRun()
	if _, err := st.Save(meta, points, values); err != nil {
		t.Fatalf("Save: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("listed %d runs, want 1", len(runs))
	}
	if runs[0].Model != "worked-example" {
		t.Errorf("listed model %q, want worked-example", runs[0].Model)
	}
}

func TestListMissingDir(t *testing.T) {
	st := New(t.TempDir() + "/does-not-exist")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("listed %d runs from a missing directory", len(runs))
	}
}

func TestExportJSON(t *testing.T) {
	meta, points, values := testRun()
	var sb strings.Builder
	if err := ExportJSON(&sb, meta, points, values); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}
	out := sb.String()
	for _, fragment := range []string{`"field": "g_z"`, `"values"`, "0.06628"} {
		if !strings.Contains(out, fragment) {
			t.Errorf("export missing %q:\n%s", fragment, out)
		}
	}
}
