// Package store persists forward-model runs under a data directory: one
// directory per run holding metadata.json and result.csv.
package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aprato/gravbox/internal/grav"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Field     string    `json:"field"`
	Unit      string    `json:"unit"`
	Timestamp time.Time `json:"timestamp"`
	Prisms    int       `json:"prisms"`
	Points    int       `json:"points"`
	GridRows  int       `json:"grid_rows"`
	GridCols  int       `json:"grid_cols"`
	Parallel  bool      `json:"parallel"`
	Workers   int       `json:"workers"`
	Elapsed   float64   `json:"elapsed_seconds"`
}

// Save writes a completed run and returns its id. The CSV has one row per
// observation point: easting, northing, upward, value.
func (s *Store) Save(meta RunMetadata, points grav.Points, result []float64) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Field, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Points = points.Len()

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "result.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"easting", "northing", "upward", "value"}); err != nil {
		return "", err
	}
	for i := range result {
		row := []string{
			strconv.FormatFloat(points.Easting[i], 'g', -1, 64),
			strconv.FormatFloat(points.Northing[i], 'g', -1, 64),
			strconv.FormatFloat(points.Upward[i], 'g', -1, 64),
			strconv.FormatFloat(result[i], 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadResult reads a run's observation points and values back.
func (s *Store) LoadResult(runID string) (grav.Points, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "result.csv"))
	if err != nil {
		return grav.Points{}, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return grav.Points{}, nil, err
	}

	var points grav.Points
	values := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) != 4 {
			continue
		}
		row := make([]float64, 4)
		ok := true
		for j, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				ok = false
				break
			}
			row[j] = v
		}
		if !ok {
			continue
		}
		points.Easting = append(points.Easting, row[0])
		points.Northing = append(points.Northing, row[1])
		points.Upward = append(points.Upward, row[2])
		values = append(values, row[3])
	}

	return points, values, nil
}
