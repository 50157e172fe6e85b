package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"lumen/config"
)

// FrameRecord is one CSV row of frame statistics.
type FrameRecord struct {
	Frame     int64   `csv:"frame"`
	MeanMs    float64 `csv:"mean_ms"`
	P50Ms     float64 `csv:"p50_ms"`
	P90Ms     float64 `csv:"p90_ms"`
	P99Ms     float64 `csv:"p99_ms"`
	FPS       float64 `csv:"fps"`
	Particles int     `csv:"particles"`
	Sparks    int     `csv:"sparks"`
}

// OutputManager writes run artifacts (frame stats CSV, config snapshot) into
// an output directory. A nil manager is valid and discards everything.
type OutputManager struct {
	dir           string
	framesFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and opens frames.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	return &OutputManager{dir: dir, framesFile: f}, nil
}

// WriteConfig saves the active configuration as YAML alongside the CSV.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteFrame appends one stats record to frames.csv. The first write
// includes the header row.
func (om *OutputManager) WriteFrame(rec FrameRecord) error {
	if om == nil {
		return nil
	}

	records := []FrameRecord{rec}
	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frame record: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
		return fmt.Errorf("writing frame record: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	return om.framesFile.Close()
}
