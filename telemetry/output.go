package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// PerfRow is one perf.csv record: window-aggregated tick timing.
type PerfRow struct {
	Tick           uint64  `csv:"tick"`
	Particles      int     `csv:"particles"`
	AvgTickMicros  int64   `csv:"avg_tick_us"`
	MaxTickMicros  int64   `csv:"max_tick_us"`
	TicksPerSecond float64 `csv:"ticks_per_sec"`
	AdvanceMicros  int64   `csv:"advance_us"`
	EmitMicros     int64   `csv:"emit_us"`
	IntegMicros    int64   `csv:"integrate_us"`
	OverrideMicros int64   `csv:"override_us"`
}

// OutputManager writes structured run output as CSV.
type OutputManager struct {
	dir           string
	perfFile      *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and perf.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	return &OutputManager{dir: dir, perfFile: f}, nil
}

// WritePerf appends one aggregated perf record. Nil receivers no-op so
// callers don't have to guard on output being disabled.
func (om *OutputManager) WritePerf(tick uint64, particles int, stats PerfStats) error {
	if om == nil {
		return nil
	}
	records := []PerfRow{{
		Tick:           tick,
		Particles:      particles,
		AvgTickMicros:  stats.AvgTickDuration.Microseconds(),
		MaxTickMicros:  stats.MaxTickDuration.Microseconds(),
		TicksPerSecond: stats.TicksPerSecond,
		AdvanceMicros:  stats.PhaseAvg[PhaseAdvance].Microseconds(),
		EmitMicros:     stats.PhaseAvg[PhaseEmit].Microseconds(),
		IntegMicros:    stats.PhaseAvg[PhaseIntegrate].Microseconds(),
		OverrideMicros: stats.PhaseAvg[PhaseOverride].Microseconds(),
	}}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf: %w", err)
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil || om.perfFile == nil {
		return nil
	}
	return om.perfFile.Close()
}
