package bench

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"inferd/internal/common/fsutil"
	"inferd/pkg/types"
)

// timestampLayout matches <tag>_test_results_YYYYMMDD_HHMMSS.json.
const timestampLayout = "20060102_150405"

// ReportFilename builds the timestamped result filename for an endpoint tag.
func ReportFilename(tag string, now time.Time) string {
	return fmt.Sprintf("%s_test_results_%s.json", tag, now.Format(timestampLayout))
}

// WriteReport persists the full run (per-call results plus statistics) as
// indented JSON and returns the written path. The run is serialized in one
// piece once finished; there is no partial persistence.
func WriteReport(dir, tag string, report types.RunReport, now time.Time) (string, error) {
	if err := fsutil.EnsureDir(dir); err != nil {
		return "", err
	}
	expanded, err := fsutil.ExpandHome(dir)
	if err != nil {
		return "", err
	}
	path := filepath.Join(expanded, ReportFilename(tag, now))
	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// PrintSummary logs the aggregate record the way the run reports read.
func PrintSummary(tag string, s types.Statistics) {
	info("%s performance statistics:", tag)
	info("  average total time: %.3f seconds", s.AverageTotalTime)
	info("  average processing time: %.3f seconds", s.AverageProcessingTime)
	info("  min time: %.3f seconds", s.MinTime)
	info("  max time: %.3f seconds", s.MaxTime)
	info("  standard deviation: %.3f seconds", s.StdDev)
}
