package gateway

import (
	"encoding/json"
	"fmt"
	"os"

	"bank-ingest/internal/domain"
)

// runLogLimit caps the run history at the most recent entries.
const runLogLimit = 100

// RunLog keeps a JSON history of ingest runs, newest first, in a single
// file. Dashboards read this file to show run status.
type RunLog struct {
	Path string
}

// NewRunLog creates a run log backed by path.
func NewRunLog(path string) *RunLog {
	return &RunLog{Path: path}
}

// Append prepends a report to the history. An unreadable or corrupt
// existing history is replaced rather than failing the run.
func (l *RunLog) Append(report domain.RunReport) error {
	var history []domain.RunReport
	if data, err := os.ReadFile(l.Path); err == nil {
		if err := json.Unmarshal(data, &history); err != nil {
			history = nil
		}
	}

	history = append([]domain.RunReport{report}, history...)
	if len(history) > runLogLimit {
		history = history[:runLogLimit]
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if err := os.WriteFile(l.Path, data, 0o644); err != nil {
		return fmt.Errorf("write run log %s: %w", l.Path, err)
	}
	return nil
}
