package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Export writes the event to dir/name and returns the file path.
func Export(dir, name string, e Event, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, ICS(e, now), 0o644); err != nil { //nolint:gosec // calendar files are meant to be shared
		return "", fmt.Errorf("write calendar file: %w", err)
	}
	return path, nil
}
