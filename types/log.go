package types

import "time"

// LogEntry represents a log entry to be stored in the database
type LogEntry struct {
	ID         uint
	Method     string
	URL        string
	StatusCode int
	Latency    int64
	CreatedAt  time.Time
}
