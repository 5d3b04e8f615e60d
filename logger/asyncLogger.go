package logger

import (
	"log"

	logModel "hotel-frontdesk/models/log"
	"hotel-frontdesk/types"

	"gorm.io/gorm"
)

// AsyncLogger persists HTTP request logs to the database without blocking
// request handling.
type AsyncLogger struct {
	db      *gorm.DB
	channel chan types.LogEntry
}

func NewAsyncLogger(db *gorm.DB) *AsyncLogger {
	return &AsyncLogger{
		db:      db,
		channel: make(chan types.LogEntry, 100), // Buffered channel to hold log entries
	}
}

// ProcessLog drains the channel and writes entries to the logs table. Run
// as a goroutine at startup.
func (logger *AsyncLogger) ProcessLog() {
	log.Println("Starting asynchronous logger...")

	for logEntry := range logger.channel {
		dbLog := logModel.Log{
			Method:     logEntry.Method,
			URL:        logEntry.URL,
			StatusCode: logEntry.StatusCode,
			Latency:    logEntry.Latency,
			CreatedAt:  logEntry.CreatedAt,
		}

		if err := logger.db.Create(&dbLog).Error; err != nil {
			log.Printf("Failed to insert new log entry: %v", err)
		}
	}
}

// Log pushes a log entry into the channel.
func (logger *AsyncLogger) Log(entry types.LogEntry) {
	logger.channel <- entry
}
