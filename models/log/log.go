package log

import (
	"time"
)

// Log represents an HTTP request/response log entry.
type Log struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Method     string    `gorm:"type:varchar(10);not null" json:"method"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	StatusCode int       `gorm:"type:int" json:"status_code"`
	Latency    int64     `gorm:"type:bigint" json:"latency_us"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}
