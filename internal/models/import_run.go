package models

import (
	"time"

	"gorm.io/datatypes"
)

// ImportError describes one record of a batch that could not be stored.
type ImportError struct {
	Index   int    `json:"index"`
	Message string `json:"message"`
}

// ImportRun is the audit row written after each provider import batch.
type ImportRun struct {
	ID        uint   `gorm:"primaryKey"`
	Provider  string `gorm:"size:100;not null;index"`
	Received  int    `gorm:"not null"`
	Created   int    `gorm:"not null"`
	Updated   int    `gorm:"not null"`
	Skipped   int    `gorm:"not null"`
	Errors    datatypes.JSONSlice[ImportError]
	CreatedAt time.Time `gorm:"index"`
}
