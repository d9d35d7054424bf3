package entity

import (
	"database/sql"
	"time"
)

// Node statuses, following the worker pool lifecycle of the launched server.
const (
	NodeStatusPending = "pending"
	NodeStatusRunning = "running"
	NodeStatusStopped = "stopped"
)

// Node is one launched server instance recorded in the local registry.
type Node struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	NodeType      string `gorm:"not null"`
	SideType      string `gorm:"not null"`
	Host          string `gorm:"not null"`
	Port          int    `gorm:"not null"`
	Processes     int    `gorm:"not null"`
	Pid           int
	Status        string `gorm:"not null"`
	ExitCode      sql.NullInt32
	InsertionDate time.Time `gorm:"autoCreateTime;not null"`
	StoppedDate   sql.NullTime
}
