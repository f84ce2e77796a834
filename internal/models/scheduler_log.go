package models

import (
	"time"
)

// Scheduler run states written to scheduler_logs
const (
	SchedulerStart   = "START"
	SchedulerRunning = "RUNNING"
	SchedulerSuccess = "SUCCESS"
	SchedulerFailed  = "FAILED"
)

// SchedulerLog represents the scheduler_logs table
type SchedulerLog struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	RunID         string    `json:"run_id" gorm:"column:run_id;type:varchar(36);index"`
	SchedulerCode string    `json:"scheduler_code" gorm:"column:scheduler_code"`
	Message       string    `json:"message" gorm:"column:message;type:text"`
	Status        string    `json:"status" gorm:"column:status;type:varchar(20)"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName sets the insert table name for SchedulerLog
func (SchedulerLog) TableName() string {
	return "scheduler_logs"
}
