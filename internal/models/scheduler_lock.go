package models

import "time"

// SchedulerLock is a lease held by one instance while it runs the named job.
type SchedulerLock struct {
	Name      string    `gorm:"primaryKey;size:64"`
	LockUntil time.Time `gorm:"not null"`
	LockedAt  time.Time `gorm:"not null"`
	LockedBy  string    `gorm:"size:255;not null"`
}

func (SchedulerLock) TableName() string {
	return "scheduler_locks"
}
