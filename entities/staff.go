package entities

import "time"

type Staff struct {
	StaffID  uint   `gorm:"primaryKey" json:"staff_id"`
	BranchID uint   `json:"branch_id" gorm:"index"`
	Code     string `json:"code" gorm:"uniqueIndex"` // short login code, e.g. "ST-07"
	Name     string `json:"name"`
	Role     string `json:"role"` // attendant|manager
	PINHash  string `json:"-"`
	Active   bool   `json:"active"`

	CreatedAt time.Time `json:"created_at"`
}

// AttendanceRecord is an append-only clock log entry.
type AttendanceRecord struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	StaffID uint      `json:"staff_id" gorm:"index"`
	Action  string    `json:"action"` // clock_in|clock_out
	At      time.Time `json:"at"`
}
