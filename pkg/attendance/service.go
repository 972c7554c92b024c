// Package attendance keeps the append-only staff clock log.
package attendance

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"washline/entities"
)

var ErrDoubleClock = errors.New("already clocked in that direction")

type Service interface {
	Clock(staffID uint, action string) (*entities.AttendanceRecord, error)
	ListByStaff(staffID uint, limit int) ([]entities.AttendanceRecord, error)
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Clock(staffID uint, action string) (*entities.AttendanceRecord, error) {
	if action != "clock_in" && action != "clock_out" {
		return nil, errors.New("action must be clock_in or clock_out")
	}
	var last entities.AttendanceRecord
	err := s.db.Where("staff_id = ?", staffID).Order("at DESC, id DESC").First(&last).Error
	if err == nil && last.Action == action {
		return nil, ErrDoubleClock
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	rec := &entities.AttendanceRecord{StaffID: staffID, Action: action, At: time.Now()}
	if err := s.db.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *service) ListByStaff(staffID uint, limit int) ([]entities.AttendanceRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []entities.AttendanceRecord
	err := s.db.Where("staff_id = ?", staffID).Order("at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}
