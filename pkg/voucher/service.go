// Package voucher holds the discount-code lookup table. Discounts are
// applied by the payment flow; this package only manages the records.
package voucher

import (
	"errors"

	"gorm.io/gorm"

	"washline/entities"
)

type Service interface {
	Create(v *entities.Voucher) error
	List(activeOnly bool) ([]entities.Voucher, error)
	Deactivate(code string) error
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Create(v *entities.Voucher) error {
	if v == nil || v.Code == "" {
		return errors.New("voucher needs a code")
	}
	if v.Kind != "flat" && v.Kind != "percent" {
		return errors.New("kind must be flat or percent")
	}
	if v.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return s.db.Create(v).Error
}

func (s *service) List(activeOnly bool) ([]entities.Voucher, error) {
	q := s.db.Order("voucher_id ASC")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var out []entities.Voucher
	err := q.Find(&out).Error
	return out, err
}

func (s *service) Deactivate(code string) error {
	res := s.db.Model(&entities.Voucher{}).Where("code = ?", code).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("voucher not found")
	}
	return nil
}
