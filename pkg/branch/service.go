// Package branch is the static lookup table behind multi-branch scoping.
package branch

import (
	"errors"

	"gorm.io/gorm"

	"washline/entities"
)

type Service interface {
	Create(b *entities.Branch) error
	List() ([]entities.Branch, error)
}

type service struct{ db *gorm.DB }

func New(db *gorm.DB) Service { return &service{db: db} }

func (s *service) Create(b *entities.Branch) error {
	if b == nil || b.Name == "" {
		return errors.New("branch needs a name")
	}
	return s.db.Create(b).Error
}

func (s *service) List() ([]entities.Branch, error) {
	var out []entities.Branch
	err := s.db.Order("branch_id ASC").Find(&out).Error
	return out, err
}
