package repositoryImp

import (
	"gorm.io/gorm"

	"washline/entities"
	"washline/pkg/staff/repository"
)

type staffRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StaffRepository { return &staffRepo{db} }

func (r *staffRepo) FindByCode(code string) (*entities.Staff, error) {
	var st entities.Staff
	if err := r.db.Where("code = ?", code).First(&st).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *staffRepo) Create(st *entities.Staff) error { return r.db.Create(st).Error }
