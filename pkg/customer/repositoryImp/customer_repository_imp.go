package repositoryImp

import (
	"gorm.io/gorm"

	"washline/entities"
	"washline/pkg/customer/repository"
)

type customerRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CustomerRepository { return &customerRepo{db} }

func (r *customerRepo) FindByPhone(phone string) (*entities.Customer, error) {
	var c entities.Customer
	if err := r.db.Where("phone = ?", phone).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) Create(c *entities.Customer) error { return r.db.Create(c).Error }

func (r *customerRepo) Save(c *entities.Customer) error { return r.db.Save(c).Error }
