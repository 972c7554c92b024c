package serviceImp

import (
	"errors"

	"gorm.io/gorm"

	"washline/entities"
	repo "washline/pkg/customer/repository"
	"washline/pkg/customer/service"
)

type customerSvc struct{ r repo.CustomerRepository }

func New(r repo.CustomerRepository) service.CustomerService { return &customerSvc{r} }

func (s *customerSvc) Ensure(phone, name string) (*entities.Customer, error) {
	key := service.NormalizePhone(phone)
	c, err := s.r.FindByPhone(key)
	if err == nil {
		if name != "" && c.Name == "" {
			c.Name = name
			if err := s.r.Save(c); err != nil {
				return nil, err
			}
		}
		return c, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	c = &entities.Customer{Phone: key, Name: name}
	if err := s.r.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerSvc) GetByPhone(phone string) (*entities.Customer, error) {
	return s.r.FindByPhone(service.NormalizePhone(phone))
}

func (s *customerSvc) RecordPayment(phone string, amount float64) error {
	c, err := s.Ensure(phone, "")
	if err != nil {
		return err
	}
	c.OrderCount++
	c.TotalSpent += amount
	return s.r.Save(c)
}
