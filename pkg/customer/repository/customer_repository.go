package repository

import "washline/entities"

type CustomerRepository interface {
	FindByPhone(phone string) (*entities.Customer, error)
	Create(c *entities.Customer) error
	Save(c *entities.Customer) error
}
