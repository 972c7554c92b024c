package repository

import "washline/entities"

type StaffRepository interface {
	FindByCode(code string) (*entities.Staff, error)
	Create(st *entities.Staff) error
}
