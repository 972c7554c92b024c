package repository

import (
	"gorm.io/gorm"

	"washline/entities"
)

type OrderRepository interface {
	Create(o *entities.Order) error
	// WithTx returns the same repository bound to tx, so a versioned
	// order write can commit or roll back together with the caller's
	// own rows.
	WithTx(tx *gorm.DB) OrderRepository
	// SaveVersioned writes every field of o, but only if the stored row
	// still carries expectedVersion. Rejects lost updates between
	// terminals with order.ErrVersionConflict.
	SaveVersioned(o *entities.Order, expectedVersion int) error
	FindByID(id uint) (*entities.Order, error)
	FindByCode(code string) (*entities.Order, error)
	FindByPhone(phone string) (*entities.Order, error)
	CodeExists(code string) (bool, error)
	ListByStatus(branchID uint, statuses []string) ([]entities.Order, error)
	ListAll(branchID uint) ([]entities.Order, error)
}
