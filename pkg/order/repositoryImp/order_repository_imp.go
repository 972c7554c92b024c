package repositoryImp

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"washline/entities"
	"washline/pkg/order"
	"washline/pkg/order/repository"
)

type orderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.OrderRepository { return &orderRepo{db} }

func (r *orderRepo) Create(o *entities.Order) error { return r.db.Create(o).Error }

func (r *orderRepo) WithTx(tx *gorm.DB) repository.OrderRepository { return &orderRepo{tx} }

func (r *orderRepo) SaveVersioned(o *entities.Order, expected int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Order{}).
			Where("order_id = ? AND version = ?", o.OrderID, expected).
			Update("version", expected+1)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var n int64
			if err := tx.Model(&entities.Order{}).Where("order_id = ?", o.OrderID).Count(&n).Error; err != nil {
				return err
			}
			if n == 0 {
				return order.ErrNotFound
			}
			return order.ErrVersionConflict
		}
		o.Version = expected + 1
		return tx.Save(o).Error
	})
}

func (r *orderRepo) FindByID(id uint) (*entities.Order, error) {
	var o entities.Order
	if err := r.db.Where("order_id = ?", id).First(&o).Error; err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *orderRepo) FindByCode(code string) (*entities.Order, error) {
	var o entities.Order
	err := r.db.Where("UPPER(code) = ?", strings.ToUpper(code)).First(&o).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

// FindByPhone returns the most recent order for an exact phone match.
func (r *orderRepo) FindByPhone(phone string) (*entities.Order, error) {
	var o entities.Order
	err := r.db.Where("customer_phone = ?", phone).
		Order("created_at DESC, order_id DESC").First(&o).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &o, nil
}

func (r *orderRepo) CodeExists(code string) (bool, error) {
	var n int64
	err := r.db.Model(&entities.Order{}).
		Where("UPPER(code) = ?", strings.ToUpper(code)).Count(&n).Error
	return n > 0, err
}

func (r *orderRepo) ListByStatus(branchID uint, statuses []string) ([]entities.Order, error) {
	var out []entities.Order
	q := r.db.Where("status IN ?", statuses)
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	if err := q.Order("created_at DESC, order_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) ListAll(branchID uint) ([]entities.Order, error) {
	var out []entities.Order
	q := r.db
	if branchID != 0 {
		q = q.Where("branch_id = ?", branchID)
	}
	if err := q.Order("created_at DESC, order_id DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return order.ErrNotFound
	}
	return err
}
