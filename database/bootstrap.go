package database

import (
	"fmt"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"washline/entities"
)

func OpenSQLite(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.Order{},
		&entities.Customer{},
		&entities.Staff{},
		&entities.AttendanceRecord{},
		&entities.Branch{},
		&entities.Voucher{},
		&entities.PaymentTransaction{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
