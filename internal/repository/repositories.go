package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// UnitOfWork runs a request's writes in one transaction: committed when fn returns
// nil, rolled back on error or panic.
type UnitOfWork struct {
	db *gorm.DB
}

// NewUnitOfWork wraps db.
func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

// Do executes fn inside a transaction bound to ctx.
func (u *UnitOfWork) Do(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return u.db.WithContext(ctx).Transaction(fn)
}

// Ping checks that the database answers.
func (u *UnitOfWork) Ping(ctx context.Context) error {
	sqlDB, err := u.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func rowExists(ctx context.Context, db *gorm.DB, table, column string, value interface{}) (bool, error) {
	var count int64
	err := db.WithContext(ctx).Table(table).Where(fmt.Sprintf("%s = ?", column), value).Count(&count).Error
	return count > 0, err
}

func countIn(ctx context.Context, db *gorm.DB, table, column string, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var count int64
	err := db.WithContext(ctx).Table(table).Where(fmt.Sprintf("%s IN ?", column), ids).Count(&count).Error
	return count, err
}
