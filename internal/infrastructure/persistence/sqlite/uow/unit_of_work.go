package uow

import (
	"context"

	"gorm.io/gorm"

	"amendtrack/internal/ports"
)

// UnitOfWork implements ports.UnitOfWork on top of gorm's Transaction
// helper. The open *gorm.DB transaction rides along in the context so every
// repository call inside the callback shares it.
type UnitOfWork struct {
	db *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ports.WithTxContext(ctx, tx))
	})
}
