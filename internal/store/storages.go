package store

import (
	"context"

	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
)

type Storages struct {
	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository
}

// NewStorages connects to the database, applies pending migrations, and
// wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ExpenseRepository: NewExpenseRepository(db, log),
	}, nil
}
