package service

import (
	"github.com/MKhiriev/go-expense-tracker/internal/config"
	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
)

type Services struct {
	AuthService    AuthService
	ExpenseService ExpenseService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.Auth, logger),
		ExpenseService: NewExpenseService(storages.ExpenseRepository, utils.NewUUIDGenerator(), logger),
	}
}
