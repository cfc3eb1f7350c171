package payment_accounts

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BoxBooking/internal/service/payment_accounts/models"
)

// Service сервис реквизитов для оплаты
type Service struct {
	repo   PaymentAccountRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo PaymentAccountRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// List возвращает реквизиты, показываемые на шаге оплаты
func (s *Service) List(ctx context.Context) (*models.PaymentAccountListResponse, error) {
	accounts, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	withScanner := 0
	for i := range accounts {
		if accounts[i].HasScanner() {
			withScanner++
		}
	}
	if len(accounts) == 0 {
		s.logger.Warn("List: no bank accounts configured")
	}

	s.logger.Info("List: fetched %d bank accounts (%d with QR)", len(accounts), withScanner)
	return models.FromDomainAccounts(accounts), nil
}
