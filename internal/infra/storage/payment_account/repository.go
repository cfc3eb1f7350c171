package payment_account

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BoxBooking/pkg/psqlbuilder"
)

// Repository репозиторий реквизитов для перевода
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все реквизиты в порядке добавления
func (r *Repository) List(ctx context.Context) ([]domain.PaymentAccount, error) {
	query, args, err := psqlbuilder.Select("id", "upi", "phone", "scanner").
		From("bank_accounts").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	accounts := make([]domain.PaymentAccount, 0)
	for rows.Next() {
		var a domain.PaymentAccount
		if err := rows.Scan(&a.ID, &a.Upi, &a.Phone, &a.Scanner); err != nil {
			return nil, fmt.Errorf("%w: List - scan account: %v", ErrScanRow, err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return accounts, nil
}
