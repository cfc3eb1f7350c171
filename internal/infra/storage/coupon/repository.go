package coupon

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-BoxBooking/internal/domain"
	"github.com/m04kA/SMC-BoxBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-BoxBooking/pkg/psqlbuilder"
)

// Repository репозиторий промокодов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория промокодов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByName ищет промокод по точному совпадению имени
func (r *Repository) GetByName(ctx context.Context, name string) (*domain.Coupon, error) {
	query, args, err := buildSelectByNameQuery(name)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - build select query: %v", ErrBuildQuery, err)
	}

	var c domain.Coupon
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&c.Name, &c.Percentage, &c.Used, &c.MaxUses)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCouponNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByName - scan coupon: %v", ErrScanRow, err)
	}

	return &c, nil
}

// IncrementUsage увеличивает счетчик использований на единицу одним UPDATE.
// Лимит здесь не проверяется.
func (r *Repository) IncrementUsage(ctx context.Context, name string) error {
	query, args, err := buildIncrementUsageQuery(name)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: IncrementUsage - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCouponNotFound
	}

	return nil
}

func buildSelectByNameQuery(name string) (string, []interface{}, error) {
	return psqlbuilder.Select("name", "percentage", "used", "max_uses").
		From("coupons").
		Where(squirrel.Eq{"name": name}).
		ToSql()
}

func buildIncrementUsageQuery(name string) (string, []interface{}, error) {
	return psqlbuilder.Update("coupons").
		Set("used", squirrel.Expr("used + 1")).
		Where(squirrel.Eq{"name": name}).
		ToSql()
}
