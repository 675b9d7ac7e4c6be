package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var paymentColumns = []string{
	"id",
	"user_id",
	"amount",
	"pass_type",
	"status",
	"external_ref",
	"created_at",
}

// Repository репозиторий для работы с платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись о платеже
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns("user_id", "amount", "pass_type", "status", "external_ref").
		Values(payment.UserID, payment.Amount, payment.PassType, payment.Status, payment.ExternalRef).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&payment.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	payment.CreatedAt = createdAt.Time

	return payment, nil
}

// GetByUserID получает платежи пользователя, новые сначала
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(paymentColumns...).
		From("payments").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var payment domain.Payment
		var createdAt sql.NullTime

		err := rows.Scan(
			&payment.ID,
			&payment.UserID,
			&payment.Amount,
			&payment.PassType,
			&payment.Status,
			&payment.ExternalRef,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}

		payment.CreatedAt = createdAt.Time
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}

// TotalCompletedAmount возвращает сумму всех завершенных платежей
func (r *Repository) TotalCompletedAmount(ctx context.Context) (float64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"status": domain.PaymentCompleted}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TotalCompletedAmount - build select query: %v", ErrBuildQuery, err)
	}

	var total float64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: TotalCompletedAmount - execute query: %v", ErrExecQuery, err)
	}

	return total, nil
}
