package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CWS-BookingService/internal/domain"
	"github.com/m04kA/CWS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/CWS-BookingService/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var userColumns = []string{
	"id",
	"email",
	"role",
	"full_name",
	"phone",
	"company",
	"total_spent",
	"active_passes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пользователями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает пользователя по ID.
// Внутри транзакции строка блокируется FOR UPDATE: все мутации
// active_passes и total_spent конкретного пользователя сериализуются.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	user, err := scanUserFrom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}

	return user, nil
}

// UpdateActivePasses перезаписывает список активных пассов пользователя
func (r *Repository) UpdateActivePasses(ctx context.Context, id int64, passes []domain.ActivePass) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := json.Marshal(passes)
	if err != nil {
		return fmt.Errorf("%w: UpdateActivePasses - marshal passes: %v", ErrEncodePasses, err)
	}

	query, args, err := psqlbuilder.Update("users").
		Set("active_passes", encoded).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateActivePasses - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateActivePasses - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateActivePasses - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ApplyPurchase записывает результат покупки тарифа: новый список активных
// пассов и увеличенный total_spent, одним запросом
func (r *Repository) ApplyPurchase(ctx context.Context, id int64, passes []domain.ActivePass, amount float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	encoded, err := json.Marshal(passes)
	if err != nil {
		return fmt.Errorf("%w: ApplyPurchase - marshal passes: %v", ErrEncodePasses, err)
	}

	query, args, err := psqlbuilder.Update("users").
		Set("active_passes", encoded).
		Set("total_spent", squirrel.Expr("total_spent + ?", amount)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ApplyPurchase - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ApplyPurchase - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ApplyPurchase - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// CountByRole возвращает количество пользователей с указанной ролью
func (r *Repository) CountByRole(ctx context.Context, role domain.UserRole) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("users").
		Where(squirrel.Eq{"role": role}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByRole - build select query: %v", ErrBuildQuery, err)
	}

	var count int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByRole - execute query: %v", ErrExecQuery, err)
	}

	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUserFrom(s rowScanner) (*domain.User, error) {
	var user domain.User
	var passes []byte
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&user.ID,
		&user.Email,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.Company,
		&user.TotalSpent,
		&passes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(passes) > 0 {
		if err := json.Unmarshal(passes, &user.ActivePasses); err != nil {
			return nil, err
		}
	}

	user.CreatedAt = createdAt.Time
	user.UpdatedAt = updatedAt.Time

	return &user, nil
}
