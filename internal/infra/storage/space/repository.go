package space

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

var spaceColumns = []string{
	"id",
	"type",
	"name",
	"description",
	"capacity",
	"hourly_price",
	"daily_price",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с пространствами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пространств
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое пространство
func (r *Repository) Create(ctx context.Context, space *domain.Space) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("spaces").
		Columns("type", "name", "description", "capacity", "hourly_price", "daily_price", "is_active").
		Values(space.Type, space.Name, space.Description, space.Capacity, space.HourlyPrice, space.DailyPrice, space.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&space.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return space, nil
}

// GetByID получает пространство по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpaceFrom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// GetByType получает пространство по типу.
// Типы пространств уникальны в каталоге: одна запись на тип.
func (r *Repository) GetByType(ctx context.Context, spaceType domain.SpaceType) (*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		Where(squirrel.Eq{"type": spaceType}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByType - build select query: %v", ErrBuildQuery, err)
	}

	space, err := scanSpaceFrom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByType - scan space: %v", ErrScanRow, err)
	}

	return space, nil
}

// List получает список пространств, опционально только активных
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Space, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(spaceColumns...).
		From("spaces").
		OrderBy("id ASC")

	if onlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.Space, 0)
	for rows.Next() {
		space, err := scanSpaceFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		spaces = append(spaces, space)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// Update обновляет пространство
func (r *Repository) Update(ctx context.Context, space *domain.Space) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("spaces").
		Set("type", space.Type).
		Set("name", space.Name).
		Set("description", space.Description).
		Set("capacity", space.Capacity).
		Set("hourly_price", space.HourlyPrice).
		Set("daily_price", space.DailyPrice).
		Set("is_active", space.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": space.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

// Delete удаляет пространство (физическое удаление).
// История бронирований хранит тип пространства денормализованно и не страдает.
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSpaceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSpaceFrom(s rowScanner) (*domain.Space, error) {
	var space domain.Space
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&space.ID,
		&space.Type,
		&space.Name,
		&space.Description,
		&space.Capacity,
		&space.HourlyPrice,
		&space.DailyPrice,
		&space.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	space.CreatedAt = createdAt.Time
	space.UpdatedAt = updatedAt.Time

	return &space, nil
}
