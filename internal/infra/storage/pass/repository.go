package pass

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

var passColumns = []string{
	"id",
	"type",
	"name",
	"description",
	"price",
	"validity_days",
	"services_included",
	"features",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога тарифов (pass-планов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый тариф
func (r *Repository) Create(ctx context.Context, pass *domain.Pass) (*domain.Pass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, features, err := encodeJSONFields(pass)
	if err != nil {
		return nil, err
	}

	query, args, err := psqlbuilder.Insert("passes").
		Columns("type", "name", "description", "price", "validity_days", "services_included", "features", "is_active").
		Values(pass.Type, pass.Name, pass.Description, pass.Price, pass.ValidityDays, services, features, pass.IsActive).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&pass.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	pass.CreatedAt = createdAt.Time
	pass.UpdatedAt = updatedAt.Time

	return pass, nil
}

// GetByID получает тариф по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Pass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(passColumns...).
		From("passes").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	pass, err := scanPassFrom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan pass: %v", ErrScanRow, err)
	}

	return pass, nil
}

// GetByType получает тариф по типу
func (r *Repository) GetByType(ctx context.Context, passType string) (*domain.Pass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(passColumns...).
		From("passes").
		Where(squirrel.Eq{"type": passType}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByType - build select query: %v", ErrBuildQuery, err)
	}

	pass, err := scanPassFrom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrPassNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByType - scan pass: %v", ErrScanRow, err)
	}

	return pass, nil
}

// List получает список тарифов, опционально только активных
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Pass, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(passColumns...).
		From("passes").
		OrderBy("price ASC")

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

	passes := make([]*domain.Pass, 0)
	for rows.Next() {
		pass, err := scanPassFrom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		passes = append(passes, pass)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return passes, nil
}

// Update обновляет тариф
func (r *Repository) Update(ctx context.Context, pass *domain.Pass) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, features, err := encodeJSONFields(pass)
	if err != nil {
		return err
	}

	query, args, err := psqlbuilder.Update("passes").
		Set("type", pass.Type).
		Set("name", pass.Name).
		Set("description", pass.Description).
		Set("price", pass.Price).
		Set("validity_days", pass.ValidityDays).
		Set("services_included", services).
		Set("features", features).
		Set("is_active", pass.IsActive).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": pass.ID}).
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
		return ErrPassNotFound
	}

	return nil
}

func encodeJSONFields(pass *domain.Pass) ([]byte, []byte, error) {
	services, err := json.Marshal(pass.ServicesIncluded)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal services_included: %v", ErrEncode, err)
	}

	features, err := json.Marshal(pass.Features)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: marshal features: %v", ErrEncode, err)
	}

	return services, features, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPassFrom(s rowScanner) (*domain.Pass, error) {
	var pass domain.Pass
	var services, features []byte
	var createdAt, updatedAt sql.NullTime

	err := s.Scan(
		&pass.ID,
		&pass.Type,
		&pass.Name,
		&pass.Description,
		&pass.Price,
		&pass.ValidityDays,
		&services,
		&features,
		&pass.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &pass.ServicesIncluded); err != nil {
			return nil, err
		}
	}
	if len(features) > 0 {
		if err := json.Unmarshal(features, &pass.Features); err != nil {
			return nil, err
		}
	}

	pass.CreatedAt = createdAt.Time
	pass.UpdatedAt = updatedAt.Time

	return &pass, nil
}
