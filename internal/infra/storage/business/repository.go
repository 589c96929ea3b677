package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurnosService/pkg/psqlbuilder"
)

const table = "businesses"

var columns = []string{
	"id",
	"owner_user_id",
	"name",
	"description",
	"code",
	"tax_id",
	"phone",
	"address",
	"category",
	"social",
	"website",
	"contact_email",
	"logo_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий бизнесов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бизнес. Повтор owner_user_id или code возвращает ErrDuplicate.
func (r *Repository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("owner_user_id", "name", "description", "code").
		Values(b.OwnerUserID, b.Name, b.Description, b.Code).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, fmt.Errorf("%w: Create - %v", ErrDuplicate, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return b, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"id": id})
}

// GetByCode получает бизнес по публичному коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Business, error) {
	return r.getOne(ctx, "GetByCode", squirrel.Eq{"code": code})
}

// GetByOwner получает бизнес пользователя
func (r *Repository) GetByOwner(ctx context.Context, ownerUserID int64) (*domain.Business, error) {
	return r.getOne(ctx, "GetByOwner", squirrel.Eq{"owner_user_id": ownerUserID})
}

// CodeExists проверяет занятость кода
func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(table).
		Where(squirrel.Eq{"code": code}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: CodeExists - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: CodeExists - scan: %v", ErrScanRow, err)
	}
	return exists, nil
}

// List публичный список бизнесов, сначала новые
func (r *Repository) List(ctx context.Context, filter domain.BusinessFilter) ([]*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).From(table)

	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		selectBuilder = selectBuilder.Where(squirrel.Or{
			squirrel.ILike{"name": pattern},
			squirrel.ILike{"category": pattern},
		})
	}
	if filter.Category != "" {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": filter.Category})
	}

	query, args, err := selectBuilder.
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Business, 0)
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Categories количество бизнесов по категориям, по убыванию количества
func (r *Repository) Categories(ctx context.Context) ([]domain.CategoryCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("category", "COUNT(*)").
		From(table).
		Where(squirrel.NotEq{"category": nil}).
		Where(squirrel.NotEq{"category": ""}).
		GroupBy("category").
		OrderBy("COUNT(*) DESC", "category ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Categories - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Categories - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var c domain.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: Categories - scan row: %v", ErrScanRow, err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Categories - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// Update обновляет профиль бизнеса (код и владелец не меняются)
func (r *Repository) Update(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("name", b.Name).
		Set("description", b.Description).
		Set("tax_id", b.TaxID).
		Set("phone", b.Phone).
		Set("address", b.Address).
		Set("category", b.Category).
		Set("social", b.Social).
		Set("website", b.Website).
		Set("contact_email", b.ContactEmail).
		Set("logo_url", b.LogoURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return updated, nil
}

func (r *Repository) getOne(ctx context.Context, method string, where squirrel.Eq) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	b, err := scanBusiness(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan business: %v", ErrScanRow, method, err)
	}

	return b, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanBusiness(row scanner) (*domain.Business, error) {
	var b domain.Business
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.OwnerUserID,
		&b.Name,
		&b.Description,
		&b.Code,
		&b.TaxID,
		&b.Phone,
		&b.Address,
		&b.Category,
		&b.Social,
		&b.Website,
		&b.ContactEmail,
		&b.LogoURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}
