package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-TurnosService/internal/domain"
	"github.com/m04kA/SMC-TurnosService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TurnosService/pkg/psqlbuilder"
)

const table = "schedule_blocks"

// Repository репозиторий недельного расписания бизнеса
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByBusiness получает все блоки бизнеса, упорядоченные по дню недели и началу
func (r *Repository) GetByBusiness(ctx context.Context, businessID int64) ([]domain.ScheduleBlock, error) {
	return r.list(ctx, "GetByBusiness", squirrel.Eq{"business_id": businessID})
}

// GetByBusinessAndWeekday получает блоки одного дня недели
func (r *Repository) GetByBusinessAndWeekday(ctx context.Context, businessID int64, weekday domain.Weekday) ([]domain.ScheduleBlock, error) {
	return r.list(ctx, "GetByBusinessAndWeekday", squirrel.Eq{"business_id": businessID, "weekday": int(weekday)})
}

func (r *Repository) list(ctx context.Context, method string, where squirrel.Eq) ([]domain.ScheduleBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"business_id",
		"weekday",
		"start_time",
		"end_time",
		"slot_interval_minutes",
	).
		From(table).
		Where(where).
		OrderBy("weekday ASC", "start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, method, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, method, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

// ReplaceForBusiness удаляет все блоки бизнеса и вставляет новый набор.
// Должен вызываться внутри транзакции, иначе между DELETE и INSERT расписание будет пустым.
func (r *Repository) ReplaceForBusiness(ctx context.Context, businessID int64, blocks []domain.ScheduleBlock) ([]domain.ScheduleBlock, error) {
	if !dbmetrics.IsInTransaction(ctx) {
		return nil, ErrNotInTransaction
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"business_id": businessID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBusiness - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBusiness - execute delete: %v", ErrExecQuery, err)
	}

	if len(blocks) == 0 {
		return []domain.ScheduleBlock{}, nil
	}

	insert := psqlbuilder.Insert(table).
		Columns("business_id", "weekday", "start_time", "end_time", "slot_interval_minutes")
	for _, b := range blocks {
		insert = insert.Values(businessID, int(b.Weekday), b.StartTime, b.EndTime, b.SlotIntervalMinutes)
	}

	insertQuery, insertArgs, err := insert.
		Suffix("RETURNING id, business_id, weekday, start_time, end_time, slot_interval_minutes").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBusiness - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, insertQuery, insertArgs...)
	if err != nil {
		return nil, fmt.Errorf("%w: ReplaceForBusiness - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBlocks(rows)
}

func scanBlocks(rows *sql.Rows) ([]domain.ScheduleBlock, error) {
	blocks := make([]domain.ScheduleBlock, 0)

	for rows.Next() {
		var (
			b       domain.ScheduleBlock
			weekday int
		)
		if err := rows.Scan(
			&b.ID,
			&b.BusinessID,
			&weekday,
			&b.StartTime,
			&b.EndTime,
			&b.SlotIntervalMinutes,
		); err != nil {
			return nil, fmt.Errorf("%w: scanBlocks - scan row: %v", ErrScanRow, err)
		}
		b.Weekday = domain.Weekday(weekday)
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBlocks - rows error: %w", ErrScanRow, err)
	}

	return blocks, nil
}
