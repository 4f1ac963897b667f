package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/teamboard/internal/domain"
)

// HolidayRepository reads the holiday calendar.
type HolidayRepository interface {
	List(ctx context.Context) ([]domain.Holiday, error)
}

type holidayRepository struct {
	pool *pgxpool.Pool
}

func NewHolidayRepository(pool *pgxpool.Pool) HolidayRepository {
	return &holidayRepository{pool: pool}
}

func (r *holidayRepository) List(ctx context.Context) ([]domain.Holiday, error) {
	rows, err := r.pool.Query(ctx, `SELECT date, name, type FROM holidays ORDER BY date, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Holiday{}
	for rows.Next() {
		var holiday domain.Holiday
		if err := rows.Scan(&holiday.Date, &holiday.Name, &holiday.Type); err != nil {
			return nil, err
		}
		result = append(result, holiday)
	}
	return result, rows.Err()
}
