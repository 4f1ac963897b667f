package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/teamboard/internal/domain"
)

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	Delete(ctx context.Context, id string) error
}

type ticketRepository struct {
	pool *pgxpool.Pool
}

// NewTicketRepository instantiates repository.
func NewTicketRepository(pool *pgxpool.Pool) TicketRepository {
	return &ticketRepository{pool: pool}
}

const ticketColumns = `id, title, description, status, priority, assignee, project,
               created_at, updated_at, time_spent, time_estimate, comments`

func (r *ticketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+ticketColumns+` FROM tickets ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	var ticket domain.Ticket
	if err := scanTicket(r.pool.QueryRow(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE id=$1`, id), &ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        INSERT INTO tickets (id, title, description, status, priority, assignee, project,
                             created_at, updated_at, time_spent, time_estimate, comments)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		ticket.ID,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Assignee,
		ticket.Project,
		ticket.CreatedAt,
		ticket.UpdatedAt,
		ticket.TimeSpent,
		ticket.TimeEstimate,
		ticket.Comments,
	).Scan(&ticket.CreatedAt, &ticket.UpdatedAt)
}

func (r *ticketRepository) Update(ctx context.Context, ticket *domain.Ticket) error {
	const query = `
        UPDATE tickets SET title=$1, description=$2, status=$3, priority=$4, assignee=$5, project=$6,
            time_spent=$7, time_estimate=$8, comments=$9, updated_at=$10
        WHERE id=$11`
	cmd, err := r.pool.Exec(ctx, query,
		ticket.Title,
		ticket.Description,
		ticket.Status,
		ticket.Priority,
		ticket.Assignee,
		ticket.Project,
		ticket.TimeSpent,
		ticket.TimeEstimate,
		ticket.Comments,
		ticket.UpdatedAt,
		ticket.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ticketRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "tickets", id)
}

func scanTicket(row pgx.Row, ticket *domain.Ticket) error {
	return row.Scan(
		&ticket.ID,
		&ticket.Title,
		&ticket.Description,
		&ticket.Status,
		&ticket.Priority,
		&ticket.Assignee,
		&ticket.Project,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
		&ticket.TimeSpent,
		&ticket.TimeEstimate,
		&ticket.Comments,
	)
}

func scanTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	result := []domain.Ticket{}
	for rows.Next() {
		var ticket domain.Ticket
		if err := scanTicket(rows, &ticket); err != nil {
			return nil, err
		}
		if ticket.Comments == nil {
			ticket.Comments = []domain.Comment{}
		}
		result = append(result, ticket)
	}
	return result, rows.Err()
}

// deleteByID removes a row by primary key, reporting pgx.ErrNoRows when nothing matched.
func deleteByID(ctx context.Context, pool *pgxpool.Pool, table, id string) error {
	cmd, err := pool.Exec(ctx, `DELETE FROM `+table+` WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
