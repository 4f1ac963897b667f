package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/teamboard/internal/domain"
)

// MemberRepository manages team members.
type MemberRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (*domain.TeamMember, error)
	Create(ctx context.Context, member *domain.TeamMember) error
	Update(ctx context.Context, member *domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

type memberRepository struct {
	pool *pgxpool.Pool
}

func NewMemberRepository(pool *pgxpool.Pool) MemberRepository {
	return &memberRepository{pool: pool}
}

const memberColumns = `id, name, role, email, projects, performance, attendance, hours_logged,
               tasks_completed, tasks, actual_hours, planned_hours`

func (r *memberRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+memberColumns+` FROM members ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.TeamMember{}
	for rows.Next() {
		var member domain.TeamMember
		if err := scanMember(rows, &member); err != nil {
			return nil, err
		}
		result = append(result, member)
	}
	return result, rows.Err()
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.TeamMember, error) {
	var member domain.TeamMember
	if err := scanMember(r.pool.QueryRow(ctx, `SELECT `+memberColumns+` FROM members WHERE id=$1`, id), &member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) Create(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        INSERT INTO members (id, name, role, email, projects, performance, attendance, hours_logged,
                             tasks_completed, tasks, actual_hours, planned_hours)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`
	_, err := r.pool.Exec(ctx, query,
		member.ID,
		member.Name,
		member.Role,
		member.Email,
		member.Projects,
		member.Performance,
		member.Attendance,
		member.HoursLogged,
		member.TasksCompleted,
		member.Tasks,
		member.ActualHours,
		member.PlannedHours,
	)
	return err
}

func (r *memberRepository) Update(ctx context.Context, member *domain.TeamMember) error {
	const query = `
        UPDATE members SET name=$1, role=$2, email=$3, projects=$4, performance=$5, attendance=$6,
            hours_logged=$7, tasks_completed=$8, tasks=$9, actual_hours=$10, planned_hours=$11
        WHERE id=$12`
	cmd, err := r.pool.Exec(ctx, query,
		member.Name,
		member.Role,
		member.Email,
		member.Projects,
		member.Performance,
		member.Attendance,
		member.HoursLogged,
		member.TasksCompleted,
		member.Tasks,
		member.ActualHours,
		member.PlannedHours,
		member.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *memberRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "members", id)
}

func scanMember(row pgx.Row, member *domain.TeamMember) error {
	if err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Role,
		&member.Email,
		&member.Projects,
		&member.Performance,
		&member.Attendance,
		&member.HoursLogged,
		&member.TasksCompleted,
		&member.Tasks,
		&member.ActualHours,
		&member.PlannedHours,
	); err != nil {
		return err
	}
	if member.Projects == nil {
		member.Projects = []string{}
	}
	return nil
}
