package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/teamboard/internal/domain"
)

// ProjectRepository manages projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	Create(ctx context.Context, project *domain.Project) error
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type projectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &projectRepository{pool: pool}
}

const projectColumns = `id, name, description, status, priority, progress, budget, spent, team,
               start_date, end_date, tasks_completed, tasks_total`

func (r *projectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := scanProject(rows, &project); err != nil {
			return nil, err
		}
		result = append(result, project)
	}
	return result, rows.Err()
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	var project domain.Project
	if err := scanProject(r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id=$1`, id), &project); err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	const query = `
        INSERT INTO projects (id, name, description, status, priority, progress, budget, spent, team,
                              start_date, end_date, tasks_completed, tasks_total)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`
	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Name,
		project.Description,
		project.Status,
		project.Priority,
		project.Progress,
		project.Budget,
		project.Spent,
		project.Team,
		project.StartDate,
		project.EndDate,
		project.Tasks.Completed,
		project.Tasks.Total,
	)
	return err
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	const query = `
        UPDATE projects SET name=$1, description=$2, status=$3, priority=$4, progress=$5, budget=$6,
            spent=$7, team=$8, start_date=$9, end_date=$10, tasks_completed=$11, tasks_total=$12
        WHERE id=$13`
	cmd, err := r.pool.Exec(ctx, query,
		project.Name,
		project.Description,
		project.Status,
		project.Priority,
		project.Progress,
		project.Budget,
		project.Spent,
		project.Team,
		project.StartDate,
		project.EndDate,
		project.Tasks.Completed,
		project.Tasks.Total,
		project.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "projects", id)
}

func scanProject(row pgx.Row, project *domain.Project) error {
	if err := row.Scan(
		&project.ID,
		&project.Name,
		&project.Description,
		&project.Status,
		&project.Priority,
		&project.Progress,
		&project.Budget,
		&project.Spent,
		&project.Team,
		&project.StartDate,
		&project.EndDate,
		&project.Tasks.Completed,
		&project.Tasks.Total,
	); err != nil {
		return err
	}
	if project.Team == nil {
		project.Team = []string{}
	}
	return nil
}
