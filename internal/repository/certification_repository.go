package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/teamboard/internal/domain"
)

// CertificationRepository manages certifications. Expiration dates are stored verbatim.
type CertificationRepository interface {
	List(ctx context.Context) ([]domain.Certification, error)
	GetByID(ctx context.Context, id string) (*domain.Certification, error)
	Create(ctx context.Context, cert *domain.Certification) error
	Update(ctx context.Context, cert *domain.Certification) error
	Delete(ctx context.Context, id string) error
}

type certificationRepository struct {
	pool *pgxpool.Pool
}

func NewCertificationRepository(pool *pgxpool.Pool) CertificationRepository {
	return &certificationRepository{pool: pool}
}

const certificationColumns = `id, name, provider, date_obtained, expiration_date, skills, level,
               is_completed, assigned_to, progress`

func (r *certificationRepository) List(ctx context.Context) ([]domain.Certification, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+certificationColumns+` FROM certifications ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Certification{}
	for rows.Next() {
		var cert domain.Certification
		if err := scanCertification(rows, &cert); err != nil {
			return nil, err
		}
		result = append(result, cert)
	}
	return result, rows.Err()
}

func (r *certificationRepository) GetByID(ctx context.Context, id string) (*domain.Certification, error) {
	var cert domain.Certification
	row := r.pool.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id=$1`, id)
	if err := scanCertification(row, &cert); err != nil {
		return nil, err
	}
	return &cert, nil
}

func (r *certificationRepository) Create(ctx context.Context, cert *domain.Certification) error {
	const query = `
        INSERT INTO certifications (id, name, provider, date_obtained, expiration_date, skills, level,
                                    is_completed, assigned_to, progress)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`
	_, err := r.pool.Exec(ctx, query,
		cert.ID,
		cert.Name,
		cert.Provider,
		cert.DateObtained,
		cert.ExpirationDate,
		cert.Skills,
		cert.Level,
		cert.IsCompleted,
		cert.AssignedTo,
		cert.Progress,
	)
	return err
}

func (r *certificationRepository) Update(ctx context.Context, cert *domain.Certification) error {
	const query = `
        UPDATE certifications SET name=$1, provider=$2, date_obtained=$3, expiration_date=$4, skills=$5,
            level=$6, is_completed=$7, assigned_to=$8, progress=$9
        WHERE id=$10`
	cmd, err := r.pool.Exec(ctx, query,
		cert.Name,
		cert.Provider,
		cert.DateObtained,
		cert.ExpirationDate,
		cert.Skills,
		cert.Level,
		cert.IsCompleted,
		cert.AssignedTo,
		cert.Progress,
		cert.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *certificationRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.pool, "certifications", id)
}

func scanCertification(row pgx.Row, cert *domain.Certification) error {
	if err := row.Scan(
		&cert.ID,
		&cert.Name,
		&cert.Provider,
		&cert.DateObtained,
		&cert.ExpirationDate,
		&cert.Skills,
		&cert.Level,
		&cert.IsCompleted,
		&cert.AssignedTo,
		&cert.Progress,
	); err != nil {
		return err
	}
	if cert.Skills == nil {
		cert.Skills = []string{}
	}
	return nil
}
