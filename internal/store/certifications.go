package store

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
)

func (s *Store) certificationOps() entityOps[domain.Certification] {
	ops := entityOps[domain.Certification]{
		entity:   events.EntityCertification,
		coll:     &s.certifications,
		label:    func(c domain.Certification) string { return c.Name },
		validate: domain.Certification.Validate,
	}
	if s.backend != nil {
		ops.create = s.backend.CreateCertification
		ops.update = s.backend.UpdateCertification
		ops.remove = s.backend.DeleteCertification
	}
	return ops
}

// AddCertification creates a certification. The expiration date is stored as given; malformed
// dates are handled when the status is derived.
func (s *Store) AddCertification(ctx context.Context, cert domain.Certification) (domain.Certification, error) {
	if err := cert.Validate(); err != nil {
		return domain.Certification{}, err
	}
	if cert.ID == "" {
		cert.ID = domain.NewID()
	}
	if cert.Skills == nil {
		cert.Skills = []string{}
	}
	return create(ctx, s, s.certificationOps(), cert)
}

func (s *Store) UpdateCertification(ctx context.Context, id string, patch CertificationPatch) (domain.Certification, error) {
	return update(ctx, s, s.certificationOps(), id, patch.apply)
}

func (s *Store) DeleteCertification(ctx context.Context, id string) error {
	return remove(ctx, s, s.certificationOps(), id)
}
