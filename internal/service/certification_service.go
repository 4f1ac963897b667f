package service

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/status"
	"github.com/spec-kit/teamboard/internal/view"
)

// CertificationService manages certifications and derives their display status.
type CertificationService struct {
	deps       Dependencies
	classifier *status.Classifier
}

func NewCertificationService(deps Dependencies) *CertificationService {
	return &CertificationService{deps: deps, classifier: deps.classifier()}
}

// List returns certifications matching criteria. Status criteria compare against the derived
// status. A strict classifier fails the whole listing when any stored date is malformed.
func (s *CertificationService) List(ctx context.Context, criteria view.Criteria) ([]domain.Certification, error) {
	certs, err := s.deps.CertificationRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.FilterCertifications(certs, criteria, s.classifier)
}

// Grouped buckets every certification by derived status.
func (s *CertificationService) Grouped(ctx context.Context) (view.Groups[domain.Certification], error) {
	certs, err := s.deps.CertificationRepo.List(ctx)
	if err != nil {
		return view.Groups[domain.Certification]{}, err
	}
	return view.GroupCertifications(certs, s.classifier)
}

// checkDates rejects a malformed expiration date before it is stored. Lenient classifiers
// only log it.
func (s *CertificationService) checkDates(cert domain.Certification) error {
	_, err := s.classifier.Certifications([]domain.Certification{cert})
	return err
}

func (s *CertificationService) Get(ctx context.Context, id string) (*domain.Certification, error) {
	cert, err := s.deps.CertificationRepo.GetByID(ctx, id)
	return cert, mapRepoError("certification", id, err)
}

func (s *CertificationService) Create(ctx context.Context, cert domain.Certification) (*domain.Certification, error) {
	if err := cert.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDates(cert); err != nil {
		return nil, err
	}
	if cert.ID == "" {
		cert.ID = domain.NewID()
	}
	if cert.Skills == nil {
		cert.Skills = []string{}
	}
	if err := s.deps.CertificationRepo.Create(ctx, &cert); err != nil {
		return nil, mapRepoError("certification", cert.ID, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityCreated, events.EntityCertification, cert.ID, cert.Name))
	return &cert, nil
}

func (s *CertificationService) Update(ctx context.Context, id string, cert domain.Certification) (*domain.Certification, error) {
	cert.ID = id
	if err := cert.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDates(cert); err != nil {
		return nil, err
	}
	if cert.Skills == nil {
		cert.Skills = []string{}
	}
	if err := s.deps.CertificationRepo.Update(ctx, &cert); err != nil {
		return nil, mapRepoError("certification", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityUpdated, events.EntityCertification, id, cert.Name))
	return &cert, nil
}

func (s *CertificationService) Delete(ctx context.Context, id string) error {
	if err := s.deps.CertificationRepo.Delete(ctx, id); err != nil {
		return mapRepoError("certification", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityDeleted, events.EntityCertification, id, ""))
	return nil
}
