package service

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/view"
)

// ProjectService manages projects.
type ProjectService struct {
	deps Dependencies
}

func NewProjectService(deps Dependencies) *ProjectService {
	return &ProjectService{deps: deps}
}

// List returns projects matching criteria. Status criteria compare against the canonical
// vocabulary.
func (s *ProjectService) List(ctx context.Context, criteria view.Criteria) ([]domain.Project, error) {
	projects, err := s.deps.ProjectRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.FilterProjects(projects, criteria), nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	project, err := s.deps.ProjectRepo.GetByID(ctx, id)
	return project, mapRepoError("project", id, err)
}

func (s *ProjectService) Create(ctx context.Context, project domain.Project) (*domain.Project, error) {
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if project.ID == "" {
		project.ID = domain.NewID()
	}
	if project.Team == nil {
		project.Team = []string{}
	}
	if err := s.deps.ProjectRepo.Create(ctx, &project); err != nil {
		return nil, mapRepoError("project", project.ID, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityCreated, events.EntityProject, project.ID, project.Name))
	return &project, nil
}

func (s *ProjectService) Update(ctx context.Context, id string, project domain.Project) (*domain.Project, error) {
	project.ID = id
	if err := project.Validate(); err != nil {
		return nil, err
	}
	if project.Team == nil {
		project.Team = []string{}
	}
	if err := s.deps.ProjectRepo.Update(ctx, &project); err != nil {
		return nil, mapRepoError("project", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityUpdated, events.EntityProject, id, project.Name))
	return &project, nil
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	if err := s.deps.ProjectRepo.Delete(ctx, id); err != nil {
		return mapRepoError("project", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityDeleted, events.EntityProject, id, ""))
	return nil
}
