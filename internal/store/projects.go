package store

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
)

func (s *Store) projectOps() entityOps[domain.Project] {
	ops := entityOps[domain.Project]{
		entity:   events.EntityProject,
		coll:     &s.projects,
		label:    func(p domain.Project) string { return p.Name },
		validate: domain.Project.Validate,
	}
	if s.backend != nil {
		ops.create = s.backend.CreateProject
		ops.update = s.backend.UpdateProject
		ops.remove = s.backend.DeleteProject
	}
	return ops
}

func (s *Store) AddProject(ctx context.Context, project domain.Project) (domain.Project, error) {
	if err := project.Validate(); err != nil {
		return domain.Project{}, err
	}
	if project.ID == "" {
		project.ID = domain.NewID()
	}
	if project.Team == nil {
		project.Team = []string{}
	}
	return create(ctx, s, s.projectOps(), project)
}

// AddProjectQuick creates a pipeline project from just a name and an end date.
func (s *Store) AddProjectQuick(ctx context.Context, name, endDate string) (domain.Project, error) {
	project := domain.Project{
		ID:       domain.NewID(),
		Name:     name,
		EndDate:  endDate,
		Status:   string(domain.ProjectStatusPipeline),
		Progress: 0,
		Team:     []string{},
	}
	if err := project.ValidateQuickAdd(); err != nil {
		return domain.Project{}, err
	}
	return create(ctx, s, s.projectOps(), project)
}

func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) (domain.Project, error) {
	return update(ctx, s, s.projectOps(), id, patch.apply)
}

func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return remove(ctx, s, s.projectOps(), id)
}
