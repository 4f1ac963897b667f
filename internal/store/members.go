package store

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
)

func (s *Store) memberOps() entityOps[domain.TeamMember] {
	ops := entityOps[domain.TeamMember]{
		entity:   events.EntityMember,
		coll:     &s.members,
		label:    func(m domain.TeamMember) string { return m.Name },
		validate: domain.TeamMember.Validate,
	}
	if s.backend != nil {
		ops.create = s.backend.CreateMember
		ops.update = s.backend.UpdateMember
		ops.remove = s.backend.DeleteMember
	}
	return ops
}

func (s *Store) AddMember(ctx context.Context, member domain.TeamMember) (domain.TeamMember, error) {
	if err := member.Validate(); err != nil {
		return domain.TeamMember{}, err
	}
	if member.ID == "" {
		member.ID = domain.NewID()
	}
	if member.Projects == nil {
		member.Projects = []string{}
	}
	return create(ctx, s, s.memberOps(), member)
}

func (s *Store) UpdateMember(ctx context.Context, id string, patch MemberPatch) (domain.TeamMember, error) {
	return update(ctx, s, s.memberOps(), id, patch.apply)
}

func (s *Store) DeleteMember(ctx context.Context, id string) error {
	return remove(ctx, s, s.memberOps(), id)
}
