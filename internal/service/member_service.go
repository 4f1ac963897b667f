package service

import (
	"context"

	"github.com/spec-kit/teamboard/internal/domain"
	"github.com/spec-kit/teamboard/internal/events"
	"github.com/spec-kit/teamboard/internal/view"
)

// MemberService manages team members.
type MemberService struct {
	deps Dependencies
}

func NewMemberService(deps Dependencies) *MemberService {
	return &MemberService{deps: deps}
}

func (s *MemberService) List(ctx context.Context, criteria view.Criteria) ([]domain.TeamMember, error) {
	members, err := s.deps.MemberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.FilterMembers(members, criteria), nil
}

func (s *MemberService) Get(ctx context.Context, id string) (*domain.TeamMember, error) {
	member, err := s.deps.MemberRepo.GetByID(ctx, id)
	return member, mapRepoError("member", id, err)
}

func (s *MemberService) Create(ctx context.Context, member domain.TeamMember) (*domain.TeamMember, error) {
	if err := member.Validate(); err != nil {
		return nil, err
	}
	if member.ID == "" {
		member.ID = domain.NewID()
	}
	if member.Projects == nil {
		member.Projects = []string{}
	}
	if err := s.deps.MemberRepo.Create(ctx, &member); err != nil {
		return nil, mapRepoError("member", member.ID, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityCreated, events.EntityMember, member.ID, member.Name))
	return &member, nil
}

func (s *MemberService) Update(ctx context.Context, id string, member domain.TeamMember) (*domain.TeamMember, error) {
	member.ID = id
	if err := member.Validate(); err != nil {
		return nil, err
	}
	if member.Projects == nil {
		member.Projects = []string{}
	}
	if err := s.deps.MemberRepo.Update(ctx, &member); err != nil {
		return nil, mapRepoError("member", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityUpdated, events.EntityMember, id, member.Name))
	return &member, nil
}

func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.deps.MemberRepo.Delete(ctx, id); err != nil {
		return mapRepoError("member", id, err)
	}
	publishEvent(ctx, s.deps.Dispatcher, entityEvent(events.EventEntityDeleted, events.EntityMember, id, ""))
	return nil
}
