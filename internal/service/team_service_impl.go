package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/martinhruska/scopeburn/internal/domain"
	"github.com/martinhruska/scopeburn/internal/repository"
)

type teamService struct {
	members repository.TeamMemberRepo
}

func NewTeamService(members repository.TeamMemberRepo) TeamService {
	return &teamService{members: members}
}

func (s *teamService) AddMember(ctx context.Context, m *domain.TeamMember) error {
	if m.Name == "" {
		return fmt.Errorf("member name is required")
	}
	if m.Role == "" {
		return fmt.Errorf("member role is required")
	}
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	if m.FTE <= 0 {
		m.FTE = 1.0
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now
	return s.members.Create(ctx, m)
}

func (s *teamService) GetMember(ctx context.Context, id string) (*domain.TeamMember, error) {
	return s.members.GetByID(ctx, id)
}

func (s *teamService) ListMembers(ctx context.Context) ([]*domain.TeamMember, error) {
	return s.members.List(ctx)
}

func (s *teamService) UpdateMember(ctx context.Context, m *domain.TeamMember) error {
	if m.FTE <= 0 {
		return fmt.Errorf("member FTE must be positive")
	}
	m.UpdatedAt = time.Now().UTC()
	return s.members.Update(ctx, m)
}

func (s *teamService) RemoveMember(ctx context.Context, id string) error {
	return s.members.Delete(ctx, id)
}

func (s *teamService) AddVacation(ctx context.Context, v *domain.Vacation) error {
	if v.MemberID == "" {
		return fmt.Errorf("vacation member is required")
	}
	if v.EndDate.Before(v.StartDate) {
		return fmt.Errorf("vacation end date before start date")
	}
	if _, err := s.members.GetByID(ctx, v.MemberID); err != nil {
		return err
	}
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	return s.members.AddVacation(ctx, v)
}

func (s *teamService) RemoveVacation(ctx context.Context, id string) error {
	return s.members.DeleteVacation(ctx, id)
}
