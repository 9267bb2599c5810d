package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/football-tournament/internal/domain/staff"
	idgen "github.com/riskibarqy/football-tournament/internal/platform/id"
)

type CreateStaffInput struct {
	Name  string
	Role  string
	Phone string
}

type StaffService struct {
	staffRepo staff.Repository
	idGen     idgen.Generator
}

func NewStaffService(staffRepo staff.Repository, idGen idgen.Generator) *StaffService {
	return &StaffService{staffRepo: staffRepo, idGen: idGen}
}

func (s *StaffService) Create(ctx context.Context, input CreateStaffInput) (staff.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Create")
	defer span.End()

	item := staff.Member{
		Name:  strings.TrimSpace(input.Name),
		Role:  staff.Role(strings.ToLower(strings.TrimSpace(input.Role))),
		Phone: strings.TrimSpace(input.Phone),
	}
	if err := item.Validate(); err != nil {
		return staff.Member{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	memberID, err := s.idGen.NewID()
	if err != nil {
		return staff.Member{}, fmt.Errorf("generate staff id: %w", err)
	}
	item.ID = memberID

	if err := s.staffRepo.Create(ctx, item); err != nil {
		return staff.Member{}, fmt.Errorf("create staff member: %w", err)
	}
	return item, nil
}

func (s *StaffService) Get(ctx context.Context, memberID string) (staff.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Get")
	defer span.End()

	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return staff.Member{}, fmt.Errorf("%w: staff id is required", ErrInvalidInput)
	}
	item, exists, err := s.staffRepo.GetByID(ctx, memberID)
	if err != nil {
		return staff.Member{}, fmt.Errorf("get staff member: %w", err)
	}
	if !exists {
		return staff.Member{}, fmt.Errorf("%w: staff=%s", ErrNotFound, memberID)
	}
	return item, nil
}

func (s *StaffService) List(ctx context.Context) ([]staff.Member, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.List")
	defer span.End()

	items, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	return items, nil
}

func (s *StaffService) Delete(ctx context.Context, memberID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Delete")
	defer span.End()

	item, err := s.Get(ctx, memberID)
	if err != nil {
		return err
	}
	if err := s.staffRepo.Delete(ctx, item.ID); err != nil {
		return fmt.Errorf("delete staff member: %w", err)
	}
	return nil
}
