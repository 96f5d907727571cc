package plan

import (
	"context"
	"errors"
)

var (
	ErrPlanNotFound = errors.New("plan not found")
	ErrPlanInUse    = errors.New("plan has active memberships")
)

type Service interface {
	Create(ctx context.Context, req CreatePlanRequest) (*Plan, error)
	GetByID(ctx context.Context, id int) (*Plan, error)
	List(ctx context.Context, onlyActive bool) ([]Plan, error)
	Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreatePlanRequest) (*Plan, error) {
	return s.repo.Create(ctx, req.Name, req.Description, req.PriceCents, req.DurationMonths)
}

func (s *service) GetByID(ctx context.Context, id int) (*Plan, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrPlanNotFound
	}
	return p, nil
}

func (s *service) List(ctx context.Context, onlyActive bool) ([]Plan, error) {
	return s.repo.List(ctx, onlyActive)
}

func (s *service) Update(ctx context.Context, id int, req UpdatePlanRequest) (*Plan, error) {
	p, err := s.repo.Update(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}
	return p, nil
}

// Delete refuses to remove a plan while any membership still references it
// with status 'active'.
func (s *service) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return ErrPlanNotFound
	}

	count, err := s.repo.CountActiveMemberships(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrPlanInUse
	}

	return s.repo.Delete(ctx, id)
}
