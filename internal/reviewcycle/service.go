package reviewcycle

import (
	"context"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/config"
)

type Service interface {
	Create(ctx context.Context, raw map[string]any) (*ReviewCycle, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*ReviewCycle, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*ReviewCycle, error)
	List(ctx context.Context) ([]ReviewCycle, error)
	ListBy(ctx context.Context, attribute, value string) ([]ReviewCycle, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, raw map[string]any) (*ReviewCycle, error) {
	log := config.WithContext(ctx)

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid review cycle payload")
		return nil, err
	}
	if !p.CycleName.Present() {
		return nil, apperror.Validation("cycleName", "is required")
	}
	if !p.Deadline.Present() {
		return nil, apperror.Validation("deadline", "is required")
	}

	Fields.ApplyDefaults(&p)
	c := &ReviewCycle{}
	p.apply(c)

	if err := s.repo.Save(ctx, c); err != nil {
		log.WithError(err).Error("Failed to create review cycle")
		return nil, err
	}

	log.WithField("cycle_id", c.ID).Info("Review cycle created successfully")
	return c, nil
}

func (s *service) Update(ctx context.Context, id int64, raw map[string]any) (*ReviewCycle, error) {
	log := config.WithContext(ctx).WithField("cycle_id", id)

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Review cycle not found for update")
		return nil, err
	}

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid review cycle payload")
		return nil, err
	}
	p.apply(c)

	if err := s.repo.Save(ctx, c); err != nil {
		log.WithError(err).Error("Failed to update review cycle")
		return nil, err
	}

	log.Info("Review cycle updated successfully")
	return c, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := config.WithContext(ctx).WithField("cycle_id", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete review cycle")
		return err
	}

	log.Info("Review cycle deleted successfully")
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*ReviewCycle, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("cycle_id", id).Warn("Error finding review cycle by ID")
		return nil, err
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]ReviewCycle, error) {
	cycles, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list review cycles")
		return nil, err
	}
	return cycles, nil
}

func (s *service) ListBy(ctx context.Context, attribute, value string) ([]ReviewCycle, error) {
	cycles, err := s.repo.FindBy(ctx, attribute, value)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("attribute", attribute).Warn("Failed to list review cycles by attribute")
		return nil, err
	}
	return cycles, nil
}
