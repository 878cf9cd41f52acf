package employee

import (
	"context"

	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

type Service interface {
	Create(ctx context.Context, raw map[string]any) (*EmployeeProfile, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*EmployeeProfile, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*EmployeeProfile, error)
	List(ctx context.Context) ([]EmployeeProfile, error)
	ListBy(ctx context.Context, attribute, value string) ([]EmployeeProfile, error)
}

type service struct {
	repo  Repository
	users reference.Finder[user.User]
}

func NewService(repo Repository, users reference.Finder[user.User]) Service {
	return &service{repo: repo, users: users}
}

func (s *service) Create(ctx context.Context, raw map[string]any) (*EmployeeProfile, error) {
	log := config.WithContext(ctx)

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid employee profile payload")
		return nil, err
	}

	u, err := reference.Required(ctx, s.users, user.EntityName, EntityName, "user", p.User)
	if err != nil {
		log.WithError(err).Warn("Could not resolve user for employee profile")
		return nil, err
	}

	Fields.ApplyDefaults(&p)
	e := &EmployeeProfile{UserID: u.ID, User: u}
	p.apply(e)

	if err := s.repo.Save(ctx, e); err != nil {
		log.WithError(err).Error("Failed to create employee profile")
		return nil, err
	}

	log.WithField("employee_profile_id", e.ID).Info("Employee profile created successfully")
	return e, nil
}

func (s *service) Update(ctx context.Context, id int64, raw map[string]any) (*EmployeeProfile, error) {
	log := config.WithContext(ctx).WithField("employee_profile_id", id)

	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Employee profile not found for update")
		return nil, err
	}

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid employee profile payload")
		return nil, err
	}

	if p.User.Set {
		u, err := reference.Required(ctx, s.users, user.EntityName, EntityName, "user", p.User)
		if err != nil {
			log.WithError(err).Warn("Could not resolve user for employee profile")
			return nil, err
		}
		e.UserID, e.User = u.ID, u
	}
	p.apply(e)

	if err := s.repo.Save(ctx, e); err != nil {
		log.WithError(err).Error("Failed to update employee profile")
		return nil, err
	}

	log.Info("Employee profile updated successfully")
	return e, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := config.WithContext(ctx).WithField("employee_profile_id", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete employee profile")
		return err
	}

	log.Info("Employee profile deleted successfully")
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*EmployeeProfile, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("employee_profile_id", id).Warn("Error finding employee profile by ID")
		return nil, err
	}
	return e, nil
}

func (s *service) List(ctx context.Context) ([]EmployeeProfile, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list employee profiles")
		return nil, err
	}
	return profiles, nil
}

func (s *service) ListBy(ctx context.Context, attribute, value string) ([]EmployeeProfile, error) {
	profiles, err := s.repo.FindBy(ctx, attribute, value)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("attribute", attribute).Warn("Failed to list employee profiles by attribute")
		return nil, err
	}
	return profiles, nil
}
