package goal

import (
	"context"

	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
)

type Service interface {
	Create(ctx context.Context, raw map[string]any) (*Goal, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*Goal, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Goal, error)
	List(ctx context.Context) ([]Goal, error)
	ListBy(ctx context.Context, attribute, value string) ([]Goal, error)
}

type service struct {
	repo       Repository
	employees  reference.Finder[employee.EmployeeProfile]
	appraisals reference.Finder[appraisal.Appraisal]
}

func NewService(repo Repository, employees reference.Finder[employee.EmployeeProfile], appraisals reference.Finder[appraisal.Appraisal]) Service {
	return &service{repo: repo, employees: employees, appraisals: appraisals}
}

func (s *service) Create(ctx context.Context, raw map[string]any) (*Goal, error) {
	log := config.WithContext(ctx)

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid goal payload")
		return nil, err
	}

	emp, err := reference.Required(ctx, s.employees, employee.EntityName, EntityName, "employee", p.Employee)
	if err != nil {
		log.WithError(err).Warn("Could not resolve employee for goal")
		return nil, err
	}
	appr, err := reference.Optional(ctx, s.appraisals, appraisal.EntityName, p.Appraisal)
	if err != nil {
		log.WithError(err).Warn("Could not resolve appraisal for goal")
		return nil, err
	}

	Fields.ApplyDefaults(&p)
	g := &Goal{EmployeeID: emp.ID, Employee: emp}
	p.apply(g)
	setAppraisal(g, appr)

	if err := s.repo.Save(ctx, g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	log.WithField("goal_id", g.ID).Info("Goal created successfully")
	return g, nil
}

func (s *service) Update(ctx context.Context, id int64, raw map[string]any) (*Goal, error) {
	log := config.WithContext(ctx).WithField("goal_id", id)

	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Goal not found for update")
		return nil, err
	}

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid goal payload")
		return nil, err
	}

	if p.Employee.Set {
		emp, err := reference.Required(ctx, s.employees, employee.EntityName, EntityName, "employee", p.Employee)
		if err != nil {
			log.WithError(err).Warn("Could not resolve employee for goal")
			return nil, err
		}
		g.EmployeeID, g.Employee = emp.ID, emp
	}
	if p.Appraisal.Set {
		appr, err := reference.Optional(ctx, s.appraisals, appraisal.EntityName, p.Appraisal)
		if err != nil {
			log.WithError(err).Warn("Could not resolve appraisal for goal")
			return nil, err
		}
		setAppraisal(g, appr)
	}
	p.apply(g)

	if err := s.repo.Save(ctx, g); err != nil {
		log.WithError(err).Error("Failed to update goal")
		return nil, err
	}

	log.Info("Goal updated successfully")
	return g, nil
}

func setAppraisal(g *Goal, appr *appraisal.Appraisal) {
	if appr == nil {
		g.AppraisalID, g.Appraisal = nil, nil
		return
	}
	g.AppraisalID, g.Appraisal = &appr.ID, appr
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := config.WithContext(ctx).WithField("goal_id", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete goal")
		return err
	}

	log.Info("Goal deleted successfully")
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Goal, error) {
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("goal_id", id).Warn("Error finding goal by ID")
		return nil, err
	}
	return g, nil
}

func (s *service) List(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list goals")
		return nil, err
	}
	return goals, nil
}

func (s *service) ListBy(ctx context.Context, attribute, value string) ([]Goal, error) {
	goals, err := s.repo.FindBy(ctx, attribute, value)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("attribute", attribute).Warn("Failed to list goals by attribute")
		return nil, err
	}
	return goals, nil
}
