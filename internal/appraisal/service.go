package appraisal

import (
	"context"

	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
)

type Service interface {
	Create(ctx context.Context, raw map[string]any) (*Appraisal, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*Appraisal, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Appraisal, error)
	List(ctx context.Context) ([]Appraisal, error)
	ListBy(ctx context.Context, attribute, value string) ([]Appraisal, error)
}

type service struct {
	repo      Repository
	employees reference.Finder[employee.EmployeeProfile]
	cycles    reference.Finder[reviewcycle.ReviewCycle]
}

func NewService(repo Repository, employees reference.Finder[employee.EmployeeProfile], cycles reference.Finder[reviewcycle.ReviewCycle]) Service {
	return &service{repo: repo, employees: employees, cycles: cycles}
}

func (s *service) Create(ctx context.Context, raw map[string]any) (*Appraisal, error) {
	log := config.WithContext(ctx)

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid appraisal payload")
		return nil, err
	}

	emp, err := reference.Required(ctx, s.employees, employee.EntityName, EntityName, "employee", p.Employee)
	if err != nil {
		log.WithError(err).Warn("Could not resolve employee for appraisal")
		return nil, err
	}
	cycle, err := reference.Optional(ctx, s.cycles, reviewcycle.EntityName, p.ReviewCycle)
	if err != nil {
		log.WithError(err).Warn("Could not resolve review cycle for appraisal")
		return nil, err
	}

	Fields.ApplyDefaults(&p)
	a := &Appraisal{EmployeeID: emp.ID, Employee: emp}
	p.apply(a)
	setCycle(a, cycle, p.CycleName.Present())

	if err := s.repo.Save(ctx, a); err != nil {
		log.WithError(err).Error("Failed to create appraisal")
		return nil, err
	}

	log.WithField("appraisal_id", a.ID).Info("Appraisal created successfully")
	return a, nil
}

func (s *service) Update(ctx context.Context, id int64, raw map[string]any) (*Appraisal, error) {
	log := config.WithContext(ctx).WithField("appraisal_id", id)

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Appraisal not found for update")
		return nil, err
	}

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid appraisal payload")
		return nil, err
	}

	if p.Employee.Set {
		emp, err := reference.Required(ctx, s.employees, employee.EntityName, EntityName, "employee", p.Employee)
		if err != nil {
			log.WithError(err).Warn("Could not resolve employee for appraisal")
			return nil, err
		}
		a.EmployeeID, a.Employee = emp.ID, emp
	}

	var cycle *reviewcycle.ReviewCycle
	if p.ReviewCycle.Set {
		if cycle, err = reference.Optional(ctx, s.cycles, reviewcycle.EntityName, p.ReviewCycle); err != nil {
			log.WithError(err).Warn("Could not resolve review cycle for appraisal")
			return nil, err
		}
	}

	p.apply(a)
	if p.ReviewCycle.Set {
		setCycle(a, cycle, p.CycleName.Present())
	}

	if err := s.repo.Save(ctx, a); err != nil {
		log.WithError(err).Error("Failed to update appraisal")
		return nil, err
	}

	log.Info("Appraisal updated successfully")
	return a, nil
}

// setCycle links a to cycle, or unlinks it when cycle is nil. The cycle's
// name is copied unless the payload carried its own.
func setCycle(a *Appraisal, cycle *reviewcycle.ReviewCycle, nameGiven bool) {
	if cycle == nil {
		a.ReviewCycleID, a.ReviewCycle = nil, nil
		return
	}
	a.ReviewCycleID, a.ReviewCycle = &cycle.ID, cycle
	if !nameGiven {
		a.CycleName = cycle.CycleName
	}
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := config.WithContext(ctx).WithField("appraisal_id", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete appraisal")
		return err
	}

	log.Info("Appraisal deleted successfully")
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Appraisal, error) {
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("appraisal_id", id).Warn("Error finding appraisal by ID")
		return nil, err
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]Appraisal, error) {
	appraisals, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list appraisals")
		return nil, err
	}
	return appraisals, nil
}

func (s *service) ListBy(ctx context.Context, attribute, value string) ([]Appraisal, error) {
	appraisals, err := s.repo.FindBy(ctx, attribute, value)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("attribute", attribute).Warn("Failed to list appraisals by attribute")
		return nil, err
	}
	return appraisals, nil
}
