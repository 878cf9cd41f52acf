package feedback

import (
	"context"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/payload"
	"github.com/saulo-duarte/appraisal-api/internal/reference"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

type Service interface {
	Create(ctx context.Context, raw map[string]any) (*Feedback, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*Feedback, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Feedback, error)
	List(ctx context.Context) ([]Feedback, error)
	ListBy(ctx context.Context, attribute, value string) ([]Feedback, error)
}

type service struct {
	repo      Repository
	employees reference.Finder[employee.EmployeeProfile]
	users     reference.Finder[user.User]
	// defaultReviewerID is used when a new feedback names no reviewer. Zero disables it.
	defaultReviewerID int64
}

func NewService(
	repo Repository,
	employees reference.Finder[employee.EmployeeProfile],
	users reference.Finder[user.User],
	defaultReviewerID int64,
) Service {
	return &service{
		repo:              repo,
		employees:         employees,
		users:             users,
		defaultReviewerID: defaultReviewerID,
	}
}

func (s *service) Create(ctx context.Context, raw map[string]any) (*Feedback, error) {
	log := config.WithContext(ctx)

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid feedback payload")
		return nil, err
	}

	emp, err := reference.Required(ctx, s.employees, employee.EntityName, EntityName, "employee", p.Employee)
	if err != nil {
		log.WithError(err).Warn("Could not resolve employee for feedback")
		return nil, err
	}
	reviewer, err := s.resolveReviewer(ctx, p.Reviewer)
	if err != nil {
		log.WithError(err).Warn("Could not resolve reviewer for feedback")
		return nil, err
	}

	Fields.ApplyDefaults(&p)
	f := &Feedback{
		EmployeeID: emp.ID,
		Employee:   emp,
		ReviewerID: reviewer.ID,
		Reviewer:   reviewer,
	}
	p.apply(f)

	if err := s.repo.Save(ctx, f); err != nil {
		log.WithError(err).Error("Failed to create feedback")
		return nil, err
	}

	log.WithField("feedback_id", f.ID).Info("Feedback created successfully")
	return f, nil
}

// resolveReviewer falls back to the configured default reviewer when ref is
// absent. An explicit reviewer id that does not exist is never replaced.
func (s *service) resolveReviewer(ctx context.Context, ref payload.Opt[int64]) (*user.User, error) {
	if ref.Present() {
		return reference.Resolve(ctx, s.users, user.EntityName, ref.Value)
	}
	if s.defaultReviewerID == 0 {
		return nil, apperror.MissingReference(EntityName, "reviewer")
	}
	config.WithContext(ctx).WithField("reviewer_id", s.defaultReviewerID).Info("No reviewer given, using default reviewer")
	return reference.Resolve(ctx, s.users, user.EntityName, s.defaultReviewerID)
}

func (s *service) Update(ctx context.Context, id int64, raw map[string]any) (*Feedback, error) {
	log := config.WithContext(ctx).WithField("feedback_id", id)

	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Feedback not found for update")
		return nil, err
	}

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid feedback payload")
		return nil, err
	}

	if p.Employee.Set {
		emp, err := reference.Required(ctx, s.employees, employee.EntityName, EntityName, "employee", p.Employee)
		if err != nil {
			log.WithError(err).Warn("Could not resolve employee for feedback")
			return nil, err
		}
		f.EmployeeID, f.Employee = emp.ID, emp
	}
	if p.Reviewer.Set {
		reviewer, err := reference.Required(ctx, s.users, user.EntityName, EntityName, "reviewer", p.Reviewer)
		if err != nil {
			log.WithError(err).Warn("Could not resolve reviewer for feedback")
			return nil, err
		}
		f.ReviewerID, f.Reviewer = reviewer.ID, reviewer
	}
	p.apply(f)

	if err := s.repo.Save(ctx, f); err != nil {
		log.WithError(err).Error("Failed to update feedback")
		return nil, err
	}

	log.Info("Feedback updated successfully")
	return f, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := config.WithContext(ctx).WithField("feedback_id", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete feedback")
		return err
	}

	log.Info("Feedback deleted successfully")
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Feedback, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("feedback_id", id).Warn("Error finding feedback by ID")
		return nil, err
	}
	return f, nil
}

func (s *service) List(ctx context.Context) ([]Feedback, error) {
	feedbacks, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list feedback")
		return nil, err
	}
	return feedbacks, nil
}

func (s *service) ListBy(ctx context.Context, attribute, value string) ([]Feedback, error) {
	feedbacks, err := s.repo.FindBy(ctx, attribute, value)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("attribute", attribute).Warn("Failed to list feedback by attribute")
		return nil, err
	}
	return feedbacks, nil
}
