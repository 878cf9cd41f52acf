package user

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/auth"
	"github.com/saulo-duarte/appraisal-api/internal/config"
)

type Service interface {
	Create(ctx context.Context, raw map[string]any) (*User, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*User, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*User, error)
	List(ctx context.Context) ([]User, error)
	ListBy(ctx context.Context, attribute, value string) ([]User, error)
	ListByRole(ctx context.Context, role string) ([]User, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
	Health(ctx context.Context) (*HealthResponse, error)
}

type service struct {
	repo     Repository
	tokenTTL time.Duration
}

func NewService(repo Repository, tokenTTL time.Duration) Service {
	return &service{repo: repo, tokenTTL: tokenTTL}
}

func (s *service) Create(ctx context.Context, raw map[string]any) (*User, error) {
	log := config.WithContext(ctx)

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid user payload")
		return nil, err
	}

	required := []struct {
		name    string
		present bool
	}{
		{"email", p.Email.Present()},
		{"fullName", p.FullName.Present()},
		{"phoneNumber", p.PhoneNumber.Present()},
		{"password", p.Password.Present()},
	}
	for _, f := range required {
		if !f.present {
			err := apperror.Validation(f.name, "is required")
			log.WithError(err).Warn("Invalid user payload")
			return nil, err
		}
	}

	Fields.ApplyDefaults(&p)
	u := &User{}
	p.apply(u)

	if err := s.checkUnique(ctx, u); err != nil {
		log.WithError(err).Warn("Duplicate user")
		return nil, err
	}

	if u.Password, err = hashPassword(p.Password.Value); err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, err
	}

	if err := s.repo.Save(ctx, u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User created successfully")
	return u, nil
}

func (s *service) Update(ctx context.Context, id int64, raw map[string]any) (*User, error) {
	log := config.WithContext(ctx).WithField("user_id", id)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("User not found for update")
		return nil, err
	}

	p, err := Fields.Decode(raw)
	if err != nil {
		log.WithError(err).Warn("Invalid user payload")
		return nil, err
	}

	p.apply(u)
	if err := s.checkUnique(ctx, u); err != nil {
		log.WithError(err).Warn("Duplicate user")
		return nil, err
	}

	if p.Password.Present() {
		if u.Password, err = hashPassword(p.Password.Value); err != nil {
			log.WithError(err).Error("Failed to hash password")
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, u); err != nil {
		log.WithError(err).Error("Failed to update user")
		return nil, err
	}

	log.Info("User updated successfully")
	return u, nil
}

// checkUnique rejects an email, phone number or username held by another user.
func (s *service) checkUnique(ctx context.Context, u *User) error {
	other, err := s.repo.FindByEmail(ctx, u.Email)
	if err != nil {
		return err
	}
	if other != nil && other.ID != u.ID {
		return apperror.Validation("email", "is already registered")
	}

	other, err = s.repo.FindByPhoneNumber(ctx, u.PhoneNumber)
	if err != nil {
		return err
	}
	if other != nil && other.ID != u.ID {
		return apperror.Validation("phoneNumber", "is already registered")
	}

	if u.Username == nil {
		return nil
	}
	same, err := s.repo.FindBy(ctx, "username", *u.Username)
	if err != nil {
		return err
	}
	for _, o := range same {
		if o.ID != u.ID {
			return apperror.Validation("username", "is already taken")
		}
	}
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	log := config.WithContext(ctx).WithField("user_id", id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to delete user")
		return err
	}

	log.Info("User deleted successfully")
	return nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("user_id", id).Warn("Error finding user by ID")
		return nil, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list users")
		return nil, err
	}
	return users, nil
}

func (s *service) ListBy(ctx context.Context, attribute, value string) ([]User, error) {
	users, err := s.repo.FindBy(ctx, attribute, value)
	if err != nil {
		config.WithContext(ctx).WithError(err).WithField("attribute", attribute).Warn("Failed to list users by attribute")
		return nil, err
	}
	return users, nil
}

func (s *service) ListByRole(ctx context.Context, role string) ([]User, error) {
	return s.ListBy(ctx, "role", role)
}

// Login accepts an email or a phone number. Email wins when both are sent.
func (s *service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	log := config.WithContext(ctx)

	if err := validateRequest(req); err != nil {
		log.WithError(err).Warn("Invalid login request")
		return nil, err
	}

	var (
		u   *User
		err error
	)
	switch {
	case strings.TrimSpace(req.Email) != "":
		u, err = s.repo.FindByEmail(ctx, req.Email)
	case strings.TrimSpace(req.PhoneNumber) != "":
		u, err = s.repo.FindByPhoneNumber(ctx, req.PhoneNumber)
	default:
		return nil, apperror.Validation("email", "email or phoneNumber is required")
	}
	if err != nil {
		log.WithError(err).Error("Failed to look up user for login")
		return nil, err
	}
	if u == nil || !checkPassword(u.Password, req.Password) {
		log.Warn("Login failed: invalid credentials")
		return nil, apperror.ErrInvalidCredentials
	}

	token, err := auth.GenerateJWT(strconv.FormatInt(u.ID, 10), u.Role, s.tokenTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign token")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User logged in successfully")
	return &LoginResponse{User: u, Token: token}, nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	log := config.WithContext(ctx)

	if err := validateRequest(req); err != nil {
		log.WithError(err).Warn("Invalid password reset request")
		return err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user for password reset")
		return err
	}
	if u == nil {
		return apperror.NotFoundBy(EntityName, "email", req.Email)
	}

	if u.Password, err = hashPassword(req.NewPassword); err != nil {
		log.WithError(err).Error("Failed to hash password")
		return err
	}
	if err := s.repo.Save(ctx, u); err != nil {
		log.WithError(err).Error("Failed to reset password")
		return err
	}

	log.WithField("user_id", u.ID).Info("Password reset successfully")
	return nil
}

func (s *service) Health(ctx context.Context) (*HealthResponse, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("User health check failed")
		return nil, err
	}
	return &HealthResponse{Status: "UP", Users: n}, nil
}
