package container

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/auth"
	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/feedback"
	"github.com/saulo-duarte/appraisal-api/internal/goal"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
	"github.com/saulo-duarte/appraisal-api/internal/router"
	"github.com/saulo-duarte/appraisal-api/internal/schema"
	"github.com/saulo-duarte/appraisal-api/internal/user"
)

type Container struct {
	DB                   *gorm.DB
	Config               *config.Config
	UserContainer        *user.UserContainer
	EmployeeContainer    *employee.EmployeeContainer
	ReviewCycleContainer *reviewcycle.ReviewCycleContainer
	AppraisalContainer   *appraisal.AppraisalContainer
	GoalContainer        *goal.GoalContainer
	FeedbackContainer    *feedback.FeedbackContainer
}

// New loads configuration, connects to the database and wires every feature.
func New(ctx context.Context) (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	config.Init(cfg.LogLevel, cfg.LogFormat)

	if err := config.Connect(ctx, cfg.DatabaseDSN, cfg.DB); err != nil {
		return nil, err
	}
	if cfg.AutoMigrate {
		if err := config.Migrate(config.DB, schema.Models()...); err != nil {
			return nil, err
		}
	}
	return Build(config.DB, cfg), nil
}

// Build wires the feature containers on top of an open database.
func Build(db *gorm.DB, cfg *config.Config) *Container {
	auth.Init(cfg.JWTSecret)

	userContainer := user.NewUserContainer(db, cfg.JWTTTL)
	employeeContainer := employee.NewEmployeeContainer(db, userContainer.Repo)
	reviewCycleContainer := reviewcycle.NewReviewCycleContainer(db)
	appraisalContainer := appraisal.NewAppraisalContainer(db, employeeContainer.Repo, reviewCycleContainer.Repo)
	goalContainer := goal.NewGoalContainer(db, employeeContainer.Repo, appraisalContainer.Repo)
	feedbackContainer := feedback.NewFeedbackContainer(db, employeeContainer.Repo, userContainer.Repo, cfg.DefaultReviewerID)

	return &Container{
		DB:                   db,
		Config:               cfg,
		UserContainer:        userContainer,
		EmployeeContainer:    employeeContainer,
		ReviewCycleContainer: reviewCycleContainer,
		AppraisalContainer:   appraisalContainer,
		GoalContainer:        goalContainer,
		FeedbackContainer:    feedbackContainer,
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		EmployeeHandler:    c.EmployeeContainer.Handler,
		ReviewCycleHandler: c.ReviewCycleContainer.Handler,
		AppraisalHandler:   c.AppraisalContainer.Handler,
		GoalHandler:        c.GoalContainer.Handler,
		FeedbackHandler:    c.FeedbackContainer.Handler,
		AllowedOrigins:     c.Config.CORSAllowedOrigins,
		MetricsEnabled:     c.Config.MetricsEnabled,
		Ready: func(ctx context.Context) error {
			return config.Ping(ctx, c.DB)
		},
	})
}
