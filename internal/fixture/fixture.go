// Package fixture seeds a throwaway database for service and router tests.
package fixture

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/appraisal"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/feedback"
	"github.com/saulo-duarte/appraisal-api/internal/goal"
	"github.com/saulo-duarte/appraisal-api/internal/reviewcycle"
	"github.com/saulo-duarte/appraisal-api/internal/schema"
	"github.com/saulo-duarte/appraisal-api/internal/store/storetest"
	"github.com/saulo-duarte/appraisal-api/internal/user"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type Env struct {
	DB         *gorm.DB
	Users      user.Repository
	Employees  employee.Repository
	Cycles     reviewcycle.Repository
	Appraisals appraisal.Repository
	Goals      goal.Repository
	Feedbacks  feedback.Repository

	seq int
}

func New(t testing.TB) *Env {
	t.Helper()
	db := storetest.Open(t, schema.Models()...)
	return &Env{
		DB:         db,
		Users:      user.NewRepository(db),
		Employees:  employee.NewRepository(db),
		Cycles:     reviewcycle.NewRepository(db),
		Appraisals: appraisal.NewRepository(db),
		Goals:      goal.NewRepository(db),
		Feedbacks:  feedback.NewRepository(db),
	}
}

func (e *Env) User(t testing.TB) *user.User {
	t.Helper()
	e.seq++
	u := &user.User{
		Email:       fmt.Sprintf("user%d@example.com", e.seq),
		FullName:    fmt.Sprintf("User %d", e.seq),
		PhoneNumber: fmt.Sprintf("+5511900000%03d", e.seq),
		Password:    "not-a-hash",
		Role:        user.RoleEmployee,
	}
	require.NoError(t, e.Users.Save(context.Background(), u))
	return u
}

func (e *Env) Employee(t testing.TB, u *user.User) *employee.EmployeeProfile {
	t.Helper()
	p := &employee.EmployeeProfile{UserID: u.ID, Department: "Engineering"}
	require.NoError(t, e.Employees.Save(context.Background(), p))
	return p
}

func (e *Env) Cycle(t testing.TB, name string) *reviewcycle.ReviewCycle {
	t.Helper()
	c := &reviewcycle.ReviewCycle{
		CycleName: name,
		Status:    reviewcycle.StatusScheduled,
		Deadline:  util.NewLocalDate(2025, 12, 31),
	}
	require.NoError(t, e.Cycles.Save(context.Background(), c))
	return c
}

func (e *Env) Appraisal(t testing.TB, p *employee.EmployeeProfile, c *reviewcycle.ReviewCycle) *appraisal.Appraisal {
	t.Helper()
	a := &appraisal.Appraisal{EmployeeID: p.ID, Status: appraisal.StatusSubmitted}
	if c != nil {
		a.ReviewCycleID = &c.ID
		a.CycleName = c.CycleName
	}
	require.NoError(t, e.Appraisals.Save(context.Background(), a))
	return a
}

func (e *Env) Goal(t testing.TB, p *employee.EmployeeProfile, a *appraisal.Appraisal) *goal.Goal {
	t.Helper()
	g := &goal.Goal{
		EmployeeID: p.ID,
		Title:      "Ship it",
		Status:     goal.StatusPending,
		CreatedBy:  goal.CreatedByManager,
	}
	if a != nil {
		g.AppraisalID = &a.ID
	}
	require.NoError(t, e.Goals.Save(context.Background(), g))
	return g
}

func (e *Env) Feedback(t testing.TB, p *employee.EmployeeProfile, reviewer *user.User) *feedback.Feedback {
	t.Helper()
	f := &feedback.Feedback{
		EmployeeID:   p.ID,
		ReviewerID:   reviewer.ID,
		FeedbackType: feedback.TypeSelf,
	}
	require.NoError(t, e.Feedbacks.Save(context.Background(), f))
	return f
}
