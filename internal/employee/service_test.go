package employee_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/employee"
	"github.com/saulo-duarte/appraisal-api/internal/fixture"
)

func newService(t *testing.T) (employee.Service, *fixture.Env) {
	env := fixture.New(t)
	return employee.NewService(env.Employees, env.Users), env
}

func TestCreateEmployeeProfile(t *testing.T) {
	svc, env := newService(t)
	u := env.User(t)

	p, err := svc.Create(context.Background(), map[string]any{
		"user":                map[string]any{"userId": u.ID},
		"department":          "Platform",
		"date_of_joining":     "2021-04-01",
		"skills":              "go, sql ,k8s",
		"current_goals":       []any{"Mentor"},
		"reportingManager":    "Ana",
		"lastAppraisalRating": 4,
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID, p.UserID)
	assert.Equal(t, "Platform", p.Department)
	assert.Equal(t, []string{"go", "sql", "k8s"}, []string(p.Skills))
	assert.Equal(t, []string{"Mentor"}, []string(p.CurrentGoals))
	require.NotNil(t, p.LastAppraisalRating)
	assert.Equal(t, 4, *p.LastAppraisalRating)

	got, err := svc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	assert.Equal(t, u.Email, got.User.Email)
	assert.Equal(t, []string{"go", "sql", "k8s"}, []string(got.Skills))
}

func TestCreateEmployeeProfileNeedsUser(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, map[string]any{"department": "Sales"})
	assert.ErrorIs(t, err, apperror.ErrMissingReference)

	_, err = svc.Create(ctx, map[string]any{"userId": 12})
	assert.ErrorIs(t, err, apperror.ErrReferenceNotFound)
	assert.EqualError(t, err, "referenced User 12 not found")

	profiles, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, profiles)
}

func TestUpdateEmployeeProfile(t *testing.T) {
	svc, env := newService(t)
	p := env.Employee(t, env.User(t))
	ctx := context.Background()

	updated, err := svc.Update(ctx, p.ID, map[string]any{"designation": "Staff Engineer", "lastAppraisalRating": nil})
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", updated.Designation)
	assert.Equal(t, "Engineering", updated.Department)
	assert.Nil(t, updated.LastAppraisalRating)

	_, err = svc.Update(ctx, p.ID, map[string]any{"lastAppraisalRating": 9})
	assert.ErrorIs(t, err, apperror.ErrValidationFailed)
}

func TestDeleteEmployeeProfileCascades(t *testing.T) {
	svc, env := newService(t)
	reviewer := env.User(t)
	p := env.Employee(t, env.User(t))
	a := env.Appraisal(t, p, nil)
	g1 := env.Goal(t, p, a)
	g2 := env.Goal(t, p, nil)
	f := env.Feedback(t, p, reviewer)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, p.ID))

	for _, id := range []int64{g1.ID, g2.ID} {
		_, err := env.Goals.FindByID(ctx, id)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	}
	_, err := env.Appraisals.FindByID(ctx, a.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = env.Feedbacks.FindByID(ctx, f.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	_, err = env.Users.FindByID(ctx, reviewer.ID)
	assert.NoError(t, err, "deleting a profile keeps users")
}

func TestListEmployeeProfilesByUser(t *testing.T) {
	svc, env := newService(t)
	u := env.User(t)
	env.Employee(t, u)
	env.Employee(t, env.User(t))

	found, err := svc.ListBy(context.Background(), "user", strconv.FormatInt(u.ID, 10))
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, u.ID, found[0].UserID)
}
