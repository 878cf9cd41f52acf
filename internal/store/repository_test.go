package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/store"
	"github.com/saulo-duarte/appraisal-api/internal/store/storetest"
)

type team struct {
	ID   int64 `gorm:"primaryKey"`
	Name string
}

type member struct {
	ID     int64 `gorm:"primaryKey"`
	Name   string
	TeamID int64
	Team   *team `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
}

func setup(t *testing.T) (*store.Repository[team], *store.Repository[member]) {
	db := storetest.Open(t, &team{}, &member{})

	teams := store.New[team](db, store.Options{
		Entity: "Team",
		Attributes: map[string]store.Attribute{
			"name": {Column: "name"},
		},
		Cascade: func(tx *gorm.DB, id int64) error {
			return tx.Where("team_id = ?", id).Delete(&member{}).Error
		},
	})
	members := store.New[member](db, store.Options{
		Entity:  "Member",
		Preload: []string{"Team"},
		Attributes: map[string]store.Attribute{
			"team": {Column: "team_id", Int: true},
		},
	})
	return teams, members
}

func TestRepositorySaveAndFind(t *testing.T) {
	ctx := context.Background()
	teams, members := setup(t)

	tm := &team{Name: "core"}
	require.NoError(t, teams.Save(ctx, tm))
	require.NotZero(t, tm.ID)

	m := &member{Name: "ana", TeamID: tm.ID}
	require.NoError(t, members.Save(ctx, m))

	got, err := members.FindByID(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Team)
	assert.Equal(t, "core", got.Team.Name)

	m.Name = "ana maria"
	require.NoError(t, members.Save(ctx, m))
	got, err = members.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana maria", got.Name)

	all, err := members.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	exists, err := teams.ExistsByID(ctx, tm.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = teams.ExistsByID(ctx, tm.ID+100)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRepositoryFindByIDNotFound(t *testing.T) {
	teams, _ := setup(t)

	_, err := teams.FindByID(context.Background(), 42)
	require.ErrorIs(t, err, apperror.ErrNotFound)
	assert.EqualError(t, err, "Team 42 not found")
}

func TestRepositoryFindBy(t *testing.T) {
	ctx := context.Background()
	teams, members := setup(t)

	a := &team{Name: "a"}
	b := &team{Name: "b"}
	require.NoError(t, teams.Save(ctx, a))
	require.NoError(t, teams.Save(ctx, b))
	require.NoError(t, members.Save(ctx, &member{Name: "x", TeamID: a.ID}))
	require.NoError(t, members.Save(ctx, &member{Name: "y", TeamID: a.ID}))
	require.NoError(t, members.Save(ctx, &member{Name: "z", TeamID: b.ID}))

	got, err := members.FindBy(ctx, "team", "1")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	byName, err := teams.FindBy(ctx, "name", "b")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, b.ID, byName[0].ID)

	_, err = members.FindBy(ctx, "team", "one")
	assert.ErrorIs(t, err, apperror.ErrMalformedField)

	_, err = members.FindBy(ctx, "password", "x")
	assert.ErrorIs(t, err, apperror.ErrValidationFailed)

	assert.Equal(t, []string{"team"}, members.Attributes())
}

func TestRepositoryDeleteCascades(t *testing.T) {
	ctx := context.Background()
	teams, members := setup(t)

	tm := &team{Name: "core"}
	require.NoError(t, teams.Save(ctx, tm))
	m1 := &member{Name: "x", TeamID: tm.ID}
	m2 := &member{Name: "y", TeamID: tm.ID}
	require.NoError(t, members.Save(ctx, m1))
	require.NoError(t, members.Save(ctx, m2))

	require.NoError(t, teams.DeleteByID(ctx, tm.ID))

	for _, id := range []int64{m1.ID, m2.ID} {
		_, err := members.FindByID(ctx, id)
		assert.ErrorIs(t, err, apperror.ErrNotFound)
	}

	err := teams.DeleteByID(ctx, tm.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestRepositoryStorageErrors(t *testing.T) {
	db := storetest.Open(t)
	repo := store.New[team](db, store.Options{Entity: "Team"})

	_, err := repo.FindAll(context.Background())
	require.ErrorIs(t, err, apperror.ErrStorageUnavailable)
	assert.Equal(t, apperror.KindStorageUnavailable, apperror.KindOf(err))
}
