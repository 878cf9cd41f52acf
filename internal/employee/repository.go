package employee

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*EmployeeProfile, error)
	FindAll(ctx context.Context) ([]EmployeeProfile, error)
	FindBy(ctx context.Context, attribute, value string) ([]EmployeeProfile, error)
	Save(ctx context.Context, e *EmployeeProfile) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func NewRepository(db *gorm.DB) Repository {
	return store.New[EmployeeProfile](db, store.Options{
		Entity:  EntityName,
		Preload: []string{"User"},
		Attributes: map[string]store.Attribute{
			"user":             {Column: "user_id", Int: true},
			"department":       {Column: "department"},
			"designation":      {Column: "designation"},
			"reportingManager": {Column: "reporting_manager"},
			"currentProject":   {Column: "current_project"},
			"currentTeam":      {Column: "current_team"},
		},
		Cascade: store.CascadeEmployeeProfile,
	})
}
