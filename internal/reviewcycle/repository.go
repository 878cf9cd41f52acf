package reviewcycle

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*ReviewCycle, error)
	FindAll(ctx context.Context) ([]ReviewCycle, error)
	FindBy(ctx context.Context, attribute, value string) ([]ReviewCycle, error)
	Save(ctx context.Context, c *ReviewCycle) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

func NewRepository(db *gorm.DB) Repository {
	return store.New[ReviewCycle](db, store.Options{
		Entity: EntityName,
		Attributes: map[string]store.Attribute{
			"status":    {Column: "status"},
			"cycleName": {Column: "cycle_name"},
		},
		Cascade: store.CascadeReviewCycle,
	})
}
