package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/saulo-duarte/appraisal-api/internal/store"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindAll(ctx context.Context) ([]User, error)
	FindBy(ctx context.Context, attribute, value string) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhoneNumber(ctx context.Context, phone string) (*User, error)
	Save(ctx context.Context, u *User) error
	DeleteByID(ctx context.Context, id int64) error
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	*store.Repository[User]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		Repository: store.New[User](db, store.Options{
			Entity: EntityName,
			Attributes: map[string]store.Attribute{
				"email":       {Column: "email"},
				"phoneNumber": {Column: "phone_number"},
				"username":    {Column: "username"},
				"role":        {Column: "role"},
				"fullName":    {Column: "full_name"},
			},
			Cascade: store.CascadeUser,
		}),
	}
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.first(ctx, "email", email)
}

func (r *repository) FindByPhoneNumber(ctx context.Context, phone string) (*User, error) {
	return r.first(ctx, "phoneNumber", phone)
}

// first returns nil without error when nothing matches.
func (r *repository) first(ctx context.Context, attribute, value string) (*User, error) {
	users, err := r.FindBy(ctx, attribute, value)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}
