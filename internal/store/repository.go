// Package store is the persistent repository shared by every entity kind:
// point lookups, attribute lookups, save and cascading delete over gorm.
package store

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
)

const (
	TableUsers            = "users"
	TableEmployeeProfiles = "employee_profiles"
	TableReviewCycles     = "review_cycles"
	TableAppraisals       = "appraisals"
	TableGoals            = "goals"
	TableFeedbacks        = "feedbacks"
)

// Attribute maps a lookup name exposed to callers onto a column.
type Attribute struct {
	Column string
	Int    bool
}

type Options struct {
	// Entity is the kind name used in NotFound errors.
	Entity     string
	Attributes map[string]Attribute
	Preload    []string
	// Cascade runs inside the delete transaction before the row itself is removed.
	Cascade func(tx *gorm.DB, id int64) error
}

type Repository[T any] struct {
	db   *gorm.DB
	opts Options
}

func New[T any](db *gorm.DB, opts Options) *Repository[T] {
	return &Repository[T]{db: db, opts: opts}
}

func (r *Repository[T]) Entity() string {
	return r.opts.Entity
}

func (r *Repository[T]) query(ctx context.Context) *gorm.DB {
	q := r.db.WithContext(ctx)
	for _, p := range r.opts.Preload {
		q = q.Preload(p)
	}
	return q
}

func (r *Repository[T]) FindByID(ctx context.Context, id int64) (*T, error) {
	var e T
	if err := r.query(ctx).First(&e, id).Error; err != nil {
		return nil, r.translate(err, id)
	}
	return &e, nil
}

func (r *Repository[T]) FindAll(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.query(ctx).Order("id").Find(&out).Error; err != nil {
		return nil, r.translate(err, 0)
	}
	return out, nil
}

// FindBy returns rows whose attribute equals value. Only attributes declared
// in Options.Attributes can be queried.
func (r *Repository[T]) FindBy(ctx context.Context, attribute, value string) ([]T, error) {
	attr, ok := r.opts.Attributes[attribute]
	if !ok {
		return nil, apperror.Validation(attribute, "is not a supported lookup attribute")
	}

	var arg any = value
	if attr.Int {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, apperror.MalformedField(attribute, "expected an integer")
		}
		arg = n
	}

	var out []T
	if err := r.query(ctx).Where(clause.Eq{Column: clause.Column{Name: attr.Column}, Value: arg}).
		Order("id").Find(&out).Error; err != nil {
		return nil, r.translate(err, 0)
	}
	return out, nil
}

// Attributes lists the lookup names FindBy accepts.
func (r *Repository[T]) Attributes() []string {
	out := make([]string, 0, len(r.opts.Attributes))
	for name := range r.opts.Attributes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Save inserts e when its id is zero and updates every column otherwise.
// Associations are never written through the parent.
func (r *Repository[T]) Save(ctx context.Context, e *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(e).Error; err != nil {
		return r.translate(err, 0)
	}
	return nil
}

func (r *Repository[T]) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, r.translate(err, id)
	}
	return count > 0, nil
}

func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, r.translate(err, 0)
	}
	return count, nil
}

// DeleteByID removes the row and its dependents in one transaction.
func (r *Repository[T]) DeleteByID(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
		if r.opts.Cascade != nil {
			if err := r.opts.Cascade(tx, id); err != nil {
				return err
			}
		}
		return tx.Delete(new(T), id).Error
	})
	if err != nil {
		return r.translate(err, id)
	}
	return nil
}

func (r *Repository[T]) translate(err error, id int64) error {
	var appErr *apperror.Error
	switch {
	case errors.As(err, &appErr):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperror.NotFound(r.opts.Entity, id)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperror.Validation(r.opts.Entity, "violates a unique constraint")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return apperror.Validation(r.opts.Entity, "references a row that does not exist")
	}
	return apperror.StorageUnavailable(err)
}
