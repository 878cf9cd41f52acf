// Package reference loads the entities a payload points at.
package reference

import (
	"context"
	"errors"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/payload"
)

type Finder[T any] interface {
	FindByID(ctx context.Context, id int64) (*T, error)
}

// Resolve loads id from f. A missing row becomes ReferenceNotFound; storage
// failures pass through untouched.
func Resolve[T any](ctx context.Context, f Finder[T], entity string, id int64) (*T, error) {
	e, err := f.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return nil, apperror.ReferenceNotFound(entity, id)
		}
		return nil, err
	}
	return e, nil
}

// Required resolves a reference that must be present. owner and field name
// the record and payload field for MissingRequiredReference.
func Required[T any](ctx context.Context, f Finder[T], entity, owner, field string, ref payload.Opt[int64]) (*T, error) {
	if !ref.Present() {
		return nil, apperror.MissingReference(owner, field)
	}
	return Resolve(ctx, f, entity, ref.Value)
}

// Optional resolves a reference that may be absent or null, in which case it
// returns nil without error.
func Optional[T any](ctx context.Context, f Finder[T], entity string, ref payload.Opt[int64]) (*T, error) {
	if !ref.Present() {
		return nil, nil
	}
	return Resolve(ctx, f, entity, ref.Value)
}
