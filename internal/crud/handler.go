// Package crud holds the HTTP handlers every entity kind shares: create,
// update, get, list with an optional attribute filter, and delete.
package crud

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/payload"
)

type Service[T any] interface {
	Create(ctx context.Context, raw map[string]any) (*T, error)
	Update(ctx context.Context, id int64, raw map[string]any) (*T, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*T, error)
	List(ctx context.Context) ([]T, error)
	ListBy(ctx context.Context, attribute, value string) ([]T, error)
}

// Override names a payload field filled from a URL parameter.
type Override struct {
	Field string
	Param string
}

type Handler[T any] struct {
	service Service[T]
	// override rewrites a raw payload so a path parameter wins over the body.
	override func(raw map[string]any, field string, value any) map[string]any
}

func NewHandler[T any](service Service[T], override func(map[string]any, string, any) map[string]any) *Handler[T] {
	return &Handler[T]{service: service, override: override}
}

// Mount registers the standard routes on r.
func (h *Handler[T]) Mount(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
	r.Put("/{id}", h.Update)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler[T]) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := payload.FromJSON(r.Body)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	created, err := h.service.Create(r.Context(), raw)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusCreated, created)
}

// CreateWith creates from the body with the given fields taken from the URL.
func (h *Handler[T]) CreateWith(overrides ...Override) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, err := payload.FromJSON(r.Body)
		if err != nil {
			config.Error(w, r, err)
			return
		}
		for _, o := range overrides {
			id, err := IDParam(r, o.Param)
			if err != nil {
				config.Error(w, r, err)
				return
			}
			raw = h.override(raw, o.Field, id)
		}

		created, err := h.service.Create(r.Context(), raw)
		if err != nil {
			config.Error(w, r, err)
			return
		}
		config.JSON(w, http.StatusCreated, created)
	}
}

func (h *Handler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := IDParam(r, "id")
	if err != nil {
		config.Error(w, r, err)
		return
	}
	raw, err := payload.FromJSON(r.Body)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	updated, err := h.service.Update(r.Context(), id, raw)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, updated)
}

func (h *Handler[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := IDParam(r, "id")
	if err != nil {
		config.Error(w, r, err)
		return
	}

	e, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, e)
}

// List returns every row, or the rows matching a single ?attribute=value filter.
func (h *Handler[T]) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		items []T
		err   error
	)
	switch len(query) {
	case 0:
		items, err = h.service.List(r.Context())
	case 1:
		for attr := range query {
			items, err = h.service.ListBy(r.Context(), attr, query.Get(attr))
		}
	default:
		err = apperror.Validation("query", "only one filter attribute is supported")
	}
	if err != nil {
		config.Error(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	config.JSON(w, http.StatusOK, items)
}

// ListByParam lists rows whose attribute equals the named URL parameter.
func (h *Handler[T]) ListByParam(attribute, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.service.ListBy(r.Context(), attribute, chi.URLParam(r, param))
		if err != nil {
			config.Error(w, r, err)
			return
		}
		if items == nil {
			items = []T{}
		}
		config.JSON(w, http.StatusOK, items)
	}
}

func (h *Handler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := IDParam(r, "id")
	if err != nil {
		config.Error(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		config.Error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func IDParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.MalformedField(name, "expected a positive integer id")
	}
	return id, nil
}
