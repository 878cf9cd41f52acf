package payload

import (
	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

// Field is one row of an entity's field table: a logical name, the payload
// keys accepted for it in priority order, a parser and optional checks.
type Field[P any] interface {
	Name() string
	Keys() []string
	DefaultValue() (any, bool)
	decode(raw map[string]any, p *P) error
	applyDefault(p *P)
}

type Check[T any] func(T) error

type Spec[P, T any] struct {
	name    string
	keys    []string
	parse   func(key string, v any) (T, presence, error)
	target  func(*P) *Opt[T]
	def     *T
	notNull bool
	checks  []Check[T]
}

func String[P any](name string, target func(*P) *Opt[string]) Spec[P, string] {
	return Spec[P, string]{name: name, parse: parseString, target: target}
}

func Int[P any](name string, target func(*P) *Opt[int]) Spec[P, int] {
	return Spec[P, int]{name: name, parse: parseInt, target: target}
}

// Date parses YYYY-MM-DD. An empty string counts as not provided.
func Date[P any](name string, target func(*P) *Opt[util.LocalDate]) Spec[P, util.LocalDate] {
	return Spec[P, util.LocalDate]{name: name, parse: parseDate, target: target}
}

// Strings accepts a JSON array of strings or a comma separated string.
func Strings[P any](name string, target func(*P) *Opt[[]string]) Spec[P, []string] {
	return Spec[P, []string]{name: name, parse: parseStrings, target: target}
}

// Ref reads a foreign key. idKeys name the id property when the reference
// arrives as a nested object; "id" is always tried last.
func Ref[P any](name string, target func(*P) *Opt[int64], idKeys ...string) Spec[P, int64] {
	keys := append(append([]string{}, idKeys...), "id")
	return Spec[P, int64]{name: name, parse: parseRef(keys), target: target}
}

// Aliases replaces the accepted payload keys. The first key present wins.
func (s Spec[P, T]) Aliases(keys ...string) Spec[P, T] {
	s.keys = keys
	return s
}

// Default is applied on create when the field is missing or null.
func (s Spec[P, T]) Default(v T) Spec[P, T] {
	s.def = &v
	return s
}

// NotNull rejects an explicit null.
func (s Spec[P, T]) NotNull() Spec[P, T] {
	s.notNull = true
	return s
}

func (s Spec[P, T]) Check(checks ...Check[T]) Spec[P, T] {
	s.checks = append(append([]Check[T]{}, s.checks...), checks...)
	return s
}

func (s Spec[P, T]) Name() string {
	return s.name
}

func (s Spec[P, T]) Keys() []string {
	if len(s.keys) == 0 {
		return []string{s.name}
	}
	return s.keys
}

func (s Spec[P, T]) DefaultValue() (any, bool) {
	if s.def == nil {
		return nil, false
	}
	return *s.def, true
}

func (s Spec[P, T]) decode(raw map[string]any, p *P) error {
	for _, key := range s.Keys() {
		v, ok := raw[key]
		if !ok {
			continue
		}

		opt := s.target(p)
		if v == nil {
			if s.notNull {
				return apperror.Validation(s.name, "must not be null")
			}
			*opt = Null[T]()
			return nil
		}

		value, pres, err := s.parse(key, v)
		if err != nil {
			return err
		}
		switch pres {
		case absent:
			return nil
		case null:
			*opt = Null[T]()
			return nil
		}

		for _, check := range s.checks {
			if err := check(value); err != nil {
				return apperror.Validation(s.name, err.Error())
			}
		}
		*opt = Some(value)
		return nil
	}
	return nil
}

func (s Spec[P, T]) applyDefault(p *P) {
	if s.def == nil {
		return
	}
	opt := s.target(p)
	if !opt.Present() {
		*opt = Some(*s.def)
	}
}
