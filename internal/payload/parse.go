package payload

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	util "github.com/saulo-duarte/appraisal-api/internal/utils"
)

type presence int

const (
	provided presence = iota
	absent
	null
)

func parseString(key string, v any) (string, presence, error) {
	s, ok := v.(string)
	if !ok {
		return "", absent, apperror.MalformedField(key, "expected a string")
	}
	return s, provided, nil
}

func parseInt(key string, v any) (int, presence, error) {
	n, err := toInt64(v)
	if err != nil {
		return 0, absent, apperror.MalformedField(key, "expected an integer")
	}
	if n > math.MaxInt32 || n < math.MinInt32 {
		return 0, absent, apperror.MalformedField(key, "integer out of range")
	}
	return int(n), provided, nil
}

func parseDate(key string, v any) (util.LocalDate, presence, error) {
	s, ok := v.(string)
	if !ok {
		return util.LocalDate{}, absent, apperror.MalformedField(key, "expected a YYYY-MM-DD string")
	}
	if s == "" {
		return util.LocalDate{}, absent, nil
	}
	d, err := util.ParseLocalDate(s)
	if err != nil {
		return util.LocalDate{}, absent, apperror.MalformedField(key, "expected a YYYY-MM-DD date")
	}
	return d, provided, nil
}

func parseStrings(key string, v any) ([]string, presence, error) {
	switch list := v.(type) {
	case []string:
		return append([]string{}, list...), provided, nil
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, absent, apperror.MalformedField(key, "expected a list of strings")
			}
			out = append(out, s)
		}
		return out, provided, nil
	case string:
		out := []string{}
		for _, part := range strings.Split(list, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, provided, nil
	}
	return nil, absent, apperror.MalformedField(key, "expected a list of strings")
}

// parseRef accepts a bare id or an object carrying the id under one of idKeys.
// An object without an id counts as an explicit null.
func parseRef(idKeys []string) func(key string, v any) (int64, presence, error) {
	return func(key string, v any) (int64, presence, error) {
		obj, isObject := v.(map[string]any)
		if !isObject {
			id, err := parseID(key, v)
			return id, provided, err
		}
		for _, k := range idKeys {
			raw, ok := obj[k]
			if !ok {
				continue
			}
			if raw == nil {
				return 0, null, nil
			}
			id, err := parseID(key+"."+k, raw)
			return id, provided, err
		}
		return 0, null, nil
	}
}

func parseID(key string, v any) (int64, error) {
	id, err := toInt64(v)
	if err != nil {
		return 0, apperror.MalformedField(key, "expected an integer id")
	}
	if id <= 0 {
		return 0, apperror.MalformedField(key, "id must be a positive integer")
	}
	return id, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case float64:
		return floatToInt(n)
	case float32:
		return floatToInt(float64(n))
	case json.Number:
		return strconv.ParseInt(n.String(), 10, 64)
	case string:
		return strconv.ParseInt(n, 10, 64)
	}
	return 0, strconv.ErrSyntax
}

func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, strconv.ErrSyntax
	}
	return int64(f), nil
}
