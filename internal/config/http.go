package config

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
)

type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Field   string `json:"field,omitempty"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// StatusFor maps an error returned by a service onto an HTTP status.
func StatusFor(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindMalformedField, apperror.KindMissingReference,
		apperror.KindReferenceNotFound, apperror.KindValidationFailed:
		return http.StatusBadRequest
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindStorageUnavailable:
		return http.StatusServiceUnavailable
	case apperror.KindUnauthorized:
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

// Error writes err as a JSON error envelope. Internal errors never leak their text.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	resp := ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: err.Error(),
	}

	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		resp.Code = string(appErr.Kind)
		resp.Field = appErr.Field
	}

	log := WithContext(r.Context()).WithError(err).WithField("status", status)
	switch {
	case status >= http.StatusInternalServerError:
		log.Error("Request failed")
		resp.Message = http.StatusText(status)
	default:
		log.Warn("Request rejected")
	}

	JSON(w, status, resp)
}
