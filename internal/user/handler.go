package user

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/auth"
	"github.com/saulo-duarte/appraisal-api/internal/config"
	"github.com/saulo-duarte/appraisal-api/internal/crud"
)

type Handler struct {
	*crud.Handler[User]
	service  Service
	tokenTTL time.Duration
}

func NewHandler(service Service, tokenTTL time.Duration) *Handler {
	return &Handler{
		Handler:  crud.NewHandler[User](service, Fields.Override),
		service:  service,
		tokenTTL: tokenTTL,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, r, apperror.MalformedField("body", "invalid JSON"))
		return
	}

	resp, err := h.service.Login(r.Context(), req)
	if err != nil {
		config.Error(w, r, err)
		return
	}

	auth.SetTokenCookie(w, resp.Token, int(h.tokenTTL.Seconds()))
	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.Error(w, r, apperror.MalformedField("body", "invalid JSON"))
		return
	}

	if err := h.service.ResetPassword(r.Context(), req); err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

func (h *Handler) ListByRole(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListByRole(r.Context(), chi.URLParam(r, "role"))
	if err != nil {
		config.Error(w, r, err)
		return
	}
	if users == nil {
		users = []User{}
	}
	config.JSON(w, http.StatusOK, users)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.Health(r.Context())
	if err != nil {
		config.Error(w, r, err)
		return
	}
	config.JSON(w, http.StatusOK, resp)
}
