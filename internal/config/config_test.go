package config_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/appraisal-api/internal/apperror"
	"github.com/saulo-duarte/appraisal-api/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("DATABASE_DSN", "postgres://localhost/appraisal")
		t.Setenv("JWT_SECRET", "secret")

		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
		assert.Equal(t, int64(1), cfg.DefaultReviewerID)
		assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
		assert.True(t, cfg.AutoMigrate)
		assert.Equal(t, 10, cfg.DB.MaxOpenConns)
		assert.Equal(t, 30*time.Minute, cfg.DB.ConnMaxLifetime)
		assert.Equal(t, ":8080", cfg.Addr())
		assert.NoError(t, cfg.Validate())
	})

	t.Run("DotEnvFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("DEFAULT_REVIEWER_ID=0\nCORS_ALLOWED_ORIGINS=http://a.test,http://b.test\n"), 0o600))
		t.Setenv("DEFAULT_REVIEWER_ID", "")
		os.Unsetenv("DEFAULT_REVIEWER_ID")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		os.Unsetenv("CORS_ALLOWED_ORIGINS")

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, int64(0), cfg.DefaultReviewerID)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	})

	t.Run("BadDuration", func(t *testing.T) {
		t.Setenv("JWT_TTL", "soon")
		_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cfg := &config.Config{DefaultReviewerID: -1}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_DSN")
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "DEFAULT_REVIEWER_ID")
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"Malformed", apperror.MalformedField("progress", "expected an integer"), http.StatusBadRequest, "MALFORMED_FIELD"},
		{"MissingReference", apperror.MissingReference("Goal", "employee"), http.StatusBadRequest, "MISSING_REQUIRED_REFERENCE"},
		{"ReferenceNotFound", apperror.ReferenceNotFound("EmployeeProfile", 4), http.StatusBadRequest, "REFERENCE_NOT_FOUND"},
		{"Validation", apperror.Validation("status", "must not be blank"), http.StatusBadRequest, "VALIDATION_FAILED"},
		{"NotFound", apperror.NotFound("Goal", 1), http.StatusNotFound, "NOT_FOUND"},
		{"Storage", apperror.StorageUnavailable(errors.New("dial tcp")), http.StatusServiceUnavailable, "STORAGE_UNAVAILABLE"},
		{"Credentials", apperror.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)

			config.Error(rec, req, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			var body config.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.status, body.Status)
			assert.Equal(t, tc.code, body.Code)
		})
	}
}

func TestErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	config.Error(rec, httptest.NewRequest(http.MethodGet, "/", nil), apperror.StorageUnavailable(errors.New("password=hunter2")))

	assert.NotContains(t, rec.Body.String(), "hunter2")
}
