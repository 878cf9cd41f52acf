package auth_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saulo-duarte/appraisal-api/internal/auth"
)

const testSecret = "a-long-and-safe-secret-for-tests"
const testUserID = "42"
const testRole = "Admin"

func TestInit(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("Init() should panic when the secret is empty")
			}
		}()

		auth.Init("")
	})

	t.Run("ValidSecret", func(t *testing.T) {
		auth.Init(testSecret)
	})
}

func TestGenerateAndValidateJWT(t *testing.T) {
	auth.Init(testSecret)

	t.Run("ValidToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, 5*time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		claims, err := auth.ValidateJWT(tokenStr)
		if err != nil {
			t.Fatalf("ValidateJWT failed unexpectedly: %v", err)
		}
		if claims.UserID != testUserID {
			t.Errorf("wrong UserID. want %s, got %s", testUserID, claims.UserID)
		}
		if claims.Role != testRole {
			t.Errorf("wrong Role. want %s, got %s", testRole, claims.Role)
		}
		if claims.ID == "" {
			t.Error("token id should be set")
		}
	})

	t.Run("UniqueTokenIDs", func(t *testing.T) {
		a, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)
		b, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)
		ca, _ := auth.ValidateJWT(a)
		cb, _ := auth.ValidateJWT(b)
		if ca.ID == cb.ID {
			t.Errorf("two tokens share the id %s", ca.ID)
		}
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, -time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrTokenExpired) {
			t.Errorf("want %v for an expired token, got %v", jwt.ErrTokenExpired, err)
		}
	})

	t.Run("InvalidSignature", func(t *testing.T) {
		tokenStr, err := auth.GenerateJWT(testUserID, testRole, time.Minute)
		if err != nil {
			t.Fatalf("GenerateJWT failed: %v", err)
		}

		auth.Init("another-secret-entirely")
		defer auth.Init(testSecret)

		_, err = auth.ValidateJWT(tokenStr)
		if !errors.Is(err, jwt.ErrSignatureInvalid) {
			t.Errorf("want %v for a bad signature, got %v", jwt.ErrSignatureInvalid, err)
		}
	})
}

func TestOptionalAuth(t *testing.T) {
	auth.Init(testSecret)

	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = ""
		if claims, err := auth.GetUserClaimsFromContext(r.Context()); err == nil {
			gotUser = claims.UserID
		}
		w.WriteHeader(http.StatusNoContent)
	})
	h := auth.OptionalAuth(next)

	token, _ := auth.GenerateJWT(testUserID, testRole, time.Minute)

	t.Run("BearerHeader", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		h.ServeHTTP(httptest.NewRecorder(), req)
		if gotUser != testUserID {
			t.Errorf("want user %s in context, got %q", testUserID, gotUser)
		}
	})

	t.Run("Cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "jwt", Value: token})
		h.ServeHTTP(httptest.NewRecorder(), req)
		if gotUser != testUserID {
			t.Errorf("want user %s in context, got %q", testUserID, gotUser)
		}
	})

	t.Run("InvalidTokenStillPasses", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent || gotUser != "" {
			t.Errorf("invalid token should pass anonymously, got %d %q", rec.Code, gotUser)
		}
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	auth.NewHandler().Logout(rec, httptest.NewRequest(http.MethodPost, "/logout", nil))

	cookie := rec.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, "jwt=;") || !strings.Contains(cookie, "Max-Age=0") {
		t.Errorf("logout should expire the jwt cookie, got %q", cookie)
	}
}
