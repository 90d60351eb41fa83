// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/gamey-gateway/internal/service"
	"github.com/MKhiriev/gamey-gateway/internal/store"
	"github.com/MKhiriev/gamey-gateway/models"
)

func authHandler(t *testing.T, auth *mockAuthService, unify bool) *Handler {
	t.Helper()

	cfg := testConfig()
	cfg.App.UnifyLoginErrors = unify
	return newTestHandler(t, &service.Services{AuthService: auth}, cfg)
}

// ─────────────────────────────────────────────
// POST /createuser
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, password string) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.Equal(t, 30, u.Age)
			assert.Equal(t, "ES", u.Country)
			assert.Equal(t, "secret", password)
			return u, nil
		},
	}

	rr := do(t, authHandler(t, auth, false), http.MethodPost, "/createuser",
		`{"username":"alice","password":"secret","age":30,"country":"ES"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Hello alice! Your account has been created!"}, decodeBody(t, rr))
}

func TestRegister_UsesTrimmedUsernameFromService(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, _ string) (models.User, error) {
			u.Username = "bob"
			return u, nil
		},
	}

	rr := do(t, authHandler(t, auth, false), http.MethodPost, "/createuser", `{"username":"  bob ","password":"x"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hello bob! Your account has been created!", decodeBody(t, rr)["message"])
}

func TestRegister_CoercesNumbersAndNumericAge(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, password string) (models.User, error) {
			assert.Equal(t, "12345", u.Username)
			assert.Equal(t, "678", password)
			assert.Equal(t, 41, u.Age)
			return u, nil
		},
	}

	rr := do(t, authHandler(t, auth, false), http.MethodPost, "/createuser",
		`{"username":12345,"password":678,"age":"41","country":"PT"}`)

	require.Equal(t, http.StatusOK, rr.Code)
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "missing fields",
			body:       `{"age":20}`,
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantError:  msgFieldsRequired,
		},
		{
			name:       "empty body",
			body:       "",
			serviceErr: service.ErrInvalidDataProvided,
			wantStatus: http.StatusBadRequest,
			wantError:  msgFieldsRequired,
		},
		{
			name:       "password too long",
			body:       `{"username":"a","password":"b"}`,
			serviceErr: service.ErrPasswordTooLong,
			wantStatus: http.StatusBadRequest,
			wantError:  msgPasswordTooLong,
		},
		{
			name:       "duplicate username",
			body:       `{"username":"a","password":"b"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrUserConflict, store.ErrUsernameAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantError:  msgUserConflict,
		},
		{
			name:       "store down",
			body:       `{"username":"a","password":"b"}`,
			serviceErr: fmt.Errorf("%w: %w", service.ErrUserConflict, store.ErrExecutingQuery),
			wantStatus: http.StatusBadRequest,
			wantError:  msgUserConflict,
		},
		{
			name:       "unexpected",
			body:       `{"username":"a","password":"b"}`,
			serviceErr: context.Canceled,
			wantStatus: http.StatusInternalServerError,
			wantError:  msgInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerUserFn: func(context.Context, models.User, string) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			rr := do(t, authHandler(t, auth, false), http.MethodPost, "/createuser", tt.body)
			requireError(t, rr, tt.wantStatus, tt.wantError)
		})
	}
}

func TestRegister_MalformedBody(t *testing.T) {
	bodies := []string{
		`{"username":`,
		`[1,2]`,
		`{"username":"a","password":"b","age":"old"}`,
		`{"username":{"x":1},"password":"b"}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{}, testConfig())

			rr := do(t, h, http.MethodPost, "/createuser", body)
			requireError(t, rr, http.StatusBadRequest, msgInvalidBody)
		})
	}
}

// ─────────────────────────────────────────────
// POST /login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, error) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "secret", password)
			return models.User{Username: "alice", PasswordHash: "must-not-leak"}, nil
		},
	}

	rr := do(t, authHandler(t, auth, false), http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, map[string]any{"message": "Welcome back, alice!", "username": "alice"}, decodeBody(t, rr))
	assert.NotContains(t, rr.Body.String(), "must-not-leak")
}

func TestLogin_SuccessWithScore(t *testing.T) {
	score := 12
	auth := &mockAuthService{
		loginFn: func(context.Context, string, string) (models.User, error) {
			return models.User{Username: "alice", Score: &score}, nil
		},
	}

	rr := do(t, authHandler(t, auth, false), http.MethodPost, "/login", `{"username":"alice","password":"secret"}`)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(12), decodeBody(t, rr)["score"])
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		unify      bool
		wantStatus int
		wantError  string
	}{
		{name: "missing fields", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest, wantError: msgFieldsRequired},
		{name: "unknown user", serviceErr: service.ErrUserNotFound, wantStatus: http.StatusUnauthorized, wantError: msgUserNotFound},
		{name: "wrong password", serviceErr: service.ErrWrongPassword, wantStatus: http.StatusUnauthorized, wantError: msgWrongPassword},
		{name: "unknown user unified", serviceErr: service.ErrUserNotFound, unify: true, wantStatus: http.StatusUnauthorized, wantError: msgInvalidCredentials},
		{name: "wrong password unified", serviceErr: service.ErrWrongPassword, unify: true, wantStatus: http.StatusUnauthorized, wantError: msgInvalidCredentials},
		{name: "store failure", serviceErr: fmt.Errorf("lookup: %w", store.ErrExecutingQuery), wantStatus: http.StatusInternalServerError, wantError: msgInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				loginFn: func(context.Context, string, string) (models.User, error) {
					return models.User{}, tt.serviceErr
				},
			}

			rr := do(t, authHandler(t, auth, tt.unify), http.MethodPost, "/login", `{"username":"alice","password":"x"}`)
			requireError(t, rr, tt.wantStatus, tt.wantError)
		})
	}
}

func TestLogin_NotFoundAndWrongPasswordDiffer(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.User, error) {
			if username == "ghost" {
				return models.User{}, service.ErrUserNotFound
			}
			return models.User{}, service.ErrWrongPassword
		},
	}
	h := authHandler(t, auth, false)

	notFound := do(t, h, http.MethodPost, "/login", `{"username":"ghost","password":"x"}`)
	wrong := do(t, h, http.MethodPost, "/login", `{"username":"alice","password":"x"}`)

	assert.Equal(t, http.StatusUnauthorized, notFound.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.NotEqual(t, notFound.Body.String(), wrong.Body.String())
}

func TestLogin_MalformedBody(t *testing.T) {
	h := newTestHandler(t, &service.Services{}, testConfig())

	rr := do(t, h, http.MethodPost, "/login", `{"username":"alice",`)
	requireError(t, rr, http.StatusBadRequest, msgInvalidBody)
}
