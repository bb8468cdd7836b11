package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventbooking/internal/domain"
)

var fixedTime = time.Date(2025, 10, 1, 18, 0, 0, 0, time.UTC)

func authResult() *domain.AuthResult {
	return &domain.AuthResult{
		Token: "token-abc",
		User: &domain.UserProfile{
			ID:         uuid.New(),
			Email:      "anna@example.com",
			FirstName:  "Anna",
			LastName:   "Schmidt",
			Experience: domain.ExperienceBeginner,
			CreatedAt:  fixedTime,
		},
	}
}

func TestAuthController_Register(t *testing.T) {
	const valid = `{"email":"anna@example.com","password":"secret123","first_name":"Anna","last_name":"Schmidt","dance_experience":"Advanced"}`

	tests := []struct {
		name        string
		body        string
		svc         *fakeAuthService
		wantStatus  int
		wantMessage string
		wantErrors  []string
	}{
		{
			name:       "created",
			body:       valid,
			svc:        &fakeAuthService{result: authResult()},
			wantStatus: http.StatusCreated,
		},
		{
			name:        "duplicate email",
			body:        valid,
			svc:         &fakeAuthService{err: domain.ErrDuplicateEmail},
			wantStatus:  http.StatusConflict,
			wantMessage: "User with this email already exists",
		},
		{
			name:        "storage failure is not echoed",
			body:        valid,
			svc:         &fakeAuthService{err: errBoom},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Internal server error",
		},
		{
			name:        "validation errors",
			body:        `{"email":"not-an-email","password":"short","first_name":"A","last_name":"Schmidt"}`,
			svc:         &fakeAuthService{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
			wantErrors: []string{
				"Invalid email address",
				"password must be at least 8 characters",
				"first_name must be at least 2 characters",
			},
		},
		{
			name:        "unknown experience",
			body:        `{"email":"anna@example.com","password":"secret123","first_name":"Anna","last_name":"Schmidt","dance_experience":"Guru"}`,
			svc:         &fakeAuthService{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Validation failed",
			wantErrors:  []string{"dance_experience must be one of: Beginner, Intermediate, Advanced, Professional"},
		},
		{
			name:        "unknown field",
			body:        `{"email":"anna@example.com","password":"secret123","first_name":"Anna","last_name":"Schmidt","role":"admin"}`,
			svc:         &fakeAuthService{},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.svc)
			rr := serve(t, http.HandlerFunc(ctrl.Register), http.MethodPost, "/api/auth/register", tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantStatus == http.StatusCreated {
				var got domain.AuthResult
				env := envelope(t, rr, &got)
				assert.True(t, env.Success)
				assert.Equal(t, "token-abc", got.Token)
				assert.Equal(t, "anna@example.com", got.User.Email)
				assert.Equal(t, domain.ExperienceAdvanced, tt.svc.lastRegister.Experience)
				assert.NotContains(t, rr.Body.String(), "password")
				return
			}
			env := envelope(t, rr, nil)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			for _, e := range tt.wantErrors {
				assert.Contains(t, env.Errors, e)
			}
			assert.NotContains(t, rr.Body.String(), "bolt")
		})
	}
}

func TestAuthController_RegisterDefaultsExperienceToService(t *testing.T) {
	svc := &fakeAuthService{result: authResult()}
	ctrl := NewAuthController(testLogger, svc)
	body := `{"email":"anna@example.com","password":"secret123","first_name":"Anna","last_name":"Schmidt","phone":"+49 30 1234"}`
	rr := serve(t, http.HandlerFunc(ctrl.Register), http.MethodPost, "/api/auth/register", body, nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, domain.Experience(""), svc.lastRegister.Experience)
	require.NotNil(t, svc.lastRegister.Phone)
	assert.Equal(t, "+49 30 1234", *svc.lastRegister.Phone)
}

func TestAuthController_Login(t *testing.T) {
	const body = `{"email":"anna@example.com","password":"secret123"}`

	tests := []struct {
		name        string
		svc         *fakeAuthService
		wantStatus  int
		wantMessage string
	}{
		{"ok", &fakeAuthService{result: authResult()}, http.StatusOK, ""},
		{"bad credentials", &fakeAuthService{err: domain.ErrInvalidCredentials}, http.StatusUnauthorized, "Invalid email or password"},
		{"disabled", &fakeAuthService{err: domain.ErrAccountDisabled}, http.StatusUnauthorized, "Account is disabled"},
		{"internal", &fakeAuthService{err: errBoom}, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := NewAuthController(testLogger, tt.svc)
			rr := serve(t, http.HandlerFunc(ctrl.Login), http.MethodPost, "/api/auth/login", body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)
			env := envelope(t, rr, nil)
			assert.Equal(t, tt.wantStatus == http.StatusOK, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, "anna@example.com", tt.svc.lastEmail)
		})
	}
}

func TestAuthController_LoginRequiresPassword(t *testing.T) {
	ctrl := NewAuthController(testLogger, &fakeAuthService{})
	rr := serve(t, http.HandlerFunc(ctrl.Login), http.MethodPost, "/api/auth/login", `{"email":"anna@example.com"}`, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	env := envelope(t, rr, nil)
	assert.Equal(t, []string{"password is required"}, env.Errors)
}
