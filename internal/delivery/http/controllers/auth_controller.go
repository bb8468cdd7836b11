package controllers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// RegisterRequest is the request body for POST /api/auth/register.
type RegisterRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	Password        string  `json:"password" validate:"required,min=8"`
	FirstName       string  `json:"first_name" validate:"required,min=2"`
	LastName        string  `json:"last_name" validate:"required,min=2"`
	Phone           *string `json:"phone,omitempty" validate:"omitempty,max=32"`
	DanceExperience string  `json:"dance_experience,omitempty" validate:"omitempty,oneof=Beginner Intermediate Advanced Professional"`
}

// LoginRequest is the request body for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthController struct {
	Logger  zerolog.Logger
	Service domain.AuthService
}

func NewAuthController(logger zerolog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Creates an active user and returns a token. The email must not be in use. dance_experience defaults to Beginner.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse{data=domain.AuthResult}
// @Failure 400 {object} helpers.APIResponse "validation errors"
// @Failure 409 {object} helpers.APIResponse "email already registered"
// @Failure 429 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/auth/register [post]
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Register(r.Context(), domain.RegisterParams{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Phone:      req.Phone,
		Experience: domain.Experience(req.DanceExperience),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			h.WriteJSONError(w, http.StatusConflict, "User with this email already exists")
			return
		}
		serverError(c.Logger, w, r, err, h.MsgInternalError)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, result)
}

// Login godoc
// @Summary Log in
// @Description Authenticates with email and password and returns a token with the user's profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse{data=domain.AuthResult}
// @Failure 400 {object} helpers.APIResponse "validation errors"
// @Failure 401 {object} helpers.APIResponse "bad credentials or disabled account"
// @Failure 429 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	result, err := c.Service.Login(r.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		h.WriteJSONError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrAccountDisabled):
		h.WriteJSONError(w, http.StatusUnauthorized, "Account is disabled")
	case err != nil:
		serverError(c.Logger, w, r, err, h.MsgInternalError)
	default:
		h.WriteJSONSuccess(w, http.StatusOK, result)
	}
}
