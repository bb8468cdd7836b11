package controllers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

type UserController struct {
	Logger        zerolog.Logger
	Users         domain.UserService
	Registrations domain.RegistrationService
}

func NewUserController(logger zerolog.Logger, users domain.UserService, registrations domain.RegistrationService) *UserController {
	return &UserController{
		Logger:        logger,
		Users:         users,
		Registrations: registrations,
	}
}

// GetProfile godoc
// @Summary Get the caller's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.UserProfile}
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "user no longer exists"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/users/profile [get]
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	profile, err := c.Users.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		serverError(c.Logger, w, r, err, "Failed to retrieve profile")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, profile)
}

// ListRegistrations godoc
// @Summary List the caller's registrations
// @Description Newest first.
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=[]domain.Registration}
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/users/registrations [get]
func (c *UserController) ListRegistrations(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	regs, err := c.Registrations.ListForUser(r.Context(), userID)
	if err != nil {
		serverError(c.Logger, w, r, err, h.MsgInternalError)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, regs)
}
