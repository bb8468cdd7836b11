package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// CreateRegistrationRequest is the request body for POST /api/registrations.
type CreateRegistrationRequest struct {
	EventID   *uuid.UUID `json:"event_id,omitempty"`
	PackageID *uuid.UUID `json:"package_id,omitempty"`
}

// Validate implements helpers.Validator.
func (c CreateRegistrationRequest) Validate() []string {
	if c.EventID == nil && c.PackageID == nil {
		return []string{"event_id or package_id is required"}
	}
	return nil
}

type RegistrationController struct {
	Logger  zerolog.Logger
	Service domain.RegistrationService
}

func NewRegistrationController(logger zerolog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Register for an event or package
// @Description Books the event and/or package for the authenticated user. The registration starts Pending with payment Pending. Registering for an event bumps its participant count without a capacity check.
// @Tags registrations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateRegistrationRequest true "Event and/or package"
// @Success 201 {object} helpers.APIResponse{data=domain.Registration}
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/registrations [post]
func (c *RegistrationController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req CreateRegistrationRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	reg, err := c.Service.Register(r.Context(), userID, req.EventID, req.PackageID)
	if err != nil {
		serverError(c.Logger, w, r, err, "Failed to create registration")
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, reg)
}
