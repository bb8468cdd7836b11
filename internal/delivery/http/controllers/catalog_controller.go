package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events and an item of a bulk event import.
type CreateEventRequest struct {
	Title           string    `json:"title" validate:"required,min=3"`
	Description     string    `json:"description" validate:"required,min=10"`
	StartDate       time.Time `json:"start_date" validate:"required"`
	EndDate         time.Time `json:"end_date" validate:"required"`
	VenueID         uuid.UUID `json:"venue_id" validate:"required"`
	MaxParticipants uint32    `json:"max_participants" validate:"min=1,max=1000"`
	Price           float64   `json:"price" validate:"gte=0"`
	EventType       string    `json:"event_type" validate:"required,oneof=Workshop Festival Intensive Social Competition"`
}

// Validate implements helpers.Validator.
func (c CreateEventRequest) Validate() []string {
	if !c.StartDate.IsZero() && !c.EndDate.After(c.StartDate) {
		return []string{"End date must be after start date"}
	}
	return nil
}

func (c CreateEventRequest) event() *domain.Event {
	return domain.NewEvent(c.Title, c.Description, c.StartDate.UTC(), c.EndDate.UTC(), c.VenueID, c.MaxParticipants, c.Price, domain.EventType(c.EventType))
}

// CreateVenueRequest is the request body for POST /api/venues and an item of a bulk venue import.
type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required,min=2"`
	Address     string  `json:"address" validate:"required,min=5"`
	Capacity    uint32  `json:"capacity" validate:"min=1,max=10000"`
	Description *string `json:"description,omitempty"`
}

func (c CreateVenueRequest) venue() *domain.Venue {
	return domain.NewVenue(c.Name, c.Address, c.Capacity, c.Description)
}

// CreatePackageRequest is the request body for POST /api/packages and an item of a bulk package import.
type CreatePackageRequest struct {
	Name            string  `json:"name" validate:"required,min=3"`
	Description     string  `json:"description" validate:"required,min=10"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationDays    uint32  `json:"duration_days" validate:"min=1,max=365"`
	MaxParticipants uint32  `json:"max_participants" validate:"min=1,max=1000"`
}

func (c CreatePackageRequest) pkg() *domain.Package {
	return domain.NewPackage(c.Name, c.Description, c.Price, c.DurationDays, c.MaxParticipants)
}

type CatalogController struct {
	Logger  zerolog.Logger
	Service domain.CatalogService
}

func NewCatalogController(logger zerolog.Logger, svc domain.CatalogService) *CatalogController {
	return &CatalogController{
		Logger:  logger,
		Service: svc,
	}
}

// writeCreateError maps a CatalogService create failure to a response.
func (c *CatalogController) writeCreateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		h.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	serverError(c.Logger, w, r, err, h.MsgInternalError)
}

// ListEvents godoc
// @Summary List events
// @Description All events ordered by start date, earliest first.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Event}
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events [get]
func (c *CatalogController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		serverError(c.Logger, w, r, err, h.MsgInternalError)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID (UUID)"
// @Success 200 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse "malformed id"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{id} [get]
func (c *CatalogController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.WriteJSONError(w, http.StatusBadRequest, "Invalid event id")
		return
	}
	event, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		serverError(c.Logger, w, r, err, h.MsgInternalError)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Title and description are stripped of markup. The venue is not checked for existence.
// @Tags events
// @Accept json
// @Produce json
// @Param body body CreateEventRequest true "Event data"
// @Success 201 {object} helpers.APIResponse{data=domain.Event}
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events [post]
func (c *CatalogController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	event := req.event()
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.writeCreateError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListVenues godoc
// @Summary List venues
// @Description All venues ordered by name.
// @Tags venues
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Venue}
// @Failure 500 {object} helpers.APIResponse
// @Router /api/venues [get]
func (c *CatalogController) ListVenues(w http.ResponseWriter, r *http.Request) {
	venues, err := c.Service.ListVenues(r.Context())
	if err != nil {
		serverError(c.Logger, w, r, err, h.MsgInternalError)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, venues)
}

// CreateVenue godoc
// @Summary Create a venue
// @Tags venues
// @Accept json
// @Produce json
// @Param body body CreateVenueRequest true "Venue data"
// @Success 201 {object} helpers.APIResponse{data=domain.Venue}
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/venues [post]
func (c *CatalogController) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var req CreateVenueRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	venue := req.venue()
	if err := c.Service.CreateVenue(r.Context(), venue); err != nil {
		c.writeCreateError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, venue)
}

// ListPackages godoc
// @Summary List packages
// @Description All packages ordered by price, cheapest first.
// @Tags packages
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=[]domain.Package}
// @Failure 500 {object} helpers.APIResponse
// @Router /api/packages [get]
func (c *CatalogController) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := c.Service.ListPackages(r.Context())
	if err != nil {
		serverError(c.Logger, w, r, err, h.MsgInternalError)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, packages)
}

// CreatePackage godoc
// @Summary Create a package
// @Tags packages
// @Accept json
// @Produce json
// @Param body body CreatePackageRequest true "Package data"
// @Success 201 {object} helpers.APIResponse{data=domain.Package}
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/packages [post]
func (c *CatalogController) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req CreatePackageRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	pkg := req.pkg()
	if err := c.Service.CreatePackage(r.Context(), pkg); err != nil {
		c.writeCreateError(w, r, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, pkg)
}
