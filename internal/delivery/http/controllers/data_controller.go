package controllers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	h "eventbooking/internal/delivery/http/helpers"
	"eventbooking/internal/domain"
)

const maxImportBytes = 64 << 20

// BulkEventsRequest is the request body for POST /api/data/bulk/events.
type BulkEventsRequest struct {
	Data []CreateEventRequest `json:"data" validate:"required"`
}

// BulkVenuesRequest is the request body for POST /api/data/bulk/venues.
type BulkVenuesRequest struct {
	Data []CreateVenueRequest `json:"data" validate:"required"`
}

// BulkPackagesRequest is the request body for POST /api/data/bulk/packages.
type BulkPackagesRequest struct {
	Data []CreatePackageRequest `json:"data" validate:"required"`
}

// BulkOperationResponse reports how many items of a bulk request were stored.
// Every failed item has one line in Errors.
type BulkOperationResponse struct {
	SuccessCount int      `json:"success_count"`
	ErrorCount   int      `json:"error_count"`
	Errors       []string `json:"errors"`
}

type DataController struct {
	Logger  zerolog.Logger
	Service domain.DataService
	Catalog domain.CatalogService
}

func NewDataController(logger zerolog.Logger, svc domain.DataService, catalog domain.CatalogService) *DataController {
	return &DataController{
		Logger:  logger,
		Service: svc,
		Catalog: catalog,
	}
}

// Export godoc
// @Summary Export every record
// @Description Snapshot of all kinds. Kinds are read one after another without a shared transaction.
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse{data=domain.DatabaseExport}
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/data/export [get]
func (c *DataController) Export(w http.ResponseWriter, r *http.Request) {
	snap, err := c.Service.Export(r.Context())
	if err != nil {
		serverError(c.Logger, w, r, err, "Failed to export data")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, snap)
}

// Import godoc
// @Summary Import a snapshot
// @Description Writes every record of the snapshot. Existing records are kept; records with the same id are overwritten.
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body domain.DatabaseExport true "Snapshot produced by /data/export"
// @Success 200 {object} helpers.APIResponse{data=domain.ImportSummary}
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/data/import [post]
func (c *DataController) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	var snap domain.DatabaseExport
	if !h.DecodeAndValidate(w, r, &snap) {
		return
	}
	sum, err := c.Service.Import(r.Context(), &snap)
	if errors.Is(err, domain.ErrInvalidInput) {
		h.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		serverError(c.Logger, w, r, err, "Failed to import data")
		return
	}
	h.WriteJSONMessage(w, http.StatusOK, sum, "Data imported successfully")
}

// Statistics godoc
// @Summary Record counts per kind
// @Tags data
// @Produce json
// @Success 200 {object} helpers.APIResponse{data=domain.DataStatistics}
// @Failure 500 {object} helpers.APIResponse
// @Router /api/data/statistics [get]
func (c *DataController) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Service.Statistics(r.Context())
	if err != nil {
		serverError(c.Logger, w, r, err, "Failed to get statistics")
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, stats)
}

// Clear godoc
// @Summary Delete every record
// @Tags data
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/data/clear [delete]
func (c *DataController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.Clear(r.Context()); err != nil {
		serverError(c.Logger, w, r, err, "Failed to clear data")
		return
	}
	h.WriteJSONMessage(w, http.StatusOK, nil, "All data cleared successfully")
}

// BulkEvents godoc
// @Summary Create many events
// @Description Items are validated and stored one by one. A failed item does not stop the rest.
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkEventsRequest true "Events"
// @Success 200 {object} helpers.APIResponse{data=BulkOperationResponse}
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /api/data/bulk/events [post]
func (c *DataController) BulkEvents(w http.ResponseWriter, r *http.Request) {
	var req BulkEventsRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	resp := bulkCreate(r.Context(), c.Logger, req.Data,
		func(e CreateEventRequest) string { return fmt.Sprintf("Event '%s'", e.Title) },
		func(ctx context.Context, e CreateEventRequest) error { return c.Catalog.CreateEvent(ctx, e.event()) })
	h.WriteJSONSuccess(w, http.StatusOK, resp)
}

// BulkVenues godoc
// @Summary Create many venues
// @Description Items are validated and stored one by one. A failed item does not stop the rest.
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkVenuesRequest true "Venues"
// @Success 200 {object} helpers.APIResponse{data=BulkOperationResponse}
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /api/data/bulk/venues [post]
func (c *DataController) BulkVenues(w http.ResponseWriter, r *http.Request) {
	var req BulkVenuesRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	resp := bulkCreate(r.Context(), c.Logger, req.Data,
		func(v CreateVenueRequest) string { return fmt.Sprintf("Venue '%s'", v.Name) },
		func(ctx context.Context, v CreateVenueRequest) error { return c.Catalog.CreateVenue(ctx, v.venue()) })
	h.WriteJSONSuccess(w, http.StatusOK, resp)
}

// BulkPackages godoc
// @Summary Create many packages
// @Description Items are validated and stored one by one. A failed item does not stop the rest.
// @Tags data
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body BulkPackagesRequest true "Packages"
// @Success 200 {object} helpers.APIResponse{data=BulkOperationResponse}
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Router /api/data/bulk/packages [post]
func (c *DataController) BulkPackages(w http.ResponseWriter, r *http.Request) {
	var req BulkPackagesRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	resp := bulkCreate(r.Context(), c.Logger, req.Data,
		func(p CreatePackageRequest) string { return fmt.Sprintf("Package '%s'", p.Name) },
		func(ctx context.Context, p CreatePackageRequest) error { return c.Catalog.CreatePackage(ctx, p.pkg()) })
	h.WriteJSONSuccess(w, http.StatusOK, resp)
}

func bulkCreate[T any](ctx context.Context, logger zerolog.Logger, items []T, label func(T) string, create func(context.Context, T) error) BulkOperationResponse {
	resp := BulkOperationResponse{Errors: []string{}}
	fail := func(item T, msg string) {
		resp.ErrorCount++
		resp.Errors = append(resp.Errors, label(item)+": "+msg)
	}
	for _, item := range items {
		if errs := h.ValidateStruct(item); len(errs) > 0 {
			fail(item, strings.Join(errs, ", "))
			continue
		}
		err := create(ctx, item)
		switch {
		case err == nil:
			resp.SuccessCount++
		case errors.Is(err, domain.ErrInvalidInput):
			fail(item, err.Error())
		default:
			logger.Error().Err(err).Str("item", label(item)).Msg("bulk create failed")
			fail(item, "failed to store")
		}
	}
	return resp
}
