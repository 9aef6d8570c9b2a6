package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"apollo/internal/vehicle/models"
	dErrors "apollo/pkg/domain-errors"
	"apollo/pkg/requestcontext"
)

// Service defines the vehicle operations the HTTP layer depends on.
type Service interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	Get(ctx context.Context, vin string) (models.Vehicle, error)
	Create(ctx context.Context, vehicle models.Vehicle) (models.Vehicle, error)
	Update(ctx context.Context, vin string, patch models.VehiclePatch) (models.Vehicle, error)
	Delete(ctx context.Context, vin string) error
}

// Handler maps the /vehicle routes onto the domain service. It owns request
// decoding and field validation; business rules stay in the service.
type Handler struct {
	vehicles Service
	logger   *slog.Logger
}

// New creates a vehicle Handler.
func New(vehicles Service, logger *slog.Logger) *Handler {
	return &Handler{
		vehicles: vehicles,
		logger:   logger,
	}
}

// Register registers the vehicle routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/vehicle", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{vin}", h.handleGet)
		r.Put("/{vin}", h.handleUpdate)
		r.Delete("/{vin}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vehicles, err := h.vehicles.List(ctx)
	if err != nil {
		h.logError(ctx, "failed to list vehicles", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicles)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vin := chi.URLParam(r, "vin")

	vehicle, err := h.vehicles.Get(ctx, vin)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logError(ctx, "failed to fetch vehicle", err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicle)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var vehicle models.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		writeError(w, dErrors.NewValidation(models.FieldErrors{"body": "invalid request body"}))
		return
	}
	if errs := vehicle.Validate(); errs != nil {
		writeError(w, dErrors.NewValidation(errs))
		return
	}

	created, err := h.vehicles.Create(ctx, vehicle)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeConflict) {
			h.logError(ctx, "failed to create vehicle", err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vin := chi.URLParam(r, "vin")

	var patch models.VehiclePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, dErrors.NewValidation(models.FieldErrors{"body": "invalid request body"}))
		return
	}
	if errs := patch.Validate(); errs != nil {
		writeError(w, dErrors.NewValidation(errs))
		return
	}

	updated, err := h.vehicles.Update(ctx, vin, patch)
	if err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logError(ctx, "failed to update vehicle", err)
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	vin := chi.URLParam(r, "vin")

	if err := h.vehicles.Delete(ctx, vin); err != nil {
		if !dErrors.HasCode(err, dErrors.CodeNotFound) {
			h.logError(ctx, "failed to delete vehicle", err)
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) logError(ctx context.Context, msg string, err error) {
	h.logger.ErrorContext(ctx, msg,
		"request_id", requestcontext.RequestID(ctx),
		"error", err.Error(),
	)
}
