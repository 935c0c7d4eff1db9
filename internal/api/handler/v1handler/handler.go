// Package v1handler implements the v1 JSON API handlers for discovery runs
// and standalone email validation.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"mailscout/internal/discovery"
	"mailscout/pkg/logger"
	"mailscout/pkg/serrors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// DefaultLimit is the page size used when the client does not provide one.
const DefaultLimit = 20

// Deps groups the service dependencies the handlers need.
type Deps struct {
	// Discoverer is the discovery service backing all v1 endpoints.
	Discoverer discovery.Discoverer
}

// Handler serves the v1 routes.
type Handler struct {
	deps Deps
}

// New creates a Handler with the given dependencies.
func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers the v1 endpoints on the given router.
func (h *Handler) Routes(r chi.Router) {
	r.Post("/discoveries", h.CreateDiscovery)
	r.Get("/discoveries", h.ListDiscoveries)
	r.Get("/discoveries/{discoveryID}", h.GetDiscovery)
	r.Delete("/discoveries/{discoveryID}", h.DeleteDiscovery)
	r.Post("/validations", h.CreateValidation)
}

// errorResponse is the JSON error envelope returned by every v1 endpoint.
type errorResponse struct {
	// Code is the semantic error code, e.g. "NOT_FOUND".
	Code string `json:"code"`
	// Message is a human-readable description of the failure.
	Message string `json:"message"`
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}

func respondJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(ctx, "could not encode response", zap.Error(err))
	}
}

// respondError maps semantic error kinds to HTTP statuses. Anything without a
// recognized kind is treated as an internal error and its details are logged
// rather than leaked to the client.
func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := serrors.ErrInternal.Error()
	message := "internal server error"

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		switch {
		case errors.Is(err, serrors.ErrBadRequest):
			status = http.StatusBadRequest
		case errors.Is(err, serrors.ErrUnauthorized):
			status = http.StatusUnauthorized
		case errors.Is(err, serrors.ErrForbidden):
			status = http.StatusForbidden
		case errors.Is(err, serrors.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, serrors.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, serrors.ErrRateLimited):
			status = http.StatusTooManyRequests
		case errors.Is(err, serrors.ErrTimeout):
			status = http.StatusGatewayTimeout
		case errors.Is(err, serrors.ErrUnavailable):
			status = http.StatusServiceUnavailable
		}

		if status != http.StatusInternalServerError {
			code = serr.Kind().Error()
			if msg := serr.Message(); msg != "" {
				message = msg
			} else {
				message = serr.Error()
			}
		}
	}

	if status == http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
	}

	respondJSON(ctx, w, status, errorResponse{Code: code, Message: message})
}
