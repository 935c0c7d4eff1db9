package v1handler

import (
	"mailscout/internal/validate"
	"mailscout/pkg/domain"
	"mailscout/pkg/serrors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CreateDiscoveryRequest is the payload for POST /v1/discoveries.
type CreateDiscoveryRequest struct {
	Target domain.TargetDescriptor `json:"target"`
}

// DiscoveryResponse is the JSON shape of a single discovery run.
type DiscoveryResponse struct {
	ID        uuid.UUID               `json:"id"`
	Target    domain.TargetDescriptor `json:"target"`
	Status    domain.DiscoveryStatus  `json:"status"`
	Result    domain.DiscoveryResult  `json:"result"`
	Attempts  uint                    `json:"attempts"`
	CreatedAt time.Time               `json:"createdAt"`
	UpdatedAt *time.Time              `json:"updatedAt,omitempty"`
}

// DiscoveryListResponse is the JSON shape of a page of discovery runs.
type DiscoveryListResponse struct {
	Items      []DiscoveryResponse `json:"items"`
	NextCursor string              `json:"nextCursor,omitempty"`
}

// ValidationRequest is the payload for POST /v1/validations.
type ValidationRequest struct {
	Address string `json:"address"`
	// SkipDNS requests a partial verdict without the DNS stage.
	SkipDNS bool `json:"skipDns"`
}

func domainDiscoveryToResponse(in *domain.Discovery) DiscoveryResponse {
	out := DiscoveryResponse{
		ID:        uuid.UUID(in.ID),
		Target:    in.Target,
		Status:    in.Status,
		Result:    in.Result,
		Attempts:  in.Attempts,
		CreatedAt: in.CreatedAt,
	}
	if !in.UpdatedAt.IsZero() {
		t := in.UpdatedAt
		out.UpdatedAt = &t
	}

	return out
}

// discoveryIDFromRequest parses the discoveryID path parameter.
func discoveryIDFromRequest(r *http.Request) (domain.DiscoveryID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "discoveryID"))
	if err != nil {
		return domain.DiscoveryID{}, serrors.Wrap(serrors.ErrBadRequest, err, "invalid discovery ID")
	}

	return domain.DiscoveryID(id), nil
}

// CreateDiscovery schedules a new discovery run based on the request payload.
func (h *Handler) CreateDiscovery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateDiscoveryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}

	run, err := h.deps.Discoverer.Enqueue(ctx, GetUserIDFromContext(ctx), req.Target)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusCreated, domainDiscoveryToResponse(run))
}

// ListDiscoveries returns a paginated list of the caller's discovery runs.
func (h *Handler) ListDiscoveries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := uint(DefaultLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || parsed == 0 {
			respondError(ctx, w, serrors.With(serrors.ErrBadRequest, "invalid limit"))

			return
		}
		limit = uint(parsed)
	}

	runs, nextCursor, err := h.deps.Discoverer.UserDiscoveries(ctx,
		GetUserIDFromContext(ctx),
		domain.DiscoveryStatus(r.URL.Query().Get("status")),
		r.URL.Query().Get("cursor"),
		limit)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	items := make([]DiscoveryResponse, 0, len(runs))
	for i := range runs {
		items = append(items, domainDiscoveryToResponse(&runs[i]))
	}

	respondJSON(ctx, w, http.StatusOK, DiscoveryListResponse{
		Items:      items,
		NextCursor: nextCursor,
	})
}

// GetDiscovery returns details of a discovery run by ID.
func (h *Handler) GetDiscovery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := discoveryIDFromRequest(r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	run, err := h.deps.Discoverer.Result(ctx, GetUserIDFromContext(ctx), id)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, domainDiscoveryToResponse(run))
}

// DeleteDiscovery deletes a discovery run by ID.
func (h *Handler) DeleteDiscovery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := discoveryIDFromRequest(r)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	if err := h.deps.Discoverer.Delete(ctx, GetUserIDFromContext(ctx), id); err != nil {
		respondError(ctx, w, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateValidation runs a standalone validation pass for a single address.
func (h *Handler) CreateValidation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req ValidationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(ctx, w, err)

		return
	}

	var opts []validate.CheckOption
	if req.SkipDNS {
		opts = append(opts, validate.WithSkipDNS())
	}

	res, err := h.deps.Discoverer.Validate(ctx, req.Address, opts...)
	if err != nil {
		respondError(ctx, w, err)

		return
	}

	respondJSON(ctx, w, http.StatusOK, res)
}
