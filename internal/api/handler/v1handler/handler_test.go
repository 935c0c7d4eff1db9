package v1handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"mailscout/internal/api/handler/v1handler"
	mockdiscovery "mailscout/internal/discovery/mock"
	"mailscout/pkg/domain"
	"mailscout/pkg/logger"
	"mailscout/pkg/serrors"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

// newTestRouter returns a mocked discovery service and a router with the v1
// routes registered, without the security middleware.
func newTestRouter(t *testing.T) (*mockdiscovery.MockDiscoverer, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := mockdiscovery.NewMockDiscoverer(ctrl)

	r := chi.NewRouter()
	v1handler.New(v1handler.Deps{Discoverer: m}).Routes(r)

	return m, r
}

// errorEnvelope mirrors the JSON error body returned by every endpoint.
type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()

	var env errorEnvelope
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))

	return env
}

func TestRespondError_KindMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "bad request",
			err:        serrors.With(serrors.ErrBadRequest, "invalid cursor"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "invalid cursor",
		},
		{
			name:       "unauthorized",
			err:        serrors.With(serrors.ErrUnauthorized, "invalid token"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
			wantMsg:    "invalid token",
		},
		{
			name:       "forbidden",
			err:        serrors.With(serrors.ErrForbidden, "not your discovery"),
			wantStatus: http.StatusForbidden,
			wantCode:   "FORBIDDEN",
			wantMsg:    "not your discovery",
		},
		{
			name:       "not found",
			err:        serrors.With(serrors.ErrNotFound, "discovery not found"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
			wantMsg:    "discovery not found",
		},
		{
			name:       "conflict",
			err:        serrors.With(serrors.ErrConflict, "already running"),
			wantStatus: http.StatusConflict,
			wantCode:   "CONFLICT",
			wantMsg:    "already running",
		},
		{
			name:       "rate limited",
			err:        serrors.With(serrors.ErrRateLimited, "too many requests"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "RATE_LIMITED",
			wantMsg:    "too many requests",
		},
		{
			name:       "timeout",
			err:        serrors.Wrap(serrors.ErrTimeout, errors.New("deadline"), "sources timed out"),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   "TIMEOUT",
			wantMsg:    "sources timed out",
		},
		{
			name:       "unavailable",
			err:        serrors.With(serrors.ErrUnavailable, "search backend down"),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "UNAVAILABLE",
			wantMsg:    "search backend down",
		},
		{
			name:       "plain error stays internal",
			err:        errors.New("pq: connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    "internal server error",
		},
		{
			name:       "internal kind stays generic",
			err:        serrors.KindOnly(serrors.ErrInternal),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL",
			wantMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, router := newTestRouter(t)

			id := uuid.New()
			m.EXPECT().Result(gomock.Any(), domain.UserID{}, domain.DiscoveryID(id)).Return(nil, tc.err)

			req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/discoveries/%s", id), nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tc.wantStatus, rec.Code)

			env := decodeError(t, rec)
			require.Equal(t, tc.wantCode, env.Code)
			require.Equal(t, tc.wantMsg, env.Message)
		})
	}
}

func TestRespondError_DoesNotLeakInternalDetails(t *testing.T) {
	m, router := newTestRouter(t)

	id := uuid.New()
	m.EXPECT().Result(gomock.Any(), domain.UserID{}, domain.DiscoveryID(id)).
		Return(nil, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/discoveries/%s", id), nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotContains(t, rec.Body.String(), "10.0.0.5")
}
