package v1handler_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"mailscout/internal/api/handler/v1handler"
	"mailscout/pkg/domain"
)

// helper to generate an RSA key pair and return the private key and PEM-encoded public key.
func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err, "failed to generate RSA key")
	pubASN1, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err, "failed to marshal public key")
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubASN1})

	return priv, string(pubPEM)
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(priv)
	require.NoError(tb, err, "failed to sign token")

	return signed
}

// newProtectedServer wraps a probe handler with the security middleware and
// returns the router plus a pointer that receives the authenticated user ID.
func newProtectedServer(t *testing.T, pubPEM string) (http.Handler, *domain.UserID) {
	t.Helper()

	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	var seen domain.UserID
	r := chi.NewRouter()
	r.Use(sh.Middleware)
	r.Get("/probe", func(w http.ResponseWriter, req *http.Request) {
		seen = v1handler.GetUserIDFromContext(req.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	return r, &seen
}

func probeRequest(router http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestMiddleware_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	router, seen := newProtectedServer(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(1*time.Hour))

	rec := probeRequest(router, tkn)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, domain.UserID(uid), *seen)
}

func TestMiddleware_MissingToken(t *testing.T) {
	_, pubPEM := genRSAKeys(t)
	router, _ := newProtectedServer(t, pubPEM)

	rec := probeRequest(router, "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	env := decodeError(t, rec)
	require.Equal(t, "UNAUTHORIZED", env.Code)
	require.Equal(t, "missing bearer token", env.Message)
}

func TestMiddleware_InvalidSignature(t *testing.T) {
	// handler uses pub from key A, but token signed with key B
	_, pubPEM := genRSAKeys(t)
	router, _ := newProtectedServer(t, pubPEM)

	privOther, _ := genRSAKeys(t)
	now := time.Now()
	tkn := signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour))

	rec := probeRequest(router, tkn)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid token", decodeError(t, rec).Message)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	router, _ := newProtectedServer(t, pubPEM)

	now := time.Now()
	tkn := signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-1*time.Hour))

	rec := probeRequest(router, tkn)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddleware_InvalidSubject(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	router, _ := newProtectedServer(t, pubPEM)

	now := time.Now()
	// non-UUID subject
	tkn := signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour))

	rec := probeRequest(router, tkn)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "invalid token subject", decodeError(t, rec).Message)
}

func TestMiddleware_WrongAlgorithm(t *testing.T) {
	// handler expects RS256, token signed with HS256
	_, pubPEM := genRSAKeys(t)
	router, _ := newProtectedServer(t, pubPEM)

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		NotBefore: jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("secret"))
	require.NoError(t, err, "failed to sign HS256 token")

	rec := probeRequest(router, signed)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUserIDFromContext_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	require.Equal(t, domain.UserID{}, v1handler.GetUserIDFromContext(req.Context()))
}
