package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"pricewatch/pkg/domain"
	"testing"
	"time"

	"pricewatch/internal/api/handler/v1handler"
	"pricewatch/pkg/serrors"

	"github.com/stretchr/testify/require"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type keyPair struct {
	priv   *rsa.PrivateKey
	pubPEM string
}

func newKeyPair(tb testing.TB) keyPair {
	tb.Helper()

	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	der, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	return keyPair{priv: priv, pubPEM: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))}
}

func (k keyPair) secHandler(t *testing.T) *v1handler.SecHandler {
	t.Helper()

	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: k.pubPEM})
	require.NoError(t, err)
	require.True(t, sh.Enabled())

	return sh
}

// token signs claims for sub valid from now+from to now+until.
func (k keyPair) token(tb testing.TB, sub string, from, until time.Duration) string {
	tb.Helper()

	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(now.Add(from)),
		NotBefore: jwt.NewNumericDate(now.Add(from)),
		ExpiresAt: jwt.NewNumericDate(now.Add(until)),
	}).SignedString(k.priv)
	require.NoError(tb, err)

	return signed
}

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	keys := newKeyPair(t)
	uid := uuid.New()

	ctx, err := keys.secHandler(t).HandleBearerAuth(context.Background(), "createRun",
		v1handler.BearerAuth{Token: keys.token(t, uid.String(), 0, time.Hour)})
	require.NoError(t, err)
	require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	keys := newKeyPair(t)
	other := newKeyPair(t)
	sh := keys.secHandler(t)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject: uuid.NewString(),
	}).SignedString(keys.priv)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "foreign key", token: other.token(t, uuid.NewString(), 0, time.Hour)},
		{name: "expired", token: keys.token(t, uuid.NewString(), -2*time.Hour, -time.Hour)},
		{name: "not yet valid", token: keys.token(t, uuid.NewString(), time.Hour, 2*time.Hour)},
		{name: "subject is not a uuid", token: keys.token(t, "alice", 0, time.Hour)},
		{name: "hmac algorithm", token: hs256},
		{name: "no expiry", token: noExpiry},
		{name: "garbage", token: "a.b.c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), "getRun", v1handler.BearerAuth{Token: tt.token})
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestHandleBearerAuth_Disabled(t *testing.T) {
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{})
	require.NoError(t, err)
	require.False(t, sh.Enabled())

	_, err = sh.HandleBearerAuth(context.Background(), "", v1handler.BearerAuth{Token: "x"})
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestNewSecHandler_BadKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestRequire(t *testing.T) {
	keys := newKeyPair(t)
	sh := keys.secHandler(t)

	uid := uuid.New()
	var seen domain.UserID
	h := sh.Require("getRun", func(w http.ResponseWriter, r *http.Request) {
		seen = v1handler.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/x", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/runs/x", nil)
		req.Header.Set("Authorization", "Bearer "+keys.token(t, uid.String(), 0, time.Hour))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, domain.UserID(uid), seen)
	})

	t.Run("disabled passes through", func(t *testing.T) {
		open, err := v1handler.NewSecHandler(nil)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		open.Require("getRun", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/runs/x", nil))
		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}
