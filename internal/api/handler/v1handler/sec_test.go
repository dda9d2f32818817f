package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"recon/internal/api/handler/v1handler"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
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

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err, "NewSecHandler failed")

	return sh
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

func TestHandleBearerAuth_ValidToken(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()
	tkn := signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour))

	ctx, err := sh.HandleBearerAuth(context.Background(), tkn)
	require.NoError(t, err)
	require.Equal(t, domain.UserID(uid), v1handler.GetUserIDFromContext(ctx))
}

func TestHandleBearerAuth_Rejected(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	privOther, _ := genRSAKeys(t)
	now := time.Now()

	hs := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	hsSigned, err := hs.SignedString([]byte("secret"))
	require.NoError(t, err)

	noExp := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{Subject: uuid.NewString()})
	noExpSigned, err := noExp.SignedString(priv)
	require.NoError(t, err)

	tokens := map[string]string{
		"invalid signature": signJWTRS256(t, privOther, uuid.NewString(), now, now.Add(time.Hour)),
		"expired":           signJWTRS256(t, priv, uuid.NewString(), now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"non-uuid subject":  signJWTRS256(t, priv, "not-a-uuid", now, now.Add(time.Hour)),
		"wrong algorithm":   hsSigned,
		"no expiry":         noExpSigned,
		"garbage":           "a.b.c",
	}

	for name, tkn := range tokens {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), tkn)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestSecHandler_Middleware(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)
	uid := uuid.New()

	var got domain.UserID
	h := sh.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = v1handler.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	// missing header
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/progress", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	require.JSONEq(t, `{"code":"UNAUTHORIZED","message":"missing bearer token"}`, rec.Body.String())

	// wrong scheme
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/progress", nil)
	req.Header.Set("Authorization", "Basic Zm9vOmJhcg==")
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// valid token
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/progress", nil)
	req.Header.Set("Authorization", "Bearer "+signJWTRS256(t, priv, uid.String(), time.Now(), time.Now().Add(time.Hour)))
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, domain.UserID(uid), got)
}
