package v1handler_test

import (
	"context"
	"errors"
	"recon/internal/api/handler/v1handler"
	"recon/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrBadRequest, "invalid email address"))
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid email address", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// the message is exposed, the cause is not
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_RateLimitedAndInternalKind(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrRateLimited))
	require.Equal(t, 429, res.StatusCode)
	require.Equal(t, "too many requests", res.Response.Message)

	res = h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "database password is hunter2"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}
