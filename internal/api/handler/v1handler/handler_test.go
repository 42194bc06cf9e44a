package v1handler_test

import (
	"context"
	"countries/internal/api/handler/v1handler"
	"countries/internal/api/specs/v1specs"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrBadRequest, "invalid payload: darkMode is required")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "invalid payload: darkMode is required", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "unauthorized")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_Unavailable_NoData(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.Wrap(serrors.ErrUnavailable, errors.New("dial tcp: refused"), "could not aggregate countries")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 503, res.StatusCode)
	require.Equal(t, serrors.ErrUnavailable.Error(), res.Response.Code)
	require.Equal(t, "could not aggregate countries", res.Response.Message)
}

func TestNewError_StatusPerKind(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	tests := map[serrors.Kind]int{
		serrors.ErrRateLimited: 429,
		serrors.ErrTimeout:     504,
		serrors.ErrUnavailable: 503,
	}
	for kind, status := range tests {
		t.Run(kind.Error(), func(t *testing.T) {
			res := h.NewError(context.Background(), serrors.KindOnly(kind))
			require.Equal(t, status, res.StatusCode)
			require.Equal(t, kind.Error(), res.Response.Code)
			require.NotEmpty(t, res.Response.Message)
		})
	}
}

func TestNewError_DeadlineExceededIsTimeout(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), fmt.Errorf("could not aggregate: %w", context.DeadlineExceeded))
	require.Equal(t, 504, res.StatusCode)
	require.Equal(t, serrors.ErrTimeout.Error(), res.Response.Code)
}

func TestNewError_InternalMessageHidden(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrInternal, "pq: relation does not exist"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_GeneratedServerErrors(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	opCtx := ogenerrors.OperationContext{Name: v1specs.GetPreferencesOperation, ID: "getPreferences"}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name: "missing token",
			err: &ogenerrors.SecurityError{
				OperationContext: opCtx,
				Err:              ogenerrors.ErrSecurityRequirementIsNotSatisfied,
			},
			status:  401,
			message: "missing bearer token",
		},
		{
			name: "rejected token keeps its message",
			err: &ogenerrors.SecurityError{
				OperationContext: opCtx,
				Security:         "BearerAuth",
				Err:              serrors.Wrap(serrors.ErrUnauthorized, errors.New("token is expired"), "invalid token"),
			},
			status:  401,
			message: "invalid token",
		},
		{
			name:    "bad parameter",
			err:     &ogenerrors.DecodeParamsError{OperationContext: opCtx, Err: errors.New(`decode query parameter "name": field required`)},
			status:  400,
			message: `decode query parameter "name": field required`,
		},
		{
			name:    "bad body",
			err:     &ogenerrors.DecodeRequestError{OperationContext: opCtx, Err: errors.New("unexpected trailing data")},
			status:  400,
			message: "invalid payload: unexpected trailing data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := h.NewError(context.Background(), tt.err)
			require.Equal(t, tt.status, res.StatusCode)
			require.Equal(t, tt.message, res.Response.Message)
		})
	}
}
