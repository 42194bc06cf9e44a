// Package v1handler implements the version 1 HTTP API on top of the countries
// and preferences services.
package v1handler

import (
	"context"
	"countries/internal/api/specs/v1specs"
	"countries/internal/countries"
	"countries/internal/preferences"
	"countries/pkg/logger"
	"countries/pkg/serrors"
	"errors"
	"net/http"

	"github.com/ogen-go/ogen/ogenerrors"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Countries   countries.Service
	Preferences preferences.Service
}

// Handler serves every v1 operation. Bearer tokens are checked by SecHandler
// before a protected operation reaches it.
type Handler struct {
	countries   countries.Service
	preferences preferences.Service
}

// Ensure Handler implements v1specs.Handler.
var _ v1specs.Handler = (*Handler)(nil)

// New returns a Handler delegating to deps.
func New(deps Deps) *Handler {
	return &Handler{
		countries:   deps.Countries,
		preferences: deps.Preferences,
	}
}

type errorMapping struct {
	status  int
	message string
}

var errorMappings = map[serrors.Kind]errorMapping{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "no data: the country source is unavailable"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrInternal:     {http.StatusInternalServerError, "internal error"},
}

// classify returns the kind of err and, for the errors raised by the
// generated server before a handler runs, a message describing them.
func classify(err error) (serrors.Kind, string) {
	kind := serrors.KindOf(err)
	if kind != serrors.ErrInternal {
		return kind, serrors.MessageOf(err)
	}

	var (
		secErr    *ogenerrors.SecurityError
		paramsErr *ogenerrors.DecodeParamsError
		reqErr    *ogenerrors.DecodeRequestError
	)
	switch {
	case errors.As(err, &secErr):
		return serrors.ErrUnauthorized, "missing bearer token"
	case errors.As(err, &paramsErr):
		return serrors.ErrBadRequest, paramsErr.Err.Error()
	case errors.As(err, &reqErr):
		return serrors.ErrBadRequest, "invalid payload: " + reqErr.Err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return serrors.ErrTimeout, ""
	}

	return kind, ""
}

// NewError maps err to its HTTP representation. Messages of internal errors
// are never exposed.
func (h *Handler) NewError(ctx context.Context, err error) *v1specs.ServerErrorStatusCode {
	kind, msg := classify(err)
	mapping, ok := errorMappings[kind]
	if !ok {
		kind, mapping = serrors.ErrInternal, errorMappings[serrors.ErrInternal]
	}

	message := mapping.message
	if msg != "" && kind != serrors.ErrInternal {
		message = msg
	}

	if mapping.status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err), zap.String("code", kind.Error()))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err), zap.String("code", kind.Error()))
	}

	return &v1specs.ServerErrorStatusCode{
		StatusCode: mapping.status,
		Response: v1specs.ServerError{
			Code:    kind.Error(),
			Message: message,
		},
	}
}
