// Package v1handler implements the version 1 HTTP API.
package v1handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"recon/internal/learning"
	"recon/internal/news"
	"recon/internal/recon"
	"recon/pkg/logger"
	"recon/pkg/serrors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Deps are the services the handlers delegate to.
type Deps struct {
	Analyzer recon.Analyzer
	Feed     news.Feed
	Catalog  *learning.Catalog
	Progress learning.ProgressTracker
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes mounts the v1 endpoints. Progress endpoints require a bearer token
// validated by sec.
func (h *Handler) Routes(sec *SecHandler) chi.Router {
	r := chi.NewRouter()

	r.Post("/recon", h.Analyze)
	r.Get("/news", h.LatestNews)
	r.Get("/learning/catalog", h.Catalog)
	r.Post("/learning/password-strength", h.PasswordStrength)

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware)

		r.Get("/progress", h.GetProgress)
		r.Delete("/progress", h.ResetProgress)
		r.Post("/progress/lessons/{lessonID}", h.CompleteLesson)
		r.Post("/progress/quizzes/{quizID}", h.SubmitQuiz)
		r.Post("/progress/phishing/{emailID}", h.GuessPhishing)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		h.WriteError(w, r, serrors.KindOnly(serrors.ErrNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusMethodNotAllowed, Error{
			Code:    "METHOD_NOT_ALLOWED",
			Message: fmt.Sprintf("method %s not allowed", r.Method),
		})
	})

	return r
}

// Error is the body of every failed response.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse couples an Error with its status code.
type ErrorResponse struct {
	StatusCode int
	Response   Error
}

type kindStatus struct {
	status  int
	message string
}

var kindStatuses = map[serrors.Kind]kindStatus{ //nolint: gochecknoglobals
	serrors.ErrBadRequest:   {http.StatusBadRequest, "bad request"},
	serrors.ErrUnauthorized: {http.StatusUnauthorized, "unauthorized"},
	serrors.ErrForbidden:    {http.StatusForbidden, "forbidden"},
	serrors.ErrNotFound:     {http.StatusNotFound, "resource not found"},
	serrors.ErrConflict:     {http.StatusConflict, "conflict"},
	serrors.ErrRateLimited:  {http.StatusTooManyRequests, "too many requests"},
	serrors.ErrTimeout:      {http.StatusGatewayTimeout, "request timed out"},
	serrors.ErrUnavailable:  {http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err to a response. Semantic kinds select the status code and
// their message is exposed; anything else is logged and reported as an
// internal error without details.
func (h *Handler) NewError(ctx context.Context, err error) *ErrorResponse {
	kind := serrors.KindOf(err)
	ks, ok := kindStatuses[kind]
	if !ok {
		logger.Error(ctx, "internal error", zap.Error(err))

		return &ErrorResponse{
			StatusCode: http.StatusInternalServerError,
			Response:   Error{Code: serrors.ErrInternal.Error(), Message: "internal error"},
		}
	}

	msg := serrors.MessageOf(err)
	if msg == "" {
		msg = ks.message
	}
	logger.Debug(ctx, "request failed", zap.Error(err))

	return &ErrorResponse{
		StatusCode: ks.status,
		Response:   Error{Code: kind.Error(), Message: msg},
	}
}

// WriteError writes the response NewError maps err to.
func (h *Handler) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(r.Context(), w, res.StatusCode, res.Response)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn(ctx, "could not write response", zap.Error(err))
	}
}

// decodeJSON reads a single JSON document from the request body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		}

		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}
	if dec.More() {
		return serrors.With(serrors.ErrBadRequest, "invalid request body: %s", "trailing data")
	}

	return nil
}

func requireField(name, value string) error {
	if value == "" {
		return serrors.With(serrors.ErrBadRequest, "%s is required", name)
	}

	return nil
}

// wrapf keeps the semantic kind of err while adding context for logs.
func wrapf(err error, format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
