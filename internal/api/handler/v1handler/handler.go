// Package v1handler implements the v1 HTTP API: the ad-hoc price check,
// on-demand batch runs and product result history.
package v1handler

import (
	"context"
	"errors"
	"net/http"
	"pricewatch/internal/monitor"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/serrors"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Deps are the services the handlers delegate to.
type Deps struct {
	Monitor monitor.Monitor
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// ErrorResponse is the JSON body of every error response.
type ErrorResponse struct {
	Code    string
	Message string
}

func (r ErrorResponse) Encode(e *jx.Encoder) {
	e.Obj(func(e *jx.Encoder) {
		e.FieldStart("code")
		e.Str(r.Code)
		e.FieldStart("message")
		e.Str(r.Message)
	})
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

type errorMapping struct {
	kind    serrors.Kind
	status  int
	message string
}

var errorMappings = []errorMapping{ //nolint: gochecknoglobals
	{serrors.ErrNotFound, http.StatusNotFound, "resource not found"},
	{serrors.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
	{serrors.ErrBadRequest, http.StatusBadRequest, "bad request"},
	{serrors.ErrConflict, http.StatusConflict, "conflict"},
	{serrors.ErrTimeout, http.StatusGatewayTimeout, "request timed out"},
	{serrors.ErrUnavailable, http.StatusServiceUnavailable, "service unavailable"},
}

// NewError maps err onto an error response. Semantic errors keep their
// message; anything else, including serrors.ErrInternal, is logged and
// reported as an internal error without details.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	for _, m := range errorMappings {
		if !errors.Is(err, m.kind) {
			continue
		}

		msg := serrors.MessageOf(err)
		if msg == "" {
			msg = m.message
		}

		return &ErrorStatusCode{
			StatusCode: m.status,
			Response:   ErrorResponse{Code: m.kind.Error(), Message: msg},
		}
	}

	logger.Error(ctx, "internal error", zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: http.StatusInternalServerError,
		Response:   ErrorResponse{Code: serrors.ErrInternal.Error(), Message: "internal error"},
	}
}

func (h Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := h.NewError(r.Context(), err)
	writeJSON(w, res.StatusCode, res.Response.Encode)
}

func writeJSON(w http.ResponseWriter, status int, encode func(e *jx.Encoder)) {
	var e jx.Encoder
	encode(&e)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

// Mount registers the v1 routes on mux under /v1. Run and result routes are
// guarded by sec.
func (h *Handler) Mount(mux *http.ServeMux, sec *SecHandler) {
	mux.HandleFunc("/v1/check", h.Check)
	mux.Handle("POST /v1/runs", sec.Require("createRun", h.CreateRun))
	mux.Handle("GET /v1/runs/{id}", sec.Require("getRun", h.GetRun))
	mux.Handle("GET /v1/products/{id}/results", sec.Require("listProductResults", h.ListProductResults))
}
