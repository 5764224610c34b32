package v1handler

import (
	"io"
	"net/http"
	"pricewatch/pkg/domain"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/serrors"
	"strconv"
	"strings"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// decodeRunRequest reads an optional {"productIds": [...]} body.
func decodeRunRequest(raw []byte) ([]domain.ProductID, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, nil
	}

	var ids []domain.ProductID
	err := jx.DecodeBytes(raw).ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "productIds" {
			return d.Skip()
		}
		if d.Next() == jx.Null {
			return d.Null()
		}

		return d.Arr(func(d *jx.Decoder) error {
			s, err := d.Str()
			if err != nil {
				return err //nolint: wrapcheck
			}
			id, err := domain.ParseProductID(s)
			if err != nil {
				return err //nolint: wrapcheck
			}
			ids = append(ids, id)

			return nil
		})
	})
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid run request")
	}

	return ids, nil
}

// CreateRun enqueues an on-demand run over all products, or over the
// products listed in the body, and responds with the pending run.
func (h Handler) CreateRun(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body"))

		return
	}
	filter, err := decodeRunRequest(raw)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	run, err := h.deps.Monitor.Enqueue(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	operator := "anonymous"
	if userID := GetUserIDFromContext(r.Context()); userID != (domain.UserID{}) {
		operator = userID.String()
	}
	logger.Info(r.Context(), "run requested",
		zap.Stringer("runID", run.ID),
		zap.String("operator", operator),
		zap.Int("filteredProducts", len(filter)))

	w.Header().Set("Location", "/v1/runs/"+run.ID.String())
	writeJSON(w, http.StatusAccepted, func(e *jx.Encoder) { encodeRun(e, run) })
}

// GetRun returns a run summary; results are included once it completed.
func (h Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	runID, err := domain.ParseRunID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid run id"))

		return
	}

	run, err := h.deps.Monitor.Run(r.Context(), runID)
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) { encodeRun(e, run) })
}

// ListProductResults returns the latest results of a product, newest first.
func (h Handler) ListProductResults(w http.ResponseWriter, r *http.Request) {
	productID, err := domain.ParseProductID(r.PathValue("id"))
	if err != nil {
		h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid product id"))

		return
	}

	var limit uint64
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.ParseUint(v, 10, 32)
		if err != nil {
			h.writeError(w, r, serrors.Wrap(serrors.ErrBadRequest, err, "invalid limit"))

			return
		}
	}

	results, err := h.deps.Monitor.ProductResults(r.Context(), productID, uint(limit))
	if err != nil {
		h.writeError(w, r, err)

		return
	}

	writeJSON(w, http.StatusOK, func(e *jx.Encoder) {
		e.Obj(func(e *jx.Encoder) {
			e.FieldStart("items")
			encodeResults(e, results)
		})
	})
}
