package v1handler

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"pricewatch/pkg/logger"
	"pricewatch/pkg/serrors"
	"strings"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// CheckParams are the inputs of an ad-hoc price check.
type CheckParams struct {
	ProductURL  string
	CSSSelector string
}

// checkParams reads productUrl and cssSelector from the query string and
// then from a form or JSON body. Query values win.
func checkParams(r *http.Request) (CheckParams, error) {
	q := r.URL.Query()
	p := CheckParams{
		ProductURL:  strings.TrimSpace(q.Get("productUrl")),
		CSSSelector: strings.TrimSpace(q.Get("cssSelector")),
	}
	if p.ProductURL != "" && p.CSSSelector != "" {
		return p, nil
	}

	var body CheckParams
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			return p, serrors.Wrap(serrors.ErrBadRequest, err, "could not read body")
		}
		if body, err = decodeCheckParams(raw); err != nil {
			return p, serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
		}
	case "application/x-www-form-urlencoded", "multipart/form-data":
		if err := r.ParseMultipartForm(maxBodyBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			return p, serrors.Wrap(serrors.ErrBadRequest, err, "invalid form body")
		}
		body.ProductURL = strings.TrimSpace(r.PostFormValue("productUrl"))
		body.CSSSelector = strings.TrimSpace(r.PostFormValue("cssSelector"))
	}

	if p.ProductURL == "" {
		p.ProductURL = body.ProductURL
	}
	if p.CSSSelector == "" {
		p.CSSSelector = body.CSSSelector
	}

	return p, nil
}

func decodeCheckParams(raw []byte) (CheckParams, error) {
	var p CheckParams
	if len(strings.TrimSpace(string(raw))) == 0 {
		return p, nil
	}

	err := jx.DecodeBytes(raw).ObjBytes(func(d *jx.Decoder, key []byte) error {
		var (
			dst *string
			err error
		)
		switch string(key) {
		case "productUrl":
			dst = &p.ProductURL
		case "cssSelector":
			dst = &p.CSSSelector
		default:
			return d.Skip()
		}
		if d.Next() == jx.Null {
			return d.Null()
		}
		*dst, err = d.Str()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = strings.TrimSpace(*dst)

		return nil
	})

	return p, err //nolint: wrapcheck
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, text)
}

// Check loads productUrl and returns the price shown at cssSelector as plain
// text. Only POST is allowed. Invalid input is rejected before any page is
// loaded; fetch and parse failures are reported as 500 with their message.
func (h Handler) Check(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeText(w, http.StatusMethodNotAllowed, "method not allowed")

		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	p, err := checkParams(r)
	if err != nil {
		writeText(w, http.StatusBadRequest, err.Error())

		return
	}
	if p.ProductURL == "" || p.CSSSelector == "" {
		writeText(w, http.StatusBadRequest, "productUrl and cssSelector are required")

		return
	}

	ctx := logger.WithFields(r.Context(), zap.String("productUrl", p.ProductURL))
	price, err := h.deps.Monitor.CheckURL(ctx, p.ProductURL, p.CSSSelector)
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			writeText(w, http.StatusBadRequest, err.Error())

			return
		}

		logger.Warn(ctx, "ad-hoc check failed", zap.Error(err))
		writeText(w, http.StatusInternalServerError, err.Error())

		return
	}

	writeText(w, http.StatusOK, price.String())
}
