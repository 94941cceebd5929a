// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/canonical/glassworks-service/internal/errorx"
	"github.com/canonical/glassworks-service/internal/logging"
)

// Response is the envelope of every API reply.
type Response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Meta    *Pagination `json:"_meta,omitempty"`
}

type Pagination struct {
	Page int64 `json:"page"`
	Size int64 `json:"size"`
}

// ErrorResponse is the envelope of failed requests.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Kind    string `json:"kind"`
}

// StatusFromKind maps an error kind to its HTTP status.
func StatusFromKind(k errorx.Kind) int {
	switch k {
	case errorx.KindUnauthenticated:
		return http.StatusUnauthorized
	case errorx.KindForbidden:
		return http.StatusForbidden
	case errorx.KindValidation:
		return http.StatusBadRequest
	case errorx.KindConflict:
		return http.StatusConflict
	case errorx.KindNotFound:
		return http.StatusNotFound
	case errorx.KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Responder writes JSON replies and localized errors.
type Responder struct {
	translator TranslatorInterface
	validate   *validator.Validate
	logger     logging.LoggerInterface
}

func (rs *Responder) JSON(w http.ResponseWriter, status int, data interface{}) {
	rs.write(w, status, Response{Data: data, Message: http.StatusText(status), Status: status})
}

func (rs *Responder) Page(w http.ResponseWriter, data interface{}, page, size int64) {
	rs.write(w, http.StatusOK, Response{
		Data:    data,
		Message: http.StatusText(http.StatusOK),
		Status:  http.StatusOK,
		Meta:    &Pagination{Page: page, Size: size},
	})
}

// Error translates err for the caller language. Errors outside the taxonomy
// are logged and reported as internal.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	e, ok := errorx.As(err)
	if !ok {
		e = errorx.ErrInternal
	}

	status := StatusFromKind(e.Kind)
	if status == http.StatusInternalServerError {
		rs.logger.Errorf("%s %s failed: %v", r.Method, r.URL.Path, err)
	}

	lang := rs.translator.LanguageFromRequest(r)
	rs.write(w, status, ErrorResponse{
		Status:  status,
		Message: rs.translator.Translate(e.MessageID, lang, e.Data),
		Kind:    string(e.Kind),
	})
}

// Decode reads a JSON body into v and validates its struct tags. On failure
// the error reply is already written and false is returned.
func (rs *Responder) Decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		rs.Error(w, r, errorx.ErrInvalidInput.Wrap(err))
		return false
	}

	if err := rs.validate.Struct(v); err != nil {
		rs.Error(w, r, validationError(err))
		return false
	}

	return true
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errorx.ErrInvalidInput.Wrap(err)
	}

	f := verrs[0]
	data := map[string]interface{}{"field": f.Field()}
	switch f.Tag() {
	case "required", "required_if", "required_without":
		return errorx.ErrRequiredField.WithData(data).Wrap(err)
	case "gte", "min":
		if f.Param() == "0" {
			return errorx.ErrNegativeValue.WithData(data).Wrap(err)
		}
	}
	return errorx.ErrInvalidValue.WithData(data).Wrap(err)
}

func (rs *Responder) write(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		rs.logger.Errorf("failed to encode response: %v", err)
	}
}

// PageParams reads the page and size query parameters, invalid values read as 0.
func PageParams(r *http.Request) (int64, int64) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	size, _ := strconv.ParseInt(r.URL.Query().Get("size"), 10, 64)
	return page, size
}

func NewResponder(translator TranslatorInterface, logger logging.LoggerInterface) *Responder {
	return &Responder{
		translator: translator,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		logger:     logger,
	}
}
