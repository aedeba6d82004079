package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-job-keeper/internal/app"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/service"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/internal/utils"
	"github.com/MKhiriev/go-job-keeper/models"
)

// Error classes written in [models.ErrorResponse.Error].
const (
	classBadRequest          = "bad_request"
	classUnauthorized        = "unauthorized"
	classForbidden           = "forbidden"
	classNotFound            = "not_found"
	classConstraintViolation = "constraint_violation"
	classValidationFailed    = "validation_failed"
	classTooManyRequests     = "too_many_requests"
	classInternal            = "internal"
)

type errorClass struct {
	target error
	status int
	class  string
}

// errorClasses is matched in order; the first target err wraps wins.
var errorClasses = []errorClass{
	{service.ErrNotFound, http.StatusNotFound, classNotFound},
	{service.ErrUnknownSelectKind, http.StatusNotFound, classNotFound},
	{ErrUnknownKind, http.StatusNotFound, classNotFound},
	{service.ErrForbidden, http.StatusForbidden, classForbidden},
	{service.ErrConstraintViolation, http.StatusConflict, classConstraintViolation},
	{store.ErrEmailAlreadyExists, http.StatusConflict, classConstraintViolation},
	{service.ErrValidationFailed, http.StatusUnprocessableEntity, classValidationFailed},

	{service.ErrInvalidDataProvided, http.StatusBadRequest, classBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest, classBadRequest},
	{ErrInvalidID, http.StatusBadRequest, classBadRequest},
	{ErrInvalidQueryParam, http.StatusBadRequest, classBadRequest},

	{service.ErrWrongPassword, http.StatusUnauthorized, classUnauthorized},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, classUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, classUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, classUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, classUnauthorized},
	{ErrNoPrincipal, http.StatusUnauthorized, classUnauthorized},

	{ErrTooManyRequests, http.StatusTooManyRequests, classTooManyRequests},
}

// classify returns the response status and error body for err. Failures
// without a class become 500 and never expose their message.
func classify(err error) (int, models.ErrorResponse) {
	status, class := http.StatusInternalServerError, classInternal
	for _, c := range errorClasses {
		if errors.Is(err, c.target) {
			status, class = c.status, c.class
			break
		}
	}

	body := models.ErrorResponse{Error: class}
	if status == http.StatusInternalServerError {
		return status, body
	}

	body.Message = err.Error()

	var resErr *service.ResourceError
	if errors.As(err, &resErr) {
		body.Kind = resErr.Kind
	}

	// a failed login must not tell which of email or password was wrong
	if status == http.StatusUnauthorized &&
		(errors.Is(err, service.ErrWrongPassword) || errors.Is(err, store.ErrNoUserWasFound)) {
		body.Message = app.MsgInvalidCredentials
	}

	return status, body
}

// writeError logs err and writes its classified JSON body.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, body := classify(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	utils.WriteError(w, status, body)
}
