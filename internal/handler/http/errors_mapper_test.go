package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/internal/service"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantClass  string
		wantKind   models.ResourceKind
	}{
		{"resource not found", &service.ResourceError{Kind: models.KindFolder, ID: 1, Err: service.ErrNotFound}, http.StatusNotFound, "not_found", models.KindFolder},
		{"wrapped resource forbidden", fmt.Errorf("update: %w", &service.ResourceError{Kind: models.KindApplication, ID: 2, Err: service.ErrForbidden}), http.StatusForbidden, "forbidden", models.KindApplication},
		{"lookup constraint", &service.ResourceError{Kind: models.KindPriority, Err: service.ErrConstraintViolation}, http.StatusConflict, "constraint_violation", models.KindPriority},
		{"unknown select kind", service.ErrUnknownSelectKind, http.StatusNotFound, "not_found", ""},
		{"invalid filter", fmt.Errorf("%w: %w", service.ErrValidationFailed, search.ErrInvalidFilterValue), http.StatusUnprocessableEntity, "validation_failed", ""},
		{"invalid data", service.ErrInvalidDataProvided, http.StatusBadRequest, "bad_request", ""},
		{"email taken", store.ErrEmailAlreadyExists, http.StatusConflict, "constraint_violation", ""},
		{"expired token", service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "unauthorized", ""},
		{"rate limited", ErrTooManyRequests, http.StatusTooManyRequests, "too_many_requests", ""},
		{"query failure", fmt.Errorf("%w: timeout", store.ErrExecutingQuery), http.StatusInternalServerError, "internal", ""},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classify(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantClass, body.Error)
			assert.Equal(t, tt.wantKind, body.Kind)
			if status == http.StatusInternalServerError {
				assert.Empty(t, body.Message)
			} else {
				assert.Equal(t, tt.err.Error(), body.Message)
			}
		})
	}
}
