package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/go-resty/resty/v2"
)

// APIError is a non-2xx answer of the API. It unwraps to the sentinel that
// matches its status code, so callers can use errors.Is.
type APIError struct {
	StatusCode int
	Body       models.ErrorResponse

	sentinel error
}

func (e *APIError) Error() string {
	msg := e.Body.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Body.Kind != "" {
		return fmt.Sprintf("%s (%s): %s", e.sentinel, e.Body.Kind, msg)
	}
	return fmt.Sprintf("%s: %s", e.sentinel, msg)
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &APIError{StatusCode: resp.StatusCode()}

	raw := resp.Body()
	if err := json.Unmarshal(raw, &apiErr.Body); err != nil {
		// proxies and older servers answer with plain text
		apiErr.Body = models.ErrorResponse{Message: strings.TrimSpace(string(raw))}
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		apiErr.sentinel = ErrBadRequest
	case http.StatusUnauthorized:
		apiErr.sentinel = ErrUnauthorized
	case http.StatusForbidden:
		apiErr.sentinel = ErrForbidden
	case http.StatusNotFound:
		apiErr.sentinel = ErrNotFound
	case http.StatusConflict:
		apiErr.sentinel = ErrConflict
	case http.StatusUnprocessableEntity:
		apiErr.sentinel = ErrValidationFailed
	case http.StatusTooManyRequests:
		apiErr.sentinel = ErrTooManyRequests
	case http.StatusInternalServerError:
		apiErr.sentinel = ErrInternalServerError
	default:
		apiErr.sentinel = fmt.Errorf("http %d", resp.StatusCode())
	}

	return apiErr
}
