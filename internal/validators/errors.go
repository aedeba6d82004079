package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField      = errors.New("field is required")
	ErrBlankField         = errors.New("field must not be blank")
	ErrFieldTooLong       = errors.New("field is too long")
	ErrNegativePosition   = errors.New("position must not be negative")
	ErrInvalidLink        = errors.New("link must be an absolute http(s) URL")
	ErrInvalidReferenceID = errors.New("referenced id must be positive")
	ErrInvalidColor       = errors.New("color must be a hex value like #ff8800")
	ErrInvalidTimeline    = errors.New("invalid timeline")
	ErrEmptyTimelineTitle = errors.New("timeline entry title is required")
)
