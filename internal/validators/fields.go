package validators

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field name constants passed to Validate to mark fields as required.
const (
	FieldTitle    = "title"
	FieldCompany  = "company"
	FieldPosition = "position"
	FieldColor    = "color"
)

// Length limits of free-text columns, in characters.
const (
	maxTitleLength       = 255
	maxSelectTitleLength = 100
	maxShortTextLength   = 255
	maxLongTextLength    = 20000
	maxLinkLength        = 2048
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

func checkText(field string, value string, limit int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s: %w", field, ErrBlankField)
	}
	return checkLength(field, value, limit)
}

func checkLength(field string, value string, limit int) error {
	if utf8.RuneCountInString(value) > limit {
		return fmt.Errorf("%s: %w (max %d)", field, ErrFieldTooLong, limit)
	}
	return nil
}

func checkLink(value string) error {
	if err := checkLength("link", value, maxLinkLength); err != nil {
		return err
	}

	u, err := url.ParseRequestURI(value)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("link: %w", ErrInvalidLink)
	}
	return nil
}

func checkReference(field string, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%s: %w", field, ErrInvalidReferenceID)
	}
	return nil
}

func required(field string) error {
	return fmt.Errorf("%s: %w", field, ErrRequiredField)
}
