package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-job-keeper/models"
)

// ResourceValidator checks the create/update payloads of applications,
// folders and lookup entries.
//
// Every field present in the payload is validated. The field names passed to
// Validate must additionally be present, which is how create calls demand
// their mandatory fields while partial updates pass none.
type ResourceValidator struct {
}

func NewResourceValidator() Validator {
	return &ResourceValidator{}
}

func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ApplicationInput:
		return v.validateApplication(ctx, value, fields...)
	case *models.ApplicationInput:
		return v.validateApplication(ctx, *value, fields...)

	case models.FolderInput:
		return v.validateFolder(ctx, value, fields...)
	case *models.FolderInput:
		return v.validateFolder(ctx, *value, fields...)

	case models.SelectInput:
		return v.validateSelect(ctx, value, fields...)
	case *models.SelectInput:
		return v.validateSelect(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateApplication(ctx context.Context, in models.ApplicationInput, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if in.Title == nil {
				return required(f)
			}
		case FieldCompany:
			if in.Company == nil {
				return required(f)
			}
		default:
			return ErrUnknownField
		}
	}

	if in.Title != nil {
		if err := checkText(FieldTitle, *in.Title, maxTitleLength); err != nil {
			return err
		}
	}
	if in.Company != nil {
		if err := checkText(FieldCompany, *in.Company, maxTitleLength); err != nil {
			return err
		}
	}
	if in.Position != nil && *in.Position < 0 {
		return ErrNegativePosition
	}

	if link, ok := in.Link.Get(); ok {
		if err := checkLink(link); err != nil {
			return err
		}
	}
	if role, ok := in.Role.Get(); ok {
		if err := checkLength("role", role, maxShortTextLength); err != nil {
			return err
		}
	}
	if salary, ok := in.Salary.Get(); ok {
		if err := checkLength("salary", salary, maxShortTextLength); err != nil {
			return err
		}
	}
	if description, ok := in.Description.Get(); ok {
		if err := checkLength("description", description, maxLongTextLength); err != nil {
			return err
		}
	}
	if notes, ok := in.Notes.Get(); ok {
		if err := checkLength("notes", notes, maxLongTextLength); err != nil {
			return err
		}
	}

	if timeline, ok := in.Timeline.Get(); ok {
		if err := validateTimeline(timeline); err != nil {
			return err
		}
	}

	if id, ok := in.StatusID.Get(); ok {
		if err := checkReference("status_id", id); err != nil {
			return err
		}
	}
	if id, ok := in.PriorityID.Get(); ok {
		if err := checkReference("priority_id", id); err != nil {
			return err
		}
	}
	if id, ok := in.FolderID.Get(); ok {
		if err := checkReference("folder_id", id); err != nil {
			return err
		}
	}
	if in.TagIDs != nil {
		for i, id := range *in.TagIDs {
			if err := checkReference(fmt.Sprintf("tag_ids[%d]", i), id); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateTimeline(timeline models.Timeline) error {
	for i, entry := range timeline {
		if strings.TrimSpace(entry.Title) == "" {
			return fmt.Errorf("%w at index %d", ErrEmptyTimelineTitle, i)
		}
	}
	if err := timeline.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeline, err)
	}
	return nil
}

func (v *ResourceValidator) validateFolder(ctx context.Context, in models.FolderInput, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if in.Title == nil {
				return required(f)
			}
		case FieldPosition:
			if in.Position == nil {
				return required(f)
			}
		default:
			return ErrUnknownField
		}
	}

	if in.Title != nil {
		if err := checkText(FieldTitle, *in.Title, maxTitleLength); err != nil {
			return err
		}
	}
	if in.Position != nil && *in.Position < 0 {
		return ErrNegativePosition
	}

	return nil
}

func (v *ResourceValidator) validateSelect(ctx context.Context, in models.SelectInput, fields ...string) error {
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if in.Title == nil {
				return required(f)
			}
		case FieldColor:
			if _, ok := in.Color.Get(); !ok {
				return required(f)
			}
		default:
			return ErrUnknownField
		}
	}

	if in.Title != nil {
		if err := checkText(FieldTitle, *in.Title, maxSelectTitleLength); err != nil {
			return err
		}
	}
	if color, ok := in.Color.Get(); ok && !colorPattern.MatchString(color) {
		return fmt.Errorf("%s: %w", FieldColor, ErrInvalidColor)
	}

	return nil
}
