package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-job-keeper/internal/validators"
	"github.com/MKhiriev/go-job-keeper/models"
)

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidationFailed, err)
}

// ApplicationValidationService rejects malformed application payloads before
// they reach the wrapped service.
type ApplicationValidationService struct {
	inner     ApplicationService
	validator validators.Validator
}

func NewApplicationValidationService() ApplicationServiceWrapper {
	return &ApplicationValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *ApplicationValidationService) Create(ctx context.Context, principal models.Principal, input models.ApplicationInput) (models.Application, error) {
	if err := v.validator.Validate(ctx, input, validators.FieldTitle, validators.FieldCompany); err != nil {
		return models.Application{}, validationError(err)
	}

	return v.inner.Create(ctx, principal, input)
}

func (v *ApplicationValidationService) Get(ctx context.Context, principal models.Principal, id int64) (models.Application, error) {
	return v.inner.Get(ctx, principal, id)
}

func (v *ApplicationValidationService) Update(ctx context.Context, principal models.Principal, id int64, input models.ApplicationInput) (models.Application, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Application{}, validationError(err)
	}

	return v.inner.Update(ctx, principal, id, input)
}

func (v *ApplicationValidationService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return v.inner.Delete(ctx, principal, id)
}

func (v *ApplicationValidationService) Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.Page[models.Application], error) {
	return v.inner.Search(ctx, principal, params)
}

func (v *ApplicationValidationService) Wrap(wrapper ApplicationService) ApplicationService {
	v.inner = wrapper
	return v
}

type FolderValidationService struct {
	inner     FolderService
	validator validators.Validator
}

func NewFolderValidationService() FolderServiceWrapper {
	return &FolderValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *FolderValidationService) Create(ctx context.Context, principal models.Principal, input models.FolderInput) (models.Folder, error) {
	if err := v.validator.Validate(ctx, input, validators.FieldTitle); err != nil {
		return models.Folder{}, validationError(err)
	}

	return v.inner.Create(ctx, principal, input)
}

func (v *FolderValidationService) Get(ctx context.Context, principal models.Principal, id int64) (models.Folder, error) {
	return v.inner.Get(ctx, principal, id)
}

func (v *FolderValidationService) Update(ctx context.Context, principal models.Principal, id int64, input models.FolderInput) (models.Folder, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Folder{}, validationError(err)
	}

	return v.inner.Update(ctx, principal, id, input)
}

func (v *FolderValidationService) Delete(ctx context.Context, principal models.Principal, id int64) error {
	return v.inner.Delete(ctx, principal, id)
}

func (v *FolderValidationService) Search(ctx context.Context, principal models.Principal, params models.SearchParams) (models.Page[models.Folder], error) {
	return v.inner.Search(ctx, principal, params)
}

func (v *FolderValidationService) Dashboard(ctx context.Context, principal models.Principal, page, perPage int) (models.Page[models.FolderSummary], error) {
	return v.inner.Dashboard(ctx, principal, page, perPage)
}

func (v *FolderValidationService) Applications(ctx context.Context, principal models.Principal, id int64, params models.SearchParams) (models.Page[models.Application], error) {
	return v.inner.Applications(ctx, principal, id, params)
}

func (v *FolderValidationService) Wrap(wrapper FolderService) FolderService {
	v.inner = wrapper
	return v
}

type SelectValidationService struct {
	inner     SelectService
	validator validators.Validator
}

func NewSelectValidationService() SelectServiceWrapper {
	return &SelectValidationService{
		validator: validators.NewResourceValidator(),
	}
}

func (v *SelectValidationService) Create(ctx context.Context, principal models.Principal, kind models.SelectKind, input models.SelectInput) (models.Select, error) {
	if err := v.validator.Validate(ctx, input, validators.FieldTitle); err != nil {
		return models.Select{}, validationError(err)
	}

	return v.inner.Create(ctx, principal, kind, input)
}

func (v *SelectValidationService) Get(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64) (models.Select, error) {
	return v.inner.Get(ctx, principal, kind, id)
}

func (v *SelectValidationService) Update(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64, input models.SelectInput) (models.Select, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.Select{}, validationError(err)
	}

	return v.inner.Update(ctx, principal, kind, id, input)
}

func (v *SelectValidationService) Delete(ctx context.Context, principal models.Principal, kind models.SelectKind, id int64) error {
	return v.inner.Delete(ctx, principal, kind, id)
}

func (v *SelectValidationService) Search(ctx context.Context, principal models.Principal, kind models.SelectKind, params models.SearchParams) (models.Page[models.Select], error) {
	return v.inner.Search(ctx, principal, kind, params)
}

func (v *SelectValidationService) Catalog(ctx context.Context, principal models.Principal) (models.Catalog, error) {
	return v.inner.Catalog(ctx, principal)
}

func (v *SelectValidationService) Wrap(wrapper SelectService) SelectService {
	v.inner = wrapper
	return v
}
