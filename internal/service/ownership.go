// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/internal/store"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
)

// guard is the ownership check of one resource kind: how to load the
// resource and whose it is.
type guard[T any] struct {
	kind  models.ResourceKind
	load  func(ctx context.Context, repos *store.Repositories, id int64) (T, error)
	owner func(T) uuid.UUID
}

// authorize loads resource id through repos and checks that principal may
// act on it. Callers that write afterwards must pass the repositories of the
// same transaction.
func (g guard[T]) authorize(ctx context.Context, repos *store.Repositories, principal models.Principal, id int64) (T, error) {
	var zero T

	res, err := g.load(ctx, repos, id)
	if errors.Is(err, store.ErrRecordNotFound) {
		return zero, notFound(g.kind, id)
	}
	if err != nil {
		return zero, err
	}

	if !principal.CanAccess(g.owner(res)) {
		return zero, forbidden(g.kind, id)
	}

	return res, nil
}

var applicationGuard = guard[models.Application]{
	kind: models.KindApplication,
	load: func(ctx context.Context, repos *store.Repositories, id int64) (models.Application, error) {
		return repos.Applications.Get(ctx, id)
	},
	owner: func(a models.Application) uuid.UUID { return a.UserID },
}

var folderGuard = guard[models.Folder]{
	kind: models.KindFolder,
	load: func(ctx context.Context, repos *store.Repositories, id int64) (models.Folder, error) {
		return repos.Folders.Get(ctx, id)
	},
	owner: func(f models.Folder) uuid.UUID { return f.UserID },
}

var selectGuards = map[models.SelectKind]guard[models.Select]{
	models.SelectTag:      newSelectGuard(models.SelectTag),
	models.SelectStatus:   newSelectGuard(models.SelectStatus),
	models.SelectPriority: newSelectGuard(models.SelectPriority),
}

func newSelectGuard(kind models.SelectKind) guard[models.Select] {
	return guard[models.Select]{
		kind: kind.Resource(),
		load: func(ctx context.Context, repos *store.Repositories, id int64) (models.Select, error) {
			return repos.Selects(kind).Get(ctx, id)
		},
		owner: func(s models.Select) uuid.UUID { return s.UserID },
	}
}

// ownedCounter is implemented by every repository an application may
// reference.
type ownedCounter interface {
	CountOwned(ctx context.Context, owner uuid.UUID, ids []int64) (int64, error)
}

// referenceOrder fixes the order references are checked in, so the reported
// kind does not depend on map iteration.
var referenceOrder = []models.ResourceKind{
	models.KindFolder,
	models.KindStatus,
	models.KindPriority,
	models.KindTag,
}

func referenceRepository(repos *store.Repositories, kind models.ResourceKind) ownedCounter {
	switch kind {
	case models.KindFolder:
		return repos.Folders
	case models.KindStatus:
		return repos.Statuses
	case models.KindPriority:
		return repos.Priorities
	case models.KindTag:
		return repos.Tags
	default:
		return nil
	}
}

// checkReferences verifies that every referenced folder and lookup entry
// exists and belongs to owner. An entity of another owner is reported as not
// found, the same as a missing one.
func checkReferences(ctx context.Context, repos *store.Repositories, owner uuid.UUID, refs map[models.ResourceKind][]int64) error {
	for _, kind := range referenceOrder {
		ids := distinct(refs[kind])
		if len(ids) == 0 {
			continue
		}

		n, err := referenceRepository(repos, kind).CountOwned(ctx, owner, ids)
		if err != nil {
			return fmt.Errorf("checking %s references: %w", kind, err)
		}
		if n != int64(len(ids)) {
			var id int64
			if len(ids) == 1 {
				id = ids[0]
			}
			return notFound(kind, id)
		}
	}

	return nil
}

// storeError translates a repository failure into the service vocabulary.
func storeError(kind models.ResourceKind, id int64, err error) error {
	var resErr *ResourceError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &resErr):
		return err
	case errors.Is(err, store.ErrRecordNotFound):
		return notFound(kind, id)
	case errors.Is(err, store.ErrConstraintViolation):
		return &ResourceError{Kind: kind, ID: id, Err: ErrConstraintViolation}
	case errors.Is(err, search.ErrInvalidFilterValue):
		return fmt.Errorf("%w: %w", ErrValidationFailed, err)
	default:
		return err
	}
}

func distinct(ids []int64) []int64 {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
