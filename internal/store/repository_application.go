// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
)

// applicationRepository is the SQL implementation of [ApplicationRepository]
// over the "applications" and "application_tags" tables.
//
// Every read resolves Status, Priority and Tags with batched IN queries, so a
// page of N applications costs at most three extra round trips regardless of N.
type applicationRepository struct {
	ex     *executor
	schema search.Schema
}

// NewApplicationRepository constructs an [ApplicationRepository] running on ex.
func NewApplicationRepository(ex *executor) ApplicationRepository {
	return &applicationRepository{ex: ex, schema: search.Applications}
}

// Create inserts app and returns its id. Tags are stored separately with
// [applicationRepository.SetTags].
func (r *applicationRepository) Create(ctx context.Context, app models.Application) (int64, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	stmt := r.ex.builder.Insert(r.schema.Table).
		Columns(applicationColumns[1:]...).
		Values(
			app.UserID, app.Title, app.Company, app.ClosingDate,
			app.Link, app.Description, app.Notes, app.Role, app.Salary,
			app.Position, app.Starred, app.Timeline,
			app.StatusID, app.PriorityID, app.FolderID,
			now, now,
		)

	id, err := r.ex.insertReturningID(ctx, stmt)
	if err != nil {
		log.Err(err).
			Str("func", "applicationRepository.Create").
			Str("user_id", app.UserID.String()).
			Msg("failed to insert application")
		return 0, err
	}

	return id, nil
}

// Get loads one application with its related entities resolved.
func (r *applicationRepository) Get(ctx context.Context, id int64) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := selectByID(r.ex.builder, r.schema, applicationColumns, id).ToSql()
	if err != nil {
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	app, err := scanApplication(r.ex.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Application{}, ErrRecordNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "applicationRepository.Get").
			Int64("application_id", id).
			Msg("failed to load application")
		return models.Application{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	apps := []models.Application{app}
	if err = r.hydrate(ctx, apps); err != nil {
		return models.Application{}, err
	}

	return apps[0], nil
}

// Update writes only the fields present in input; an explicit null clears a
// nullable column. updated_at is always bumped. Tags are ignored here.
func (r *applicationRepository) Update(ctx context.Context, id int64, input models.ApplicationInput) error {
	log := logger.FromContext(ctx)

	affected, err := r.ex.exec(ctx, r.ex.builder.Update(r.schema.Table).
		SetMap(applicationChanges(input)).
		Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).
			Str("func", "applicationRepository.Update").
			Int64("application_id", id).
			Msg("failed to update application")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// applicationChanges maps the present fields of input to column values.
func applicationChanges(input models.ApplicationInput) map[string]any {
	changes := map[string]any{"updated_at": time.Now().UTC()}

	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Company != nil {
		changes["company"] = *input.Company
	}
	if input.Position != nil {
		changes["position"] = *input.Position
	}
	if input.Starred != nil {
		changes["starred"] = *input.Starred
	}

	setOptional(changes, "closing_date", input.ClosingDate)
	setOptional(changes, "link", input.Link)
	setOptional(changes, "description", input.Description)
	setOptional(changes, "notes", input.Notes)
	setOptional(changes, "role", input.Role)
	setOptional(changes, "salary", input.Salary)
	setOptional(changes, "timeline", input.Timeline)
	setOptional(changes, "status_id", input.StatusID)
	setOptional(changes, "priority_id", input.PriorityID)
	setOptional(changes, "folder_id", input.FolderID)

	return changes
}

func setOptional[T any](changes map[string]any, column string, o models.Optional[T]) {
	if !o.Set {
		return
	}
	if v, ok := o.Get(); ok {
		changes[column] = v
		return
	}
	changes[column] = nil
}

// SetTags replaces the tag set of the application.
func (r *applicationRepository) SetTags(ctx context.Context, id int64, tagIDs []int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.ex.exec(ctx, r.ex.builder.Delete("application_tags").Where(sq.Eq{"application_id": id})); err != nil {
		log.Err(err).
			Str("func", "applicationRepository.SetTags").
			Int64("application_id", id).
			Msg("failed to clear application tags")
		return err
	}

	tagIDs = uniqueIDs(tagIDs)
	if len(tagIDs) == 0 {
		return nil
	}

	insert := r.ex.builder.Insert("application_tags").Columns("application_id", "tag_id")
	for _, tagID := range tagIDs {
		insert = insert.Values(id, tagID)
	}

	if _, err := r.ex.exec(ctx, insert); err != nil {
		log.Err(err).
			Str("func", "applicationRepository.SetTags").
			Int64("application_id", id).
			Int("tags", len(tagIDs)).
			Msg("failed to store application tags")
		return err
	}

	return nil
}

// Delete removes the application and its tag associations.
func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.ex.exec(ctx, r.ex.builder.Delete("application_tags").Where(sq.Eq{"application_id": id})); err != nil {
		log.Err(err).
			Str("func", "applicationRepository.Delete").
			Int64("application_id", id).
			Msg("failed to delete application tags")
		return err
	}

	affected, err := r.ex.exec(ctx, r.ex.builder.Delete(r.schema.Table).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).
			Str("func", "applicationRepository.Delete").
			Int64("application_id", id).
			Msg("failed to delete application")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Search runs a paginated search over the owner's applications.
func (r *applicationRepository) Search(ctx context.Context, owner uuid.UUID, params models.SearchParams) (models.Page[models.Application], error) {
	page, err := runSearch(ctx, r.ex, r.schema, applicationColumns, owner, params, func(row rowScanner) (models.Application, error) {
		return scanApplication(row)
	})
	if err != nil {
		return models.Page[models.Application]{}, err
	}

	if err = r.hydrate(ctx, page.Items); err != nil {
		return models.Page[models.Application]{}, err
	}

	return page, nil
}

// hydrate resolves Status, Priority and Tags of apps in place.
func (r *applicationRepository) hydrate(ctx context.Context, apps []models.Application) error {
	return hydrateApplications(ctx, r.ex, apps)
}

func hydrateApplications(ctx context.Context, ex *executor, apps []models.Application) error {
	if len(apps) == 0 {
		return nil
	}

	statusIDs := make([]int64, 0, len(apps))
	priorityIDs := make([]int64, 0, len(apps))
	appIDs := make([]int64, 0, len(apps))
	for _, a := range apps {
		appIDs = append(appIDs, a.ID)
		if a.StatusID != nil {
			statusIDs = append(statusIDs, *a.StatusID)
		}
		if a.PriorityID != nil {
			priorityIDs = append(priorityIDs, *a.PriorityID)
		}
	}

	statuses, err := loadSelects(ctx, ex, models.SelectStatus, statusIDs)
	if err != nil {
		return err
	}
	priorities, err := loadSelects(ctx, ex, models.SelectPriority, priorityIDs)
	if err != nil {
		return err
	}
	tags, err := loadTags(ctx, ex, appIDs)
	if err != nil {
		return err
	}

	for i := range apps {
		a := &apps[i]
		if a.StatusID != nil {
			if s, ok := statuses[*a.StatusID]; ok {
				a.Status = &s
			}
		}
		if a.PriorityID != nil {
			if p, ok := priorities[*a.PriorityID]; ok {
				a.Priority = &p
			}
		}
		if t, ok := tags[a.ID]; ok {
			a.Tags = t
		}
	}

	return nil
}

// loadSelects fetches the lookup entries of kind with the given ids.
func loadSelects(ctx context.Context, ex *executor, kind models.SelectKind, ids []int64) (map[int64]models.Select, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return nil, nil
	}

	schema := search.Selects(kind)
	query, args, err := ex.builder.Select(schema.Columns(selectColumns...)...).
		From(schema.Table).
		Where(sq.Eq{schema.Column("id"): ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := queryAll(ctx, ex, query, args, selectScanner(kind))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.loadSelects").
			Str("kind", kind.String()).
			Msg("failed to load related lookups")
		return nil, err
	}

	byID := make(map[int64]models.Select, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return byID, nil
}

// loadTags fetches the tags of every application in appIDs, ordered by title.
func loadTags(ctx context.Context, ex *executor, appIDs []int64) (map[int64][]models.Select, error) {
	schema := search.Selects(models.SelectTag)
	columns := append([]string{"application_tags.application_id"}, schema.Columns(selectColumns...)...)

	query, args, err := ex.builder.Select(columns...).
		From("application_tags").
		Join("tags ON tags.id = application_tags.tag_id").
		Where(sq.Eq{"application_tags.application_id": appIDs}).
		OrderBy("tags.title ASC", "tags.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	type appTag struct {
		appID int64
		tag   models.Select
	}

	rows, err := queryAll(ctx, ex, query, args, func(row rowScanner) (appTag, error) {
		var at appTag
		tag := models.Select{Kind: models.SelectTag}
		err := row.Scan(&at.appID, &tag.ID, &tag.UserID, &tag.Title, &tag.Color, &tag.CreatedAt, &tag.UpdatedAt)
		at.tag = tag
		return at, err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "store.loadTags").
			Int("applications", len(appIDs)).
			Msg("failed to load application tags")
		return nil, err
	}

	byApp := make(map[int64][]models.Select, len(appIDs))
	for _, at := range rows {
		byApp[at.appID] = append(byApp[at.appID], at.tag)
	}
	return byApp, nil
}
