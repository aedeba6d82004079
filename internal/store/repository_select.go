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

// selectRepository is the SQL implementation of [SelectRepository]. One
// instance serves one lookup kind; the kind picks the table and the way
// entries are detached from applications on delete.
type selectRepository struct {
	ex     *executor
	kind   models.SelectKind
	schema search.Schema
}

// NewSelectRepository constructs a [SelectRepository] for kind running on ex.
func NewSelectRepository(ex *executor, kind models.SelectKind) SelectRepository {
	return &selectRepository{ex: ex, kind: kind, schema: search.Selects(kind)}
}

// Kind returns the lookup kind this repository serves.
func (r *selectRepository) Kind() models.SelectKind {
	return r.kind
}

// Create inserts item into the kind's table and returns it with ID, Kind
// and timestamps set.
func (r *selectRepository) Create(ctx context.Context, item models.Select) (models.Select, error) {
	now := time.Now().UTC()
	item.Kind = r.kind
	item.CreatedAt, item.UpdatedAt = now, now

	id, err := r.ex.insertReturningID(ctx, r.ex.builder.Insert(r.schema.Table).
		Columns(selectColumns[1:]...).
		Values(item.UserID, item.Title, item.Color, item.CreatedAt, item.UpdatedAt))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "selectRepository.Create").
			Str("kind", r.kind.String()).
			Str("user_id", item.UserID.String()).
			Msg("failed to insert lookup entry")
		return models.Select{}, err
	}

	item.ID = id
	return item, nil
}

// Get loads one entry of the repository's kind. A missing row yields
// [ErrRecordNotFound].
func (r *selectRepository) Get(ctx context.Context, id int64) (models.Select, error) {
	query, args, err := selectByID(r.ex.builder, r.schema, selectColumns, id).ToSql()
	if err != nil {
		return models.Select{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanSelect(r.ex.QueryRowContext(ctx, query, args...), r.kind)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Select{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "selectRepository.Get").
			Str("kind", r.kind.String()).
			Int64("id", id).
			Msg("failed to load lookup entry")
		return models.Select{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return item, nil
}

// Update writes the title and color present in input and bumps updated_at.
// [ErrRecordNotFound] is returned when no row has id.
func (r *selectRepository) Update(ctx context.Context, id int64, input models.SelectInput) error {
	changes := map[string]any{"updated_at": time.Now().UTC()}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	setOptional(changes, "color", input.Color)

	affected, err := r.ex.exec(ctx, r.ex.builder.Update(r.schema.Table).SetMap(changes).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "selectRepository.Update").
			Str("kind", r.kind.String()).
			Int64("id", id).
			Msg("failed to update lookup entry")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete detaches the entry from every application (tag associations are
// removed, status/priority references are nulled) and removes it. The
// applications themselves are kept.
func (r *selectRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.ex.exec(ctx, r.detach(id)); err != nil {
		log.Err(err).
			Str("func", "selectRepository.Delete").
			Str("kind", r.kind.String()).
			Int64("id", id).
			Msg("failed to detach lookup entry from applications")
		return err
	}

	affected, err := r.ex.exec(ctx, r.ex.builder.Delete(r.schema.Table).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).
			Str("func", "selectRepository.Delete").
			Str("kind", r.kind.String()).
			Int64("id", id).
			Msg("failed to delete lookup entry")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

func (r *selectRepository) detach(id int64) sq.Sqlizer {
	switch r.kind {
	case models.SelectStatus:
		return r.ex.builder.Update("applications").Set("status_id", nil).Where(sq.Eq{"status_id": id})
	case models.SelectPriority:
		return r.ex.builder.Update("applications").Set("priority_id", nil).Where(sq.Eq{"priority_id": id})
	default:
		return r.ex.builder.Delete("application_tags").Where(sq.Eq{"tag_id": id})
	}
}

// Search pages through the owner's entries of this kind.
func (r *selectRepository) Search(ctx context.Context, owner uuid.UUID, params models.SearchParams) (models.Page[models.Select], error) {
	return runSearch(ctx, r.ex, r.schema, selectColumns, owner, params, selectScanner(r.kind))
}

// CountOwned implements [SelectRepository].
func (r *selectRepository) CountOwned(ctx context.Context, owner uuid.UUID, ids []int64) (int64, error) {
	return r.ex.countOwned(ctx, r.schema, owner, ids)
}
