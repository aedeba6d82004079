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

// folderRepository is the SQL implementation of [FolderRepository].
type folderRepository struct {
	ex     *executor
	schema search.Schema
}

// NewFolderRepository constructs a [FolderRepository] running on ex.
func NewFolderRepository(ex *executor) FolderRepository {
	return &folderRepository{ex: ex, schema: search.Folders}
}

// Create inserts folder and returns it with ID and timestamps set.
func (r *folderRepository) Create(ctx context.Context, folder models.Folder) (models.Folder, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	folder.CreatedAt, folder.UpdatedAt = now, now

	id, err := r.ex.insertReturningID(ctx, r.ex.builder.Insert(r.schema.Table).
		Columns(folderColumns[1:]...).
		Values(folder.UserID, folder.Title, folder.Position, folder.CreatedAt, folder.UpdatedAt))
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.Create").
			Str("user_id", folder.UserID.String()).
			Msg("failed to insert folder")
		return models.Folder{}, err
	}

	folder.ID = id
	return folder, nil
}

// Get loads one folder. A missing row yields [ErrRecordNotFound].
func (r *folderRepository) Get(ctx context.Context, id int64) (models.Folder, error) {
	query, args, err := selectByID(r.ex.builder, r.schema, folderColumns, id).ToSql()
	if err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	folder, err := scanFolder(r.ex.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Folder{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.Get").
			Int64("folder_id", id).
			Msg("failed to load folder")
		return models.Folder{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return folder, nil
}

// Update writes the fields present in input and bumps updated_at.
// [ErrRecordNotFound] is returned when no row has id.
func (r *folderRepository) Update(ctx context.Context, id int64, input models.FolderInput) error {
	changes := map[string]any{"updated_at": time.Now().UTC()}
	if input.Title != nil {
		changes["title"] = *input.Title
	}
	if input.Position != nil {
		changes["position"] = *input.Position
	}

	affected, err := r.ex.exec(ctx, r.ex.builder.Update(r.schema.Table).SetMap(changes).Where(sq.Eq{"id": id}))
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.Update").
			Int64("folder_id", id).
			Msg("failed to update folder")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Delete unfiles every application of the folder, then removes the folder.
// Run it inside a transaction so both statements apply together.
func (r *folderRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	unfiled, err := r.ex.exec(ctx, r.ex.builder.Update("applications").
		Set("folder_id", nil).
		Where(sq.Eq{"folder_id": id}))
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.Delete").
			Int64("folder_id", id).
			Msg("failed to unfile applications")
		return err
	}

	affected, err := r.ex.exec(ctx, r.ex.builder.Delete(r.schema.Table).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.Delete").
			Int64("folder_id", id).
			Msg("failed to delete folder")
		return err
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	log.Debug().
		Int64("folder_id", id).
		Int64("unfiled_applications", unfiled).
		Msg("folder deleted")

	return nil
}

// Search pages through the owner's folders, matching free text on the title.
func (r *folderRepository) Search(ctx context.Context, owner uuid.UUID, params models.SearchParams) (models.Page[models.Folder], error) {
	return runSearch(ctx, r.ex, r.schema, folderColumns, owner, params, scanFolder)
}

// CountOwned implements [FolderRepository].
func (r *folderRepository) CountOwned(ctx context.Context, owner uuid.UUID, ids []int64) (int64, error) {
	return r.ex.countOwned(ctx, r.schema, owner, ids)
}
