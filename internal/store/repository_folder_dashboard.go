// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/search"
	"github.com/MKhiriev/go-job-keeper/models"
	"github.com/google/uuid"
)

// RecentItemsPerFolder is how many applications a dashboard row carries.
const RecentItemsPerFolder = 5

// folderBucket is the aggregate of one folder, or of the unfiled applications.
type folderBucket struct {
	items []models.Application
	count int64
}

// Dashboard returns one page of the owner's folders, each with its
// application count and its most recent applications (highest id first).
//
// Folders are ordered by position, then id. The unfiled bucket is not a
// folder row: when the owner has at least one application without a folder
// it is prepended to Items of every page with a nil Folder, and Total counts
// it as one extra entry. When it is empty it is left out entirely.
//
// The whole page costs three queries: the folder count, the folder page and
// one windowed query computing counts and recent items for the page's folders
// and the unfiled bucket together (plus the batched lookups of the recent
// applications' related entities).
func (r *folderRepository) Dashboard(ctx context.Context, owner uuid.UUID, page, perPage int) (models.Page[models.FolderSummary], error) {
	log := logger.FromContext(ctx)

	page, perPage = r.ex.limits.Normalize(page, perPage)

	ownerPred := sq.Eq{r.schema.Column(r.schema.OwnerColumn): owner}
	folderTotal, err := r.ex.count(ctx, r.schema.Table, ownerPred)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.Dashboard").
			Str("user_id", owner.String()).
			Msg("failed to count folders")
		return models.Page[models.FolderSummary]{}, err
	}

	folders := []models.Folder{}
	if offset := search.Offset(page, perPage); offset < uint64(folderTotal) {
		query, args, err := r.ex.builder.Select(r.schema.Columns(folderColumns...)...).
			From(r.schema.Table).
			Where(ownerPred).
			OrderBy(r.schema.Column("position")+" ASC", r.schema.Column("id")+" ASC").
			Limit(uint64(perPage)).
			Offset(offset).
			ToSql()
		if err != nil {
			return models.Page[models.FolderSummary]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		folders, err = queryAll(ctx, r.ex, query, args, scanFolder)
		if err != nil {
			log.Err(err).
				Str("func", "folderRepository.Dashboard").
				Str("user_id", owner.String()).
				Int("page", page).
				Msg("failed to load folder page")
			return models.Page[models.FolderSummary]{}, err
		}
	}

	folderIDs := make([]int64, 0, len(folders))
	for _, f := range folders {
		folderIDs = append(folderIDs, f.ID)
	}

	unfiled, byFolder, err := r.recentByFolder(ctx, owner, folderIDs)
	if err != nil {
		log.Err(err).
			Str("func", "folderRepository.Dashboard").
			Str("user_id", owner.String()).
			Msg("failed to aggregate folder applications")
		return models.Page[models.FolderSummary]{}, err
	}

	result := models.Page[models.FolderSummary]{
		Items:   make([]models.FolderSummary, 0, len(folders)+1),
		Total:   folderTotal,
		Page:    page,
		PerPage: perPage,
	}

	if unfiled.count > 0 {
		result.Items = append(result.Items, models.FolderSummary{
			RecentItems: unfiled.items,
			ItemCount:   unfiled.count,
		})
		result.Total++
	}

	for i := range folders {
		bucket := byFolder[folders[i].ID]
		if bucket.items == nil {
			bucket.items = []models.Application{}
		}
		result.Items = append(result.Items, models.FolderSummary{
			Folder:      &folders[i],
			RecentItems: bucket.items,
			ItemCount:   bucket.count,
		})
	}

	return result, nil
}

// recentByFolder computes, in one windowed query, the application count and
// the most recent applications of every folder in folderIDs and of the
// owner's unfiled applications.
func (r *folderRepository) recentByFolder(ctx context.Context, owner uuid.UUID, folderIDs []int64) (folderBucket, map[int64]folderBucket, error) {
	apps := search.Applications

	inner := r.ex.builder.Select(append(apps.Columns(applicationColumns...),
		"ROW_NUMBER() OVER (PARTITION BY applications.folder_id ORDER BY applications.id DESC) AS rn",
		"COUNT(*) OVER (PARTITION BY applications.folder_id) AS folder_total",
	)...).
		From(apps.Table).
		Where(sq.And{
			sq.Eq{apps.Column(apps.OwnerColumn): owner},
			sq.Or{
				sq.Eq{apps.Column("folder_id"): folderIDs},
				sq.Eq{apps.Column("folder_id"): nil},
			},
		})

	outerColumns := make([]string, 0, len(applicationColumns)+2)
	for _, c := range applicationColumns {
		outerColumns = append(outerColumns, "recent."+c)
	}
	outerColumns = append(outerColumns, "recent.rn", "recent.folder_total")

	query, args, err := r.ex.builder.Select(outerColumns...).
		FromSelect(inner, "recent").
		Where(sq.LtOrEq{"recent.rn": RecentItemsPerFolder}).
		OrderBy("recent.folder_id ASC", "recent.id DESC").
		ToSql()
	if err != nil {
		return folderBucket{}, nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	type rankedApplication struct {
		app   models.Application
		total int64
	}

	ranked, err := queryAll(ctx, r.ex, query, args, func(row rowScanner) (rankedApplication, error) {
		var rn, total int64
		app, err := scanApplication(row, &rn, &total)
		return rankedApplication{app: app, total: total}, err
	})
	if err != nil {
		return folderBucket{}, nil, err
	}

	recent := make([]models.Application, 0, len(ranked))
	for _, ra := range ranked {
		recent = append(recent, ra.app)
	}
	if err = hydrateApplications(ctx, r.ex, recent); err != nil {
		return folderBucket{}, nil, err
	}

	unfiled := folderBucket{items: []models.Application{}}
	byFolder := make(map[int64]folderBucket, len(folderIDs))
	for i, app := range recent {
		if app.FolderID == nil {
			unfiled.items = append(unfiled.items, app)
			unfiled.count = ranked[i].total
			continue
		}

		b := byFolder[*app.FolderID]
		b.items = append(b.items, app)
		b.count = ranked[i].total
		byFolder[*app.FolderID] = b
	}

	return unfiled, byFolder, nil
}
