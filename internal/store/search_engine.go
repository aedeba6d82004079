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

// runSearch executes one paginated search over schema's table.
//
// The total is counted with the predicate alone, before any ordering or
// slicing, so it is the same for every page of the same request. The page
// query adds the joins the sort key needs, the resolved ORDER BY (always
// ending in the primary key) and LIMIT/OFFSET. When the requested page starts
// past the last match the page query is skipped and Items is empty.
func runSearch[T any](
	ctx context.Context,
	ex *executor,
	schema search.Schema,
	columns []string,
	owner uuid.UUID,
	params models.SearchParams,
	scan func(rowScanner) (T, error),
) (models.Page[T], error) {
	log := logger.FromContext(ctx)

	page, perPage := ex.limits.Normalize(params.Page, params.PerPage)
	result := models.Page[T]{Items: []T{}, Page: page, PerPage: perPage}

	pred, err := search.BuildPredicate(schema, owner, params.Query, params.Filters)
	if err != nil {
		return models.Page[T]{}, err
	}

	total, err := ex.count(ctx, schema.Table, pred)
	if err != nil {
		log.Err(err).
			Str("func", "store.runSearch").
			Str("kind", string(schema.Kind)).
			Msg("failed to count matching rows")
		return models.Page[T]{}, err
	}
	result.Total = total

	offset := search.Offset(page, perPage)
	if offset >= uint64(total) {
		return result, nil
	}

	order := search.ResolveSort(schema, params.SortKey, params.SortOrder)
	query, args, err := order.Apply(
		ex.builder.Select(schema.Columns(columns...)...).
			From(schema.Table).
			Where(pred),
	).
		Limit(uint64(perPage)).
		Offset(offset).
		ToSql()
	if err != nil {
		return models.Page[T]{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	items, err := queryAll(ctx, ex, query, args, scan)
	if err != nil {
		log.Err(err).
			Str("func", "store.runSearch").
			Str("kind", string(schema.Kind)).
			Str("sort_key", order.Key).
			Int("page", page).
			Msg("failed to fetch page")
		return models.Page[T]{}, err
	}
	result.Items = items

	return result, nil
}

// count runs "SELECT COUNT(*) FROM table WHERE pred".
func (ex *executor) count(ctx context.Context, table string, pred sq.Sqlizer) (int64, error) {
	query, args, err := ex.builder.Select("COUNT(*)").From(table).Where(pred).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = ex.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// queryAll runs query and scans every row with scan.
func queryAll[T any](ctx context.Context, ex *executor, query string, args []any, scan func(rowScanner) (T, error)) ([]T, error) {
	rows, err := ex.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]T, 0, 16)
	for rows.Next() {
		item, scanErr := scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// exec builds and runs a DML statement, mapping constraint failures to
// [ErrConstraintViolation].
func (ex *executor) exec(ctx context.Context, stmt sq.Sqlizer) (int64, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := ex.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, ex.db.wrapError(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected, nil
}

// insertReturningID runs an INSERT ... RETURNING id.
func (ex *executor) insertReturningID(ctx context.Context, stmt sq.InsertBuilder) (int64, error) {
	query, args, err := stmt.Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = ex.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, ex.db.wrapError(err, ErrExecutingStatement)
	}
	return id, nil
}

// countOwned runs [countOwnedQuery].
func (ex *executor) countOwned(ctx context.Context, schema search.Schema, owner uuid.UUID, ids []int64) (int64, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := countOwnedQuery(ex.builder, schema, owner, ids).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int64
	if err = ex.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}
