// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-job-keeper/internal/logger"
	"github.com/MKhiriev/go-job-keeper/internal/search"
)

// maxTxAttempts bounds how often WithinTx reruns a transaction whose failure
// was classified as [Retryable].
const maxTxAttempts = 3

// storage is the default implementation of [Storage].
type storage struct {
	db     *DB
	limits search.Limits
	pooled *Repositories
}

// NewStorage constructs a [Storage] over db. limits bound the page size of
// every search the repositories run.
func NewStorage(db *DB, limits search.Limits) Storage {
	db.logger.Debug().Str("dialect", db.dialect.String()).Msg("creating storage")

	return &storage{
		db:     db,
		limits: limits,
		pooled: newRepositories(newExecutor(db, db.DB, limits)),
	}
}

func (s *storage) Repositories() *Repositories {
	return s.pooled
}

// WithinTx runs fn in a transaction and retries the whole transaction when
// the database reports a transient failure (serialization failure, deadlock,
// busy database).
func (s *storage) WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= maxTxAttempts; attempt++ {
		err = withTx(ctx, s.db.DB, nil, func(tx *sql.Tx) error {
			return fn(ctx, newRepositories(newExecutor(s.db, tx, s.limits)))
		})
		if err == nil || !s.retryable(err) || attempt == maxTxAttempts {
			return err
		}

		log.Warn().Err(err).
			Str("func", "storage.WithinTx").
			Int("attempt", attempt).
			Msg("transient database error, retrying transaction")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * 50 * time.Millisecond):
		}
	}

	return err
}

func (s *storage) retryable(err error) bool {
	return s.db.errorClassificator != nil && s.db.errorClassificator.Classify(err) == Retryable
}

// withTx begins a transaction, runs fn and commits. The transaction is rolled
// back when fn fails or panics; a panic is re-raised after the rollback.
func withTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
