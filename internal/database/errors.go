// Capstone - College Recommendations and Entity Resolution
// Copyright 2026 bpaksoy
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/bpaksoy/capstone

package database

import (
	"database/sql"
	"errors"
	"io"

	"github.com/bpaksoy/capstone/internal/logging"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// closeWithLog closes a resource and logs any error
func closeWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("Failed to close resource")
	}
}

// closeQuietly closes a resource and explicitly ignores any error
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// rollbacker is satisfied by *sql.Tx.
type rollbacker interface {
	Rollback() error
}

// rollbackOnError rolls tx back when err is set. sql.ErrTxDone means the
// transaction already ended, which a failed Commit leaves behind.
func rollbackOnError(tx rollbacker, err error) {
	if err == nil {
		return
	}
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
	}
}
