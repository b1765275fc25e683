// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by snapshot storages to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSnapshotNotFound is returned by Read when no snapshot has ever been
	// written for the key.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidKey is returned when a storage key is empty, too long or
	// contains characters outside [a-z0-9].
	ErrInvalidKey = errors.New("invalid storage key")

	// ErrStorageIO wraps any failure of the underlying medium. After a failed
	// Write the previously committed snapshot is still intact and readable.
	ErrStorageIO = errors.New("snapshot storage I/O failure")
)

// Low-level database operation errors. These are wrapped together with
// [ErrStorageIO] by the SQL storage when a statement fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing the upsert fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a snapshot row fails.
	ErrScanningRow = errors.New("failed to scan snapshot row")
)
