package storage

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned by Commit when a record read by the unit of work was
// modified concurrently, or a write condition no longer holds. The whole unit
// of work can be retried from a fresh read.
var ErrConflict = errors.New("concurrent modification")

// ErrTxClosed is returned when a unit of work is used after Commit or Rollback.
var ErrTxClosed = errors.New("unit of work already closed")
