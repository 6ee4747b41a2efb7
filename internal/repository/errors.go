// Package repository defines the persistence contracts of the expo domain
// and the sentinel errors shared by every implementation.  Higher layers
// translate these sentinels into client facing error kinds: ErrNotFound
// becomes a lookup failure and ErrDuplicate a uniqueness conflict.
package repository

import "errors"

// ErrNotFound is returned when a document addressed by id (or by a unique
// key) does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update would violate a unique
// index (email, boothNumber, exhibitor userId, bookmark pair, session slot).
var ErrDuplicate = errors.New("duplicate key")
