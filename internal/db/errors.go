package db

import "errors"

var (
	// ErrSchema marks a failed schema migration; the store cannot be used
	ErrSchema = errors.New("schema migration failed")
	// ErrNotFound is returned by explicit lookups only. Mutations on missing
	// ids are silent no-ops.
	ErrNotFound = errors.New("item not found")
	// ErrInvalidDate is returned when a date is not in YYYY-MM-DD form
	ErrInvalidDate = errors.New("invalid date")
	// ErrInvalidType is returned for an unknown item type
	ErrInvalidType = errors.New("invalid item type")
)
