package store

import "errors"

// ErrNotFound is returned when an event id has no record.
var ErrNotFound = errors.New("event not found")

// ErrEmptyTitle rejects events saved without a display title.
var ErrEmptyTitle = errors.New("event title is empty")
