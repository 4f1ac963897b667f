package repository

import "errors"

// ErrDuplicateID is returned when a record with the same id already exists.
var ErrDuplicateID = errors.New("duplicate id")
