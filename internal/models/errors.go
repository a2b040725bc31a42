package models

import "errors"

// Sentinel errors shared by every layer. Wrap them with fmt.Errorf("%w: ...")
// so callers can classify failures with errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("concurrent update conflict")
)
