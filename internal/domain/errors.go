package domain

import "errors"

// Sentinel errors shared across packages. Wrap them with %w and check with
// errors.Is.
var (
	ErrPageNotFound   = errors.New("page state not found or expired")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownVariant = errors.New("unknown component variant")
	ErrInvalidCatalog = errors.New("invalid content catalog")
)
