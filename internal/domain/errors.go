package domain

import "errors"

var (
	ErrOriginNotFound   = errors.New("origin marker not found")
	ErrDuplicateOrigin  = errors.New("origin marker appears more than once")
	ErrNoDeliveryPoints = errors.New("no delivery points found")
	ErrDuplicateLabel   = errors.New("delivery label appears more than once")
	ErrTooManyPoints    = errors.New("too many delivery points for exhaustive search")
)
