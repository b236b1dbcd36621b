package fiscalyear

import "cloudeng.io/errors"

var (
	// ErrInvalidStart is returned when a fiscal-year start is not a valid
	// month and day. February 29 is rejected since it does not recur yearly.
	ErrInvalidStart = errors.New("invalid fiscal year start")

	// ErrInvalidCatalog is wrapped by every violation reported by NewCatalog.
	ErrInvalidCatalog = errors.New("invalid fiscal year catalog")
)
