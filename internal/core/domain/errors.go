package domain

import "errors"

// Ledger errors. They are local, recoverable conditions returned to the
// caller; a rejected operation leaves stored data untouched, except for
// the expiry transition reported by ErrExpired.
var (
	ErrNotFound       = errors.New("Campaign not found")
	ErrInactive       = errors.New("Campaign is not active")
	ErrExpired        = errors.New("Campaign has ended")
	ErrStillActive    = errors.New("Campaign is still active")
	ErrAmountOverflow = errors.New("contribution overflows campaign total")
)
