package reservation

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrConflict                = errors.New("reservation conflicts with an existing one")
	ErrCapacityExceeded        = errors.New("party size exceeds room capacity")
	ErrInviteCodeTaken         = errors.New("invite code already in use")
	ErrNotFound                = errors.New("reservation not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
