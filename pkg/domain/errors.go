package domain

import "errors"

var (
	ErrInvalidImage      = errors.New("invalid image payload")
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
	ErrForbidden         = errors.New("webhook secret mismatch")
	// ErrDeliveryRejected marks an outbound message the platform answered with ok:false.
	ErrDeliveryRejected = errors.New("delivery rejected")
)
