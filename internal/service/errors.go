package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrPushInFlight is returned when a push is requested while a previous
	// push for the same collection has not finished. Only one push attempt
	// per entity set may be in flight at a time.
	ErrPushInFlight = errors.New("push already in flight")
)
