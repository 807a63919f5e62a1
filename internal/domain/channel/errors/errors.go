package errors

import "errors"

var (
	// ErrChannelNotFound is returned when no row exists for a
	// (subscriber, service channel) pair
	ErrChannelNotFound = errors.New("subscriber service channel not found")

	// ErrChannelExists is returned when a service channel name is taken
	ErrChannelExists = errors.New("service channel already exists")

	// ErrInvalidToken is returned when verification is attempted with a
	// wrong or stale token
	ErrInvalidToken = errors.New("invalid verification token")

	// ErrNotVerified is returned when activation is attempted before the
	// channel identity has been verified
	ErrNotVerified = errors.New("channel is not verified")

	// ErrInvalidChannelName is returned when a channel name is empty
	ErrInvalidChannelName = errors.New("invalid channel name")

	// ErrDatabaseOperation is returned when a storage operation fails
	ErrDatabaseOperation = errors.New("database operation failed")
)
