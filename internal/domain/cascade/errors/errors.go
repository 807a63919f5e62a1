package errors

import "errors"

var (
	// ErrDuplicateSubscriber is returned when a user already owns a subscriber
	ErrDuplicateSubscriber = errors.New("subscriber already exists for user")

	// ErrChannelRowExists is returned by the repository when the
	// (subscriber, channel) pair is already materialized; the engine
	// treats it as idempotent convergence and never surfaces it
	ErrChannelRowExists = errors.New("subscriber service channel already exists")

	// ErrInvalidEntityID is returned when an event carries a zero entity id
	ErrInvalidEntityID = errors.New("invalid entity ID")

	// ErrDatabaseOperation is returned when a storage operation fails
	ErrDatabaseOperation = errors.New("database operation failed")
)
