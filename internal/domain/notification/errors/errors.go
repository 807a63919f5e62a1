package errors

import "errors"

var (
	// ErrInvalidNotificationType is returned when publish is requested
	// with a type outside in-app, sms, mail, push
	ErrInvalidNotificationType = errors.New("invalid notification type")

	// ErrListNotFound is returned when the publisher list does not exist
	ErrListNotFound = errors.New("publisher list not found")

	// ErrSubscriptionExists is returned when the subscriber already joined
	// the list
	ErrSubscriptionExists = errors.New("subscription already exists")

	// ErrDatabaseOperation is returned when a storage operation fails
	ErrDatabaseOperation = errors.New("database operation failed")
)
