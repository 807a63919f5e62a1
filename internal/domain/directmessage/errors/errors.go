package errors

import "errors"

var (
	// ErrUnauthorizedSender is returned when a direct message is denied.
	// The denial is still written to the audit log before it surfaces.
	ErrUnauthorizedSender = errors.New("sender is not authorized to message receiver")

	// ErrSenderAlreadyGranted is returned when the (receiver, sender)
	// whitelist entry already exists
	ErrSenderAlreadyGranted = errors.New("sender already granted for receiver")

	// ErrSelfGrant is returned when a subscriber tries to whitelist itself
	ErrSelfGrant = errors.New("receiver and sender must differ")

	// ErrDatabaseOperation is returned when a storage operation fails
	ErrDatabaseOperation = errors.New("database operation failed")
)
