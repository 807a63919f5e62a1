package errors

import "errors"

var (
	// ErrInvalidUsername is returned when the username is empty after
	// normalization
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidEmail is returned when the email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidPassword is returned when the password is too short
	ErrInvalidPassword = errors.New("invalid password")

	// ErrUserExists is returned when the username or email is taken
	ErrUserExists = errors.New("user already exists")

	// ErrDatabaseOperation is returned when a storage operation fails
	ErrDatabaseOperation = errors.New("database operation failed")
)
