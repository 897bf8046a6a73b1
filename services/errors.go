package services

import "errors"

var (
	ErrRoomUnavailable = errors.New("room is not available for the selected dates")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrNoHotel         = errors.New("no hotel found for this owner")
)

// ValidationError marks input that is rejected before any store access.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
