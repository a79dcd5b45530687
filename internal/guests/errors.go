package guests

import "errors"

var (
	ErrGuestNotFound = errors.New("Guest not found")
	ErrInvalidStatus = errors.New("Invalid RSVP status")
)
