package errors

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrNoProfiles       = errors.New("no profile subscribed to event")
	ErrUnsupportedEvent = errors.New("unsupported event")
	ErrInvalidSettings  = errors.New("invalid settings")
	ErrInvalidEnvelope  = errors.New("invalid event envelope")
)
