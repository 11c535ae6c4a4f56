package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrUserNotFound    = errors.New("user not found")
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("forbidden")
)

var (
	ErrAlreadyBooked = errors.New("session already booked")
	ErrEmailTaken    = errors.New("email is already registered")
)

var (
	ErrValidation = errors.New("validation error")
	ErrUpstream   = errors.New("upstream request failed")
)
