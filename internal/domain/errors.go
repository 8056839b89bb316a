package domain

import "errors"

var (
	ErrInvalidRange       = errors.New("start date must not be after end date")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomUnavailable    = errors.New("room is already booked for these dates")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrAlreadyCancelled   = errors.New("booking is already cancelled")
	ErrBookingImmutable   = errors.New("booking can no longer be changed")
	ErrInvalidRoom        = errors.New("invalid room")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username is already taken")
	ErrWeakPassword       = errors.New("password is too weak")
	ErrSessionNotFound    = errors.New("session not found")
	ErrForbidden          = errors.New("operation not permitted")
)
