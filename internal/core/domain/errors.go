package domain

import "errors"

var (
	ErrInvalidInput       = errors.New("missing or malformed input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrClientNotFound     = errors.New("client not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrAdminNotFound      = errors.New("admin account not found")
	ErrVersionConflict    = errors.New("project was modified concurrently")
	ErrInvalidTrackStatus = errors.New("invalid track status")
)
