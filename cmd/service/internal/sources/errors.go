package sources

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("log source not found")
	ErrNotConfigured = errors.New("sourceRef lookup not configured")
)
