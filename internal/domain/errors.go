package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound        = errors.New("resource not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("access denied")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSessionExpired  = errors.New("session expired")
	ErrNoCredentials   = errors.New("no stored credentials")
	ErrOutOfStock      = errors.New("variant out of stock")
	ErrVariantNotFound = errors.New("variant not found")
	ErrLineNotFound    = errors.New("cart line not found")
)
