package service

import (
	"net"
	"net/url"

	"habitar/internal/errors"
)

// AsIdentityError extracts a classified identity failure from an error chain.
func AsIdentityError(err error) (*IdentityError, bool) {
	var identityErr *IdentityError
	if errors.As(err, &identityErr) {
		return identityErr, true
	}

	return nil, false
}

// HasIdentityCode reports whether err carries the given identity error code.
func HasIdentityCode(err error, code string) bool {
	identityErr, ok := AsIdentityError(err)

	return ok && identityErr.Code == code
}

// IsConnectivity reports whether err is a transport-level failure (DNS,
// refused connection, timeout) rather than a response from the service.
func IsConnectivity(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr)
}
