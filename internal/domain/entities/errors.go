package entities

import "errors"

var (
	// ErrConfig means required configuration (e.g. the admin token) is missing.
	ErrConfig = errors.New("configuration error")
	// ErrAuth means the server rejected the credential.
	ErrAuth = errors.New("authentication failed")
	// ErrTransport means the server could not be reached or kept failing.
	ErrTransport = errors.New("transport error")
	// ErrNotFound means the requested project or branch does not exist.
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse means the server answered with something we cannot read.
	ErrMalformedResponse = errors.New("malformed response")
)
