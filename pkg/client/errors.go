package client

import "errors"

var (
	// ErrDaemonNotRunning is returned when nothing listens on the socket.
	ErrDaemonNotRunning = errors.New("daemon not running")

	// ErrPermissionDenied is returned when the socket cannot be opened by the current user.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrNotFound is returned when the daemon answers 404.
	ErrNotFound = errors.New("404 not found")
)
