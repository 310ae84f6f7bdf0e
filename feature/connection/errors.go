package connection

import "errors"

var (
	// ErrConnectionNotFound is returned when no catalog is stored for a connection.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrSnapshotNotFound is returned when a discovery snapshot does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")
	// ErrStoreUnavailable is returned by store-backed operations without a database.
	ErrStoreUnavailable = errors.New("configuration store unavailable")
	// ErrInvalidRequest wraps undecodable or invalid request input.
	ErrInvalidRequest = errors.New("invalid request")
)
