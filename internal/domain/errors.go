package domain

import "errors"

var (
	// ErrNotFound signals a missing resource.
	ErrNotFound = errors.New("not found")
	// ErrSnapshotNotLoaded signals that no corpus snapshot has been loaded yet.
	ErrSnapshotNotLoaded = errors.New("corpus snapshot not loaded")
	// ErrInvalidRequest signals a malformed query parameter.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrMalformedRecords signals a structurally invalid record sequence at load time.
	ErrMalformedRecords = errors.New("malformed corpus records")
)
