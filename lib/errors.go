package lib

import "errors"

var (
	ErrSnapshotNotFound = errors.New("snapshot not found")
	ErrStoreNotInit     = errors.New("snapshot store not initialized")
	ErrUnknownKind      = errors.New("unknown response kind")
	ErrNoPayload        = errors.New("message has no payload")
)
