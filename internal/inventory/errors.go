package inventory

import "errors"

// ErrRoomNotFound is returned when a room number does not exist in the
// fixed topology.
var ErrRoomNotFound = errors.New("room not found")
