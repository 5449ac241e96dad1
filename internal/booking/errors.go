package booking

import "errors"

var (
	// ErrInvalidRoomCount is returned when a booking asks for fewer
	// than MinRoomsPerBooking or more than MaxRoomsPerBooking rooms.
	ErrInvalidRoomCount = errors.New("number of rooms must be between 1 and 5")

	// ErrInvalidPercentage is returned when an occupancy percentage is
	// outside [0, 100].
	ErrInvalidPercentage = errors.New("occupancy percentage must be between 0 and 100")

	// ErrInsufficientRooms is returned when fewer rooms are available
	// than requested. The wrapped message carries both counts.
	ErrInsufficientRooms = errors.New("not enough rooms available")
)
