package inventory

// Status is the occupancy state of a room.
type Status string

// Room occupancy states. A room is BOOKED iff it carries a guest ID;
// the Store enforces this pairing on every transition.
const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

// Building topology constants. The topology is fixed: floors 1-9 carry
// ten rooms each, floor 10 carries seven.
const (
	// LowerFloors is the number of full-width floors (1-9).
	LowerFloors = 9

	// RoomsPerLowerFloor is the room count on each of floors 1-9.
	RoomsPerLowerFloor = 10

	// TopFloor is the number of the short top floor.
	TopFloor = 10

	// RoomsOnTopFloor is the room count on floor 10.
	RoomsOnTopFloor = 7

	// TotalRooms is the fixed inventory size.
	TotalRooms = LowerFloors*RoomsPerLowerFloor + RoomsOnTopFloor
)

// Room is one physical hotel room.
//
// Floor and Position are immutable coordinates; Status and GuestID are
// the only mutable fields, and only the Store mutates them.
type Room struct {
	RoomNumber int    `json:"room_number"`
	Floor      int    `json:"floor"`
	Position   int    `json:"position"` // zero-based index from the stairwell
	Status     Status `json:"status"`
	GuestID    string `json:"guest_id,omitempty"`
}

// RoomNumberFor derives the room number from floor coordinates.
// Room numbers are deterministic: floor*100 + position + 1.
func RoomNumberFor(floor, position int) int {
	return floor*100 + position + 1
}

// Stats is an occupancy summary. Available + Booked always equals Total.
type Stats struct {
	Total     int `json:"total_rooms"`
	Booked    int `json:"booked_rooms"`
	Available int `json:"available_rooms"`
}
