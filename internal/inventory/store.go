package inventory

import "fmt"

// Store holds the in-memory room inventory.
//
// The topology (97 rooms, their floors and positions) is built once by
// NewStore and never changes; only per-room occupancy mutates afterwards.
// All accessors return copies, so callers can never mutate the store
// through a returned Room.
//
// # Thread Safety
//
// Store is NOT safe for concurrent use. It is owned by a single
// booking.Service, which serialises every read and write behind one
// mutex so that an allocation and its commit happen in one critical
// section.
type Store struct {
	rooms map[int]*Room
}

// NewStore builds a fresh inventory with every room available.
//
// Floors 1-9 get positions 0-9, floor 10 gets positions 0-6, for a fixed
// total of 97 rooms.
func NewStore() *Store {
	s := &Store{
		rooms: make(map[int]*Room, TotalRooms),
	}

	for floor := 1; floor <= LowerFloors; floor++ {
		for pos := 0; pos < RoomsPerLowerFloor; pos++ {
			s.add(floor, pos)
		}
	}
	for pos := 0; pos < RoomsOnTopFloor; pos++ {
		s.add(TopFloor, pos)
	}

	return s
}

// add creates one available room at the given coordinates.
func (s *Store) add(floor, position int) {
	num := RoomNumberFor(floor, position)
	s.rooms[num] = &Room{
		RoomNumber: num,
		Floor:      floor,
		Position:   position,
		Status:     StatusAvailable,
	}
}

// Get returns a copy of the room with the given number.
// Returns ErrRoomNotFound if the number is not part of the topology.
func (s *Store) Get(roomNumber int) (Room, error) {
	room, ok := s.rooms[roomNumber]
	if !ok {
		return Room{}, fmt.Errorf("room %d: %w", roomNumber, ErrRoomNotFound)
	}
	return *room, nil
}

// ListAvailable returns copies of all rooms whose status is available.
// The order is unspecified; callers must sort if order matters.
func (s *Store) ListAvailable() []Room {
	available := make([]Room, 0, len(s.rooms))
	for _, room := range s.rooms {
		if room.Status == StatusAvailable {
			available = append(available, *room)
		}
	}
	return available
}

// Snapshot returns a copy of every room keyed by room number.
func (s *Store) Snapshot() map[int]Room {
	snapshot := make(map[int]Room, len(s.rooms))
	for num, room := range s.rooms {
		snapshot[num] = *room
	}
	return snapshot
}

// Book marks a room as booked for the given guest.
// Returns ErrRoomNotFound if the room number is unknown.
func (s *Store) Book(roomNumber int, guestID string) error {
	room, ok := s.rooms[roomNumber]
	if !ok {
		return fmt.Errorf("room %d: %w", roomNumber, ErrRoomNotFound)
	}
	room.Status = StatusBooked
	room.GuestID = guestID
	return nil
}

// Release marks a room as available and clears its guest ID.
// Returns ErrRoomNotFound if the room number is unknown.
func (s *Store) Release(roomNumber int) error {
	room, ok := s.rooms[roomNumber]
	if !ok {
		return fmt.Errorf("room %d: %w", roomNumber, ErrRoomNotFound)
	}
	room.Status = StatusAvailable
	room.GuestID = ""
	return nil
}

// ReleaseAll marks every room available and clears all guest IDs.
func (s *Store) ReleaseAll() {
	for _, room := range s.rooms {
		room.Status = StatusAvailable
		room.GuestID = ""
	}
}

// Statistics returns the current occupancy summary.
func (s *Store) Statistics() Stats {
	booked := 0
	for _, room := range s.rooms {
		if room.Status == StatusBooked {
			booked++
		}
	}
	return Stats{
		Total:     len(s.rooms),
		Booked:    booked,
		Available: len(s.rooms) - booked,
	}
}
