package travel

import (
	"sort"

	"github.com/roomline/roomline-core/internal/inventory"
)

// Cost weights in minutes. Horizontal movement costs one minute per room,
// vertical movement two minutes per floor via the stairwell at position 0.
const (
	minutesPerFloor = 2
)

// Between returns the travel time in minutes between two rooms.
//
// On the same floor the cost is the horizontal distance between
// positions. Across floors the walk detours via the stairwell, so each
// room contributes its own full distance to position 0 on top of the
// vertical cost. The detour intentionally double-counts horizontal
// distance relative to a straight-line metric; it models how the
// building is actually walked.
func Between(a, b inventory.Room) int {
	if a.Floor == b.Floor {
		return abs(a.Position - b.Position)
	}
	vertical := abs(a.Floor-b.Floor) * minutesPerFloor
	horizontal := a.Position + b.Position
	return vertical + horizontal
}

// FromReception returns the travel time in minutes from the reception
// (a virtual point at floor 0, position 0) to the room: two minutes per
// floor climbed plus the walk from the stairwell to the room.
func FromReception(room inventory.Room) int {
	return room.Floor*minutesPerFloor + room.Position
}

// Total returns the travel time for a set of rooms, defined as the time
// between the two extreme rooms when sorted by (floor, position). Sets
// of zero or one room cost nothing.
//
// Intermediate rooms are deliberately ignored; this is a known
// simplification, not a full multi-stop itinerary cost.
func Total(rooms []inventory.Room) int {
	if len(rooms) <= 1 {
		return 0
	}

	sorted := make([]inventory.Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Floor != sorted[j].Floor {
			return sorted[i].Floor < sorted[j].Floor
		}
		return sorted[i].Position < sorted[j].Position
	})

	return Between(sorted[0], sorted[len(sorted)-1])
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
