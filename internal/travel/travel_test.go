package travel

import (
	"testing"

	"github.com/roomline/roomline-core/internal/inventory"
)

// room is a shorthand constructor for test fixtures.
func room(floor, position int) inventory.Room {
	return inventory.Room{
		RoomNumber: inventory.RoomNumberFor(floor, position),
		Floor:      floor,
		Position:   position,
		Status:     inventory.StatusAvailable,
	}
}

// allRooms returns every room in the fixed topology.
func allRooms() []inventory.Room {
	var rooms []inventory.Room
	for floor := 1; floor <= inventory.LowerFloors; floor++ {
		for pos := 0; pos < inventory.RoomsPerLowerFloor; pos++ {
			rooms = append(rooms, room(floor, pos))
		}
	}
	for pos := 0; pos < inventory.RoomsOnTopFloor; pos++ {
		rooms = append(rooms, room(inventory.TopFloor, pos))
	}
	return rooms
}

func TestBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b inventory.Room
		want int
	}{
		{"same room", room(1, 0), room(1, 0), 0},
		{"same floor adjacent", room(1, 0), room(1, 1), 1},
		{"same floor far apart", room(3, 2), room(3, 9), 7},
		{"adjacent floors at stairwell", room(1, 0), room(2, 0), 2},
		{"adjacent floors offset", room(1, 3), room(2, 4), 2 + 3 + 4},
		{"many floors apart", room(1, 9), room(10, 6), 18 + 9 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Between(tt.a, tt.b); got != tt.want {
				t.Errorf("Between() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBetween_SymmetricOverAllPairs(t *testing.T) {
	rooms := allRooms()
	for i, a := range rooms {
		for _, b := range rooms[i:] {
			if ab, ba := Between(a, b), Between(b, a); ab != ba {
				t.Fatalf("Between(%d, %d) = %d but Between(%d, %d) = %d",
					a.RoomNumber, b.RoomNumber, ab, b.RoomNumber, a.RoomNumber, ba)
			}
		}
	}
}

func TestBetween_ZeroForIdenticalRoom(t *testing.T) {
	for _, r := range allRooms() {
		if got := Between(r, r); got != 0 {
			t.Fatalf("Between(%d, %d) = %d, want 0", r.RoomNumber, r.RoomNumber, got)
		}
	}
}

func TestFromReception(t *testing.T) {
	tests := []struct {
		name string
		r    inventory.Room
		want int
	}{
		{"first room first floor", room(1, 0), 2},
		{"end of first floor", room(1, 9), 11},
		{"mid building", room(5, 4), 14},
		{"top corner", room(10, 6), 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromReception(tt.r); got != tt.want {
				t.Errorf("FromReception(%d) = %d, want %d", tt.r.RoomNumber, got, tt.want)
			}
		})
	}
}

func TestTotal(t *testing.T) {
	tests := []struct {
		name  string
		rooms []inventory.Room
		want  int
	}{
		{"empty set", nil, 0},
		{"single room", []inventory.Room{room(4, 2)}, 0},
		{"consecutive block", []inventory.Room{room(1, 0), room(1, 1), room(1, 2), room(1, 3)}, 3},
		{"same floor gap ignored by extremes", []inventory.Room{room(2, 1), room(2, 5), room(2, 8)}, 7},
		{"cross floor extremes only", []inventory.Room{room(1, 9), room(2, 0), room(3, 1)}, 4 + 9 + 1},
		{"unsorted input", []inventory.Room{room(3, 1), room(1, 9), room(2, 0)}, 4 + 9 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Total(tt.rooms); got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTotal_DoesNotReorderInput(t *testing.T) {
	rooms := []inventory.Room{room(3, 1), room(1, 9), room(2, 0)}
	Total(rooms)
	if rooms[0].RoomNumber != inventory.RoomNumberFor(3, 1) {
		t.Error("Total() must not reorder the caller's slice")
	}
}
