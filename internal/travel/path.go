package travel

import (
	"fmt"

	"github.com/roomline/roomline-core/internal/inventory"
)

// Path is a human-readable walking route from reception to one room.
// TotalTime always equals FromReception for the same room.
type Path struct {
	RoomNumber int      `json:"room_number"`
	Floor      int      `json:"floor"`
	Position   int      `json:"position"`
	Steps      []string `json:"steps"`
	TotalTime  int      `json:"total_time"`
}

// PathFromReception describes the walk from reception (floor 0,
// position 0) to the given room, step by step, with the total time in
// minutes.
func PathFromReception(room inventory.Room) Path {
	var steps []string
	totalTime := 0

	if room.Floor > 0 {
		steps = append(steps, fmt.Sprintf("Take stairs/lift up %d floor(s) (%d minutes)",
			room.Floor, room.Floor*minutesPerFloor))
		totalTime += room.Floor * minutesPerFloor
	}

	switch {
	case room.Position > 0 && room.Floor > 0:
		steps = append(steps, fmt.Sprintf("Walk %d room(s) from stairs to Room %d (%d minutes)",
			room.Position, room.RoomNumber, room.Position))
		totalTime += room.Position
	case room.Floor > 0:
		steps = append(steps, fmt.Sprintf("Room %d is located at the stairs on Floor %d",
			room.RoomNumber, room.Floor))
	case room.Position > 0:
		// Ground floor: walk straight from the reception desk.
		steps = append(steps, fmt.Sprintf("Walk %d room(s) from reception to Room %d (%d minutes)",
			room.Position, room.RoomNumber, room.Position))
		totalTime += room.Position
	default:
		steps = append(steps, "Room is at the reception area")
	}

	return Path{
		RoomNumber: room.RoomNumber,
		Floor:      room.Floor,
		Position:   room.Position,
		Steps:      steps,
		TotalTime:  totalTime,
	}
}
