package travel

import (
	"strings"
	"testing"

	"github.com/roomline/roomline-core/internal/inventory"
)

func TestPathFromReception_TotalMatchesFormula(t *testing.T) {
	// The path's numeric total must equal FromReception for every room
	// in the building.
	for _, r := range allRooms() {
		p := PathFromReception(r)
		if p.TotalTime != FromReception(r) {
			t.Errorf("room %d: path total %d != FromReception %d",
				r.RoomNumber, p.TotalTime, FromReception(r))
		}
		if p.RoomNumber != r.RoomNumber || p.Floor != r.Floor || p.Position != r.Position {
			t.Errorf("room %d: path coordinates do not match the room", r.RoomNumber)
		}
		if len(p.Steps) == 0 {
			t.Errorf("room %d: path has no steps", r.RoomNumber)
		}
	}
}

func TestPathFromReception_Steps(t *testing.T) {
	tests := []struct {
		name      string
		r         inventory.Room
		wantSteps int
		contains  []string
	}{
		{
			name:      "upper floor away from stairs",
			r:         room(3, 4),
			wantSteps: 2,
			contains:  []string{"Take stairs/lift up 3 floor(s)", "Walk 4 room(s) from stairs"},
		},
		{
			name:      "upper floor at stairwell",
			r:         room(2, 0),
			wantSteps: 2,
			contains:  []string{"Take stairs/lift up 2 floor(s)", "located at the stairs on Floor 2"},
		},
		{
			name:      "reception itself",
			r:         inventory.Room{RoomNumber: 0, Floor: 0, Position: 0},
			wantSteps: 1,
			contains:  []string{"Room is at the reception area"},
		},
		{
			name:      "ground floor away from reception",
			r:         inventory.Room{RoomNumber: 3, Floor: 0, Position: 2},
			wantSteps: 1,
			contains:  []string{"Walk 2 room(s) from reception"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PathFromReception(tt.r)
			if len(p.Steps) != tt.wantSteps {
				t.Fatalf("got %d steps %q, want %d", len(p.Steps), p.Steps, tt.wantSteps)
			}
			joined := strings.Join(p.Steps, " | ")
			for _, want := range tt.contains {
				if !strings.Contains(joined, want) {
					t.Errorf("steps %q missing %q", joined, want)
				}
			}
		})
	}
}

func TestPathFromReception_StairwellRoomAddsNoWalkTime(t *testing.T) {
	p := PathFromReception(room(7, 0))
	if p.TotalTime != 14 {
		t.Errorf("TotalTime = %d, want 14 (vertical only)", p.TotalTime)
	}
}
