package allocator

import (
	"sort"

	"github.com/roomline/roomline-core/internal/inventory"
	"github.com/roomline/roomline-core/internal/travel"
)

// CostFunc scores a candidate room set; lower is better. The default is
// travel.Total. Tests substitute alternate cost models here.
type CostFunc func([]inventory.Room) int

// Allocator selects room sets for booking requests.
//
// The search has two tiers. Tier 1 prefers a single floor: the lowest
// floor with enough free rooms wins outright, with a consecutive block
// preferred over scattered rooms on that floor. Tier 2 runs only when no
// floor has enough rooms, and exhaustively minimises the cost function
// over every combination of the available set.
type Allocator struct {
	cost CostFunc
}

// New creates an allocator with the given cost function.
// A nil cost falls back to travel.Total.
func New(cost CostFunc) *Allocator {
	if cost == nil {
		cost = travel.Total
	}
	return &Allocator{cost: cost}
}

// FindRooms returns the chosen rooms for a request of numRooms, or an
// empty slice when fewer than numRooms rooms are available anywhere.
// The caller validates the request size; availability is taken as given.
//
// Results are deterministic regardless of input order: candidates are
// sorted by (floor, position) before either tier runs, so tie-breaks
// always resolve to the lowest rooms first.
func (a *Allocator) FindRooms(numRooms int, available []inventory.Room) []inventory.Room {
	if numRooms <= 0 || len(available) < numRooms {
		return nil
	}

	rooms := make([]inventory.Room, len(available))
	copy(rooms, available)
	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].Floor != rooms[j].Floor {
			return rooms[i].Floor < rooms[j].Floor
		}
		return rooms[i].Position < rooms[j].Position
	})

	if chosen := a.sameFloor(numRooms, rooms); chosen != nil {
		return chosen
	}

	return a.crossFloor(numRooms, rooms)
}

// sameFloor implements tier 1. It visits floors in ascending order and
// commits to the first floor holding at least numRooms free rooms: a
// consecutive-position block if one exists (lowest start first),
// otherwise that floor's lowest-position rooms. Later floors are never
// considered once a floor qualifies, even if they could offer a tighter
// block.
func (a *Allocator) sameFloor(numRooms int, sorted []inventory.Room) []inventory.Room {
	// sorted is ordered by (floor, position), so floors appear as
	// contiguous runs already sorted by position.
	for start := 0; start < len(sorted); {
		end := start
		for end < len(sorted) && sorted[end].Floor == sorted[start].Floor {
			end++
		}
		floorRooms := sorted[start:end]
		start = end

		if len(floorRooms) < numRooms {
			continue
		}

		if block := consecutiveBlock(floorRooms, numRooms); block != nil {
			return block
		}
		return append([]inventory.Room(nil), floorRooms[:numRooms]...)
	}
	return nil
}

// consecutiveBlock scans position-sorted rooms of one floor for the
// first window of numRooms strictly consecutive positions.
func consecutiveBlock(floorRooms []inventory.Room, numRooms int) []inventory.Room {
	for i := 0; i+numRooms <= len(floorRooms); i++ {
		window := floorRooms[i : i+numRooms]
		consecutive := true
		for j := 1; j < len(window); j++ {
			if window[j].Position != window[0].Position+j {
				consecutive = false
				break
			}
		}
		if consecutive {
			return append([]inventory.Room(nil), window...)
		}
	}
	return nil
}

// crossFloor implements tier 2: exhaustive minimisation of the cost
// function over every numRooms-sized combination. Only a strictly
// smaller cost replaces the incumbent, so the first combination found
// wins ties.
//
// Worst case is C(97, 5) combinations. That brute force is acceptable
// for this inventory size; any pruning must preserve which answer is
// returned, tie-breaks included.
func (a *Allocator) crossFloor(numRooms int, rooms []inventory.Room) []inventory.Room {
	combo := make([]inventory.Room, numRooms)
	var best []inventory.Room
	bestCost := -1

	iter := NewCombinations(len(rooms), numRooms)
	for indices, ok := iter.Next(); ok; indices, ok = iter.Next() {
		for i, idx := range indices {
			combo[i] = rooms[idx]
		}
		cost := a.cost(combo)
		if bestCost < 0 || cost < bestCost {
			bestCost = cost
			best = append(best[:0], combo...)
		}
	}

	return best
}
