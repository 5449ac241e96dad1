// Package inventory models the fixed hotel room topology and its
// mutable occupancy state.
//
// The building has 97 rooms: floors 1-9 with ten rooms each (positions
// 0-9 counted from the stairwell) and floor 10 with seven (positions
// 0-6). Room numbers derive deterministically from coordinates as
// floor*100 + position + 1, so floor 1 holds rooms 101-110 and floor 10
// holds 1001-1007.
//
// The Store is deliberately not synchronised; see booking.Service for
// the single ownership boundary.
package inventory
