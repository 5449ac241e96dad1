// Package travel computes guest walking times over the hotel topology.
//
// All movement is modelled on a shared stairwell at position 0 of every
// floor: one minute per room horizontally, two minutes per floor
// vertically. The functions are pure; they never touch inventory state.
package travel
