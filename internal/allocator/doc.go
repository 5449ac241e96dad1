// Package allocator chooses which free rooms satisfy a booking request.
//
// Policy, in order: keep a party on one floor if any floor can hold it
// (lowest floor wins, consecutive rooms preferred); otherwise minimise
// travel time between the chosen rooms across the whole building by
// exhaustive search. The allocator never mutates inventory; it only
// selects from the availability snapshot it is handed.
package allocator
