package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/roomline/roomline-core/internal/booking"
	"github.com/roomline/roomline-core/internal/travel"
)

// BookRequest is the payload for POST /book.
type BookRequest struct {
	NumRooms int    `json:"num_rooms"`
	GuestID  string `json:"guest_id,omitempty"`
}

// BookResponse is the payload returned by POST /book.
type BookResponse struct {
	Success         bool          `json:"success"`
	Message         string        `json:"message"`
	BookedRooms     []int         `json:"booked_rooms"`
	TotalTravelTime int           `json:"total_travel_time"`
	RoomPaths       []travel.Path `json:"room_paths"`
}

// RandomOccupancyRequest is the payload for POST /random-occupancy.
type RandomOccupancyRequest struct {
	OccupancyPercentage float64 `json:"occupancy_percentage"`
}

// MessageResponse is the generic success payload.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// handleBook allocates and books rooms for a party.
func (s *Server) handleBook(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	result, err := s.service.Book(r.Context(), req.NumRooms, req.GuestID)
	if err != nil {
		s.writeBookingError(w, err)
		return
	}

	s.broadcastOccupancy(result.RoomNumbers)

	writeJSON(w, http.StatusOK, BookResponse{
		Success:         true,
		Message:         fmt.Sprintf("Successfully booked %d room(s)", len(result.RoomNumbers)),
		BookedRooms:     result.RoomNumbers,
		TotalTravelTime: result.TotalTravelTime,
		RoomPaths:       result.Paths,
	})
}

// handleRandomOccupancy resets the inventory and books a random share of rooms.
func (s *Server) handleRandomOccupancy(w http.ResponseWriter, r *http.Request) {
	var req RandomOccupancyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid request body")
		return
	}

	booked, err := s.service.RandomOccupancy(r.Context(), req.OccupancyPercentage)
	if err != nil {
		s.writeBookingError(w, err)
		return
	}

	s.broadcastOccupancy(nil)

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: fmt.Sprintf("Generated random occupancy: %d rooms booked (%g%% of total)",
			booked, req.OccupancyPercentage),
	})
}

// handleReset releases every room.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.service.ResetAll(r.Context())

	s.broadcastOccupancy(nil)

	writeJSON(w, http.StatusOK, MessageResponse{
		Success: true,
		Message: "All bookings have been reset",
	})
}

// writeBookingError maps booking service errors onto HTTP responses.
// Domain errors surface their own message; anything unexpected is
// logged and returned generically.
func (s *Server) writeBookingError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrInvalidRoomCount),
		errors.Is(err, booking.ErrInvalidPercentage):
		writeValidationError(w, err.Error())
	case errors.Is(err, booking.ErrInsufficientRooms):
		writeConflict(w, err.Error())
	default:
		s.logger.Error("booking operation failed", "error", err)
		writeInternalError(w, "internal server error")
	}
}

// occupancyEvent is the payload broadcast on the rooms channel.
type occupancyEvent struct {
	ChangedRooms   []int `json:"changed_rooms,omitempty"`
	TotalRooms     int   `json:"total_rooms"`
	BookedRooms    int   `json:"booked_rooms"`
	AvailableRooms int   `json:"available_rooms"`
}

// broadcastOccupancy pushes the new occupancy summary to WebSocket
// clients. changed lists the rooms a booking touched; nil means a bulk
// change (reset, random occupancy).
func (s *Server) broadcastOccupancy(changed []int) {
	if s.hub == nil {
		return
	}
	stats := s.service.Statistics()
	s.hub.Broadcast("rooms", occupancyEvent{
		ChangedRooms:   changed,
		TotalRooms:     stats.Total,
		BookedRooms:    stats.Booked,
		AvailableRooms: stats.Available,
	})
}
