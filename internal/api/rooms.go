package api

import (
	"net/http"
	"strconv"

	"github.com/roomline/roomline-core/internal/audit"
	"github.com/roomline/roomline-core/internal/inventory"
)

// RoomStateResponse is the payload returned by GET /rooms.
type RoomStateResponse struct {
	Rooms          map[int]inventory.Room `json:"rooms"`
	TotalRooms     int                    `json:"total_rooms"`
	AvailableRooms int                    `json:"available_rooms"`
	BookedRooms    int                    `json:"booked_rooms"`
}

// handleGetRooms returns the current state of every room.
func (s *Server) handleGetRooms(w http.ResponseWriter, _ *http.Request) {
	states := s.service.RoomStates()
	stats := s.service.Statistics()

	writeJSON(w, http.StatusOK, RoomStateResponse{
		Rooms:          states,
		TotalRooms:     stats.Total,
		AvailableRooms: stats.Available,
		BookedRooms:    stats.Booked,
	})
}

// handleGetStatistics returns the occupancy summary.
func (s *Server) handleGetStatistics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.service.Statistics())
}

// handleListAudit returns booking events, most recent first.
// Query parameters: action, limit, offset.
func (s *Server) handleListAudit(w http.ResponseWriter, r *http.Request) {
	if s.auditRepo == nil {
		writeNotFound(w, "audit trail is disabled")
		return
	}

	filter := audit.Filter{
		Action: r.URL.Query().Get("action"),
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeBadRequest(w, "limit must be an integer")
			return
		}
		filter.Limit = limit
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			writeBadRequest(w, "offset must be an integer")
			return
		}
		filter.Offset = offset
	}

	result, err := s.auditRepo.List(r.Context(), filter)
	if err != nil {
		s.logger.Error("failed to list booking events", "error", err)
		writeInternalError(w, "failed to list booking events")
		return
	}
	writeJSON(w, http.StatusOK, result)
}
