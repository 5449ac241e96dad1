package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/roomline/roomline-core/internal/allocator"
	"github.com/roomline/roomline-core/internal/audit"
	"github.com/roomline/roomline-core/internal/booking"
	"github.com/roomline/roomline-core/internal/infrastructure/config"
	"github.com/roomline/roomline-core/internal/infrastructure/logging"
	"github.com/roomline/roomline-core/internal/inventory"
)

// fakeAuditRepo is an in-memory audit.Repository for handler tests.
type fakeAuditRepo struct {
	events  []audit.Event
	listErr error
}

func (f *fakeAuditRepo) Create(_ context.Context, event *audit.Event) error {
	f.events = append(f.events, *event)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, filter audit.Filter) (*audit.ListResult, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	matched := make([]audit.Event, 0, len(f.events))
	for _, e := range f.events {
		if filter.Action == "" || e.Action == filter.Action {
			matched = append(matched, e)
		}
	}
	return &audit.ListResult{
		Events: matched,
		Total:  len(matched),
		Limit:  limit,
		Offset: filter.Offset,
	}, nil
}

func testLogger() *logging.Logger {
	return logging.New(config.LoggingConfig{Level: "error", Format: "text"}, "test")
}

// newTestServer builds a server over a fresh inventory with a fixed
// random seed, without binding a listener.
func newTestServer(t *testing.T, auditRepo audit.Repository) *Server {
	t.Helper()

	store := inventory.NewStore()
	service := booking.NewService(store, allocator.New(nil), 1)

	srv, err := New(Deps{
		Config:  config.APIConfig{Host: "127.0.0.1", Port: 8080},
		WS:      config.WebSocketConfig{Path: "/ws", PingInterval: 30, PongTimeout: 10},
		Logger:  testLogger(),
		Service: service,
		Audit:   auditRepo,
		Version: "test",
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return srv
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(Deps{Service: &booking.Service{}}); err == nil {
		t.Error("New() without logger should fail")
	}
	if _, err := New(Deps{Logger: testLogger()}); err == nil {
		t.Error("New() without service should fail")
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv.buildRouter(), http.MethodGet, "/health", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody[map[string]any](t, rec)
	if body["status"] != "ok" {
		t.Errorf("status field = %v, want ok", body["status"])
	}
	if body["version"] != "test" {
		t.Errorf("version field = %v, want test", body["version"])
	}
}

func TestHandleBook_Success(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv.buildRouter(), http.MethodPost, "/book",
		BookRequest{NumRooms: 4, GuestID: "guest-smith"})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	body := decodeBody[BookResponse](t, rec)
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Message != "Successfully booked 4 room(s)" {
		t.Errorf("message = %q", body.Message)
	}
	want := []int{101, 102, 103, 104}
	if len(body.BookedRooms) != len(want) {
		t.Fatalf("booked_rooms = %v, want %v", body.BookedRooms, want)
	}
	for i, num := range want {
		if body.BookedRooms[i] != num {
			t.Errorf("booked_rooms[%d] = %d, want %d", i, body.BookedRooms[i], num)
		}
	}
	if body.TotalTravelTime != 3 {
		t.Errorf("total_travel_time = %d, want 3", body.TotalTravelTime)
	}
	if len(body.RoomPaths) != 4 {
		t.Errorf("room_paths has %d entries, want 4", len(body.RoomPaths))
	}
}

func TestHandleBook_InvalidRoomCount(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.buildRouter()

	for _, numRooms := range []int{0, -1, 6} {
		rec := doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: numRooms})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("num_rooms=%d: status = %d, want %d", numRooms, rec.Code, http.StatusBadRequest)
		}
		body := decodeBody[Error](t, rec)
		if body.Code != "validation_error" {
			t.Errorf("num_rooms=%d: code = %q, want validation_error", numRooms, body.Code)
		}
	}
}

func TestHandleBook_MalformedBody(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/book", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	srv.buildRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleBook_InsufficientRooms(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.buildRouter()

	if _, err := srv.service.RandomOccupancy(context.Background(), 100); err != nil {
		t.Fatalf("RandomOccupancy() error = %v", err)
	}

	rec := doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: 3})
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
	body := decodeBody[Error](t, rec)
	if body.Code != "conflict" {
		t.Errorf("code = %q, want conflict", body.Code)
	}
	if !strings.Contains(body.Message, "requested 3") || !strings.Contains(body.Message, "available 0") {
		t.Errorf("message = %q, want requested and available counts", body.Message)
	}
}

func TestHandleRandomOccupancy(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv.buildRouter(), http.MethodPost, "/random-occupancy",
		RandomOccupancyRequest{OccupancyPercentage: 50})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d; body %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	body := decodeBody[MessageResponse](t, rec)
	if body.Message != "Generated random occupancy: 48 rooms booked (50% of total)" {
		t.Errorf("message = %q", body.Message)
	}

	stats := srv.service.Statistics()
	if stats.Booked != 48 {
		t.Errorf("booked = %d, want 48", stats.Booked)
	}
}

func TestHandleRandomOccupancy_InvalidPercentage(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.buildRouter()

	for _, pct := range []float64{-1, 100.5} {
		rec := doJSON(t, handler, http.MethodPost, "/random-occupancy",
			RandomOccupancyRequest{OccupancyPercentage: pct})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("pct=%g: status = %d, want %d", pct, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestHandleReset(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.buildRouter()

	doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: 5})

	rec := doJSON(t, handler, http.MethodPost, "/reset", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody[MessageResponse](t, rec)
	if body.Message != "All bookings have been reset" {
		t.Errorf("message = %q", body.Message)
	}

	stats := srv.service.Statistics()
	if stats.Booked != 0 || stats.Available != inventory.TotalRooms {
		t.Errorf("after reset stats = %+v", stats)
	}
}

func TestHandleGetRooms(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.buildRouter()

	doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: 2, GuestID: "guest-lee"})

	rec := doJSON(t, handler, http.MethodGet, "/rooms", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody[RoomStateResponse](t, rec)
	if len(body.Rooms) != inventory.TotalRooms {
		t.Errorf("rooms count = %d, want %d", len(body.Rooms), inventory.TotalRooms)
	}
	if body.TotalRooms != inventory.TotalRooms || body.BookedRooms != 2 || body.AvailableRooms != 95 {
		t.Errorf("counts = %d/%d/%d", body.TotalRooms, body.BookedRooms, body.AvailableRooms)
	}
	if room, ok := body.Rooms[101]; !ok || room.GuestID != "guest-lee" {
		t.Errorf("room 101 = %+v, want booked by guest-lee", room)
	}
}

func TestHandleGetStatistics(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv.buildRouter(), http.MethodGet, "/statistics", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody[inventory.Stats](t, rec)
	if body.Total != inventory.TotalRooms || body.Available != inventory.TotalRooms {
		t.Errorf("stats = %+v", body)
	}
}

func TestHandleListAudit_Disabled(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv.buildRouter(), http.MethodGet, "/audit", nil)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleListAudit(t *testing.T) {
	repo := &fakeAuditRepo{}
	srv := newTestServer(t, repo)
	srv.service.SetRecorder(repo)
	handler := srv.buildRouter()

	doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: 1})
	doJSON(t, handler, http.MethodPost, "/reset", nil)

	rec := doJSON(t, handler, http.MethodGet, "/audit", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := decodeBody[audit.ListResult](t, rec)
	if body.Total != 2 {
		t.Errorf("total = %d, want 2", body.Total)
	}

	rec = doJSON(t, handler, http.MethodGet, "/audit?action="+audit.ActionBook, nil)
	body = decodeBody[audit.ListResult](t, rec)
	if body.Total != 1 || len(body.Events) != 1 || body.Events[0].Action != audit.ActionBook {
		t.Errorf("filtered result = %+v", body)
	}
}

func TestHandleListAudit_BadQueryParams(t *testing.T) {
	srv := newTestServer(t, &fakeAuditRepo{})
	handler := srv.buildRouter()

	for _, path := range []string{"/audit?limit=abc", "/audit?offset=xyz"} {
		rec := doJSON(t, handler, http.MethodGet, path, nil)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want %d", path, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestRequestID_Propagated(t *testing.T) {
	srv := newTestServer(t, nil)
	rec := doJSON(t, srv.buildRouter(), http.MethodGet, "/health", nil)

	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("X-Request-ID header not set")
	}
}

func TestCORS_Preflight(t *testing.T) {
	srv := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/book", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	srv.buildRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Access-Control-Allow-Origin not set")
	}
}

func TestServerLifecycle(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.cfg.Port = 0 // ephemeral; listen failure is logged, not fatal

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	time.Sleep(50 * time.Millisecond)

	if err := srv.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestBookSequence_FillsFloorsInOrder(t *testing.T) {
	srv := newTestServer(t, nil)
	handler := srv.buildRouter()

	// Two bookings of five rooms each fill floor 1; the third lands on floor 2.
	for i := 0; i < 2; i++ {
		rec := doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: 5})
		if rec.Code != http.StatusOK {
			t.Fatalf("booking %d: status = %d", i, rec.Code)
		}
	}
	rec := doJSON(t, handler, http.MethodPost, "/book", BookRequest{NumRooms: 5})
	body := decodeBody[BookResponse](t, rec)
	for i, num := range body.BookedRooms {
		if want := 201 + i; num != want {
			t.Errorf("booked_rooms[%d] = %d, want %d", i, num, want)
		}
	}
}

func ExampleServer() {
	store := inventory.NewStore()
	service := booking.NewService(store, allocator.New(nil), 1)
	srv, _ := New(Deps{
		Config:  config.APIConfig{Host: "127.0.0.1", Port: 8080},
		Logger:  logging.Default(),
		Service: service,
	})
	fmt.Println(srv.wsPath())
	// Output: /ws
}
