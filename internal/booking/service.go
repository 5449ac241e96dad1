package booking

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roomline/roomline-core/internal/allocator"
	"github.com/roomline/roomline-core/internal/audit"
	"github.com/roomline/roomline-core/internal/inventory"
	"github.com/roomline/roomline-core/internal/travel"
)

// Booking size limits.
const (
	MinRoomsPerBooking = 1
	MaxRoomsPerBooking = 5
)

// Logger defines the logging interface used by the Service.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Result describes one successful booking. It is returned to the caller
// and never persisted.
type Result struct {
	RoomNumbers     []int
	GuestID         string
	TotalTravelTime int
	Paths           []travel.Path
}

// Service owns the inventory and exposes the booking operations.
//
// All public methods are safe for concurrent use: a single mutex spans
// each whole operation, including the allocate+commit sequence inside
// Book.
type Service struct {
	mu       sync.Mutex
	store    *inventory.Store
	alloc    *allocator.Allocator
	rng      *rand.Rand
	logger   Logger
	recorder audit.Recorder
}

// NewService creates a booking service over a fresh or existing store.
//
// seed controls the random source used by RandomOccupancy; zero seeds
// from the clock. A fixed seed makes occupancy generation reproducible.
func NewService(store *inventory.Store, alloc *allocator.Allocator, seed int64) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		store:  store,
		alloc:  alloc,
		rng:    rand.New(rand.NewSource(seed)),
		logger: noopLogger{},
	}
}

// SetLogger sets the logger for the service.
func (s *Service) SetLogger(logger Logger) {
	s.logger = logger
}

// SetRecorder sets the audit recorder. A nil recorder (the default)
// disables event recording.
func (s *Service) SetRecorder(recorder audit.Recorder) {
	s.recorder = recorder
}

// Book allocates and commits numRooms rooms for a guest.
//
// numRooms must be within [MinRoomsPerBooking, MaxRoomsPerBooking];
// otherwise ErrInvalidRoomCount is returned. When fewer rooms are
// available than requested, ErrInsufficientRooms is returned with the
// requested and available counts in the message, and nothing is
// committed. An empty guestID gets a generated one, so a booked room
// always carries a guest identifier.
func (s *Service) Book(ctx context.Context, numRooms int, guestID string) (*Result, error) {
	if numRooms < MinRoomsPerBooking || numRooms > MaxRoomsPerBooking {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidRoomCount, numRooms)
	}

	if guestID == "" {
		guestID = generateGuestID()
	}

	result, err := s.allocateAndCommit(numRooms, guestID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("rooms booked",
		"rooms", result.RoomNumbers,
		"guest_id", guestID,
		"total_travel_time", result.TotalTravelTime,
	)
	s.record(ctx, &audit.Event{
		Action:  audit.ActionBook,
		Rooms:   result.RoomNumbers,
		GuestID: guestID,
		Details: map[string]any{"total_travel_time": result.TotalTravelTime},
	})

	return result, nil
}

// allocateAndCommit performs the find and the status writes under one
// held lock. There is no partial success: the allocator either returns
// a full set or nothing.
func (s *Service) allocateAndCommit(numRooms int, guestID string) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	available := s.store.ListAvailable()
	chosen := s.alloc.FindRooms(numRooms, available)
	if len(chosen) < numRooms {
		return nil, fmt.Errorf("%w: requested %d, available %d",
			ErrInsufficientRooms, numRooms, len(available))
	}

	result := &Result{
		RoomNumbers:     make([]int, 0, len(chosen)),
		GuestID:         guestID,
		TotalTravelTime: travel.Total(chosen),
		Paths:           make([]travel.Path, 0, len(chosen)),
	}
	for _, room := range chosen {
		if err := s.store.Book(room.RoomNumber, guestID); err != nil {
			// Unreachable with a consistent store; surface rather than hide.
			return nil, fmt.Errorf("committing room %d: %w", room.RoomNumber, err)
		}
		result.RoomNumbers = append(result.RoomNumbers, room.RoomNumber)
		result.Paths = append(result.Paths, travel.PathFromReception(room))
	}

	return result, nil
}

// ResetAll releases every room and clears all guest IDs.
func (s *Service) ResetAll(ctx context.Context) {
	s.mu.Lock()
	s.store.ReleaseAll()
	s.mu.Unlock()

	s.logger.Info("all bookings reset")
	s.record(ctx, &audit.Event{Action: audit.ActionReset})
}

// RandomOccupancy resets the inventory and books a random selection of
// rooms amounting to floor(97 * percentage / 100), each under a
// generated guest ID. It returns how many rooms were booked.
//
// percentage must be within [0, 100]; otherwise ErrInvalidPercentage is
// returned and the inventory is untouched.
func (s *Service) RandomOccupancy(ctx context.Context, percentage float64) (int, error) {
	if percentage < 0 || percentage > 100 {
		return 0, fmt.Errorf("%w, got %g", ErrInvalidPercentage, percentage)
	}

	booked := s.occupyRandom(percentage)

	s.logger.Info("random occupancy generated",
		"percentage", percentage,
		"booked", booked,
	)
	s.record(ctx, &audit.Event{
		Action:  audit.ActionRandomOccupancy,
		Details: map[string]any{"percentage": percentage, "booked": booked},
	})

	return booked, nil
}

// occupyRandom does the reset and the random bookings under one lock.
func (s *Service) occupyRandom(percentage float64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.ReleaseAll()

	snapshot := s.store.Snapshot()
	numbers := make([]int, 0, len(snapshot))
	for num := range snapshot {
		numbers = append(numbers, num)
	}
	// Stable base order so a seeded rng yields a reproducible selection.
	sort.Ints(numbers)
	s.rng.Shuffle(len(numbers), func(i, j int) {
		numbers[i], numbers[j] = numbers[j], numbers[i]
	})

	// int() truncation gives the required floor of total*pct/100.
	toBook := int(float64(len(snapshot)) * percentage / 100)
	if toBook > len(numbers) {
		toBook = len(numbers)
	}

	for i := 0; i < toBook; i++ {
		// Errors are impossible for numbers drawn from the snapshot.
		_ = s.store.Book(numbers[i], generateGuestID())
	}

	return toBook
}

// RoomStates returns a copy of every room keyed by room number.
func (s *Service) RoomStates() map[int]inventory.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Statistics returns the current occupancy summary.
func (s *Service) Statistics() inventory.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Statistics()
}

// record writes an audit event if a recorder is configured. Audit
// failures are logged and swallowed; they never fail the operation.
func (s *Service) record(ctx context.Context, event *audit.Event) {
	if s.recorder == nil {
		return
	}
	if err := s.recorder.Create(ctx, event); err != nil {
		s.logger.Warn("failed to record booking event",
			"action", event.Action,
			"error", err,
		)
	}
}

// guestIDBytes is the length of the random suffix on generated guest IDs.
const guestIDBytes = 8

// generateGuestID creates a synthetic guest identifier.
func generateGuestID() string {
	return "guest-" + uuid.NewString()[:guestIDBytes]
}
