package memory

import "context"

// Store groups the in-memory repositories behind the same shape as database.Store.
type Store struct {
	Drivers  *DriverRepository
	Bookings *BookingRepository
}

func NewStore() *Store {
	return &Store{
		Drivers:  NewDriverRepository(),
		Bookings: NewBookingRepository(),
	}
}

// Ping always succeeds; there is no connection to lose.
func (s *Store) Ping(ctx context.Context) error { return nil }
