package ports

// Clock is the logical clock driving cache staleness. Readings are
// monotonically non-decreasing across the process lifetime and carry no
// relationship to wall-clock time; an external driver advances the clock.
//
//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	// Read returns the current clock value.
	Read() uint64
}
