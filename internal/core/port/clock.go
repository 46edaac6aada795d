package port

import "time"

// Clock yields the current time in unix nanoseconds.
type Clock interface {
	Now() uint64
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() uint64 {
	return uint64(time.Now().UnixNano())
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() uint64

func (f ClockFunc) Now() uint64 {
	return f()
}
