package vietflux

import "sync/atomic"

// clock stamps every keystroke with a strictly increasing sequence number.
// The stamps order log and trace records; replaying a recorded session
// reproduces them exactly.
//
// An Engine is single-threaded, but the counter is atomic so trace readers
// can observe Seq from another goroutine without a race.
type clock struct {
	seq atomic.Int64
}

// next returns the next sequence number and advances the clock.
func (c *clock) next() int64 {
	return c.seq.Add(1)
}

// current returns the latest issued sequence number without advancing.
func (c *clock) current() int64 {
	return c.seq.Load()
}
