// Package hud tracks the in-level timer and host counter shown on screen.
package hud

import (
	"fmt"
	"math"
)

// Counter is the HUD bookkeeping for one play session: a whole-second timer
// and a possessed/total host counter.
type Counter struct {
	current int
	total   int
	elapsed int
	acc     float64

	timerText    string
	progressText string
}

// NewCounter returns a zeroed counter with its text already formatted.
func NewCounter() *Counter {
	c := &Counter{}
	c.Reset()
	return c
}

// Advance adds dt seconds to the timer. Every full second moves the timer on
// by one and the remainder is carried into the next call. Non-positive, NaN
// and infinite steps are ignored; the timer saturates at math.MaxInt.
func (c *Counter) Advance(dt float64) {
	if dt <= 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return
	}
	c.acc += dt
	whole := math.Floor(c.acc)
	if whole < 1 {
		return
	}
	c.acc -= whole
	if whole >= float64(math.MaxInt-c.elapsed) {
		c.elapsed = math.MaxInt
	} else {
		c.elapsed += int(whole)
	}
	c.formatTimer()
}

// IncrementProgress counts one more host, up to the total.
func (c *Counter) IncrementProgress() {
	if c.current < c.total {
		c.current++
		c.formatProgress()
	}
}

// SetTotal replaces the number of hosts in the level. The current count is
// left as is, even when it ends up above the new total.
func (c *Counter) SetTotal(n int) {
	c.total = n
	c.formatProgress()
}

// Reset zeroes every counter and reformats the text.
func (c *Counter) Reset() {
	c.current = 0
	c.total = 0
	c.elapsed = 0
	c.acc = 0
	c.formatTimer()
	c.formatProgress()
}

func (c *Counter) Current() int         { return c.current }
func (c *Counter) Total() int           { return c.total }
func (c *Counter) Elapsed() int         { return c.elapsed }
func (c *Counter) Accumulator() float64 { return c.acc }

// TimerText is the elapsed time as minutes:seconds.
func (c *Counter) TimerText() string { return c.timerText }

// ProgressText is the host counter as "current / total".
func (c *Counter) ProgressText() string { return c.progressText }

func (c *Counter) formatTimer() {
	c.timerText = FormatElapsed(c.elapsed)
}

func (c *Counter) formatProgress() {
	c.progressText = fmt.Sprintf("%d / %d", c.current, c.total)
}

// FormatElapsed renders whole seconds as m:ss.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
