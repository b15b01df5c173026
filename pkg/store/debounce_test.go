package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type counter struct {
	mu sync.Mutex
	n  int
}

func (c *counter) inc() {
	c.mu.Lock()
	c.n++
	c.mu.Unlock()
}

func (c *counter) get() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n
}

func TestDebouncerCoalesces(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var c counter
	for i := 0; i < 5; i++ {
		d.Schedule("a", c.inc)
	}
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, c.get())
}

func TestDebouncerRescheduleRestartsQuietPeriod(t *testing.T) {
	d := NewDebouncer(100 * time.Millisecond)
	var c counter

	d.Schedule("a", c.inc)
	time.Sleep(60 * time.Millisecond)
	d.Schedule("a", c.inc)

	// past the first deadline, inside the second quiet period
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 0, c.get())

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, 1, c.get())
}

func TestDebouncerCancelBeatsPendingFire(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)
	var c counter

	d.Schedule("a", c.inc)
	d.Cancel("a")
	d.Schedule("b", c.inc)
	d.Cancel("b")

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 0, c.get())
}

func TestDebouncerSeparateKeys(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	var c counter
	d.Schedule("a", c.inc)
	d.Schedule("b", c.inc)
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 2, c.get())
}

func TestDebouncerCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	var c counter
	d.Schedule("a", c.inc)
	d.Cancel("a")
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, 0, c.get())
}

func TestDebouncerFlushRunsPendingNow(t *testing.T) {
	d := NewDebouncer(time.Hour)
	var c counter
	d.Schedule("a", c.inc)
	d.Schedule("b", c.inc)
	d.Flush()
	assert.Equal(t, 2, c.get())

	// nothing left to fire afterwards
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, c.get())
}

func TestImmediateRunsSynchronously(t *testing.T) {
	var c counter
	Immediate{}.Schedule("a", c.inc)
	assert.Equal(t, 1, c.get())
}
