package store

import (
	"sync"
	"time"
)

// Scheduler coalesces repeated work per key. Scheduling a key that already
// has pending work replaces it, so rapid repeated saves of the same goal
// collapse into one write.
type Scheduler interface {
	Schedule(key string, fn func())
	Cancel(key string)
	Flush()
}

// Debouncer runs each key's latest fn after a quiet period. A generation
// counter per key invalidates timers that have already fired but not yet
// taken the lock, so a reschedule always restarts the full quiet period.
type Debouncer struct {
	delay  time.Duration
	mu     sync.Mutex
	seq    map[string]uint64
	timers map[string]*time.Timer
	fns    map[string]func()
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{
		delay:  delay,
		seq:    map[string]uint64{},
		timers: map[string]*time.Timer{},
		fns:    map[string]func(){},
	}
}

func (d *Debouncer) Schedule(key string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.seq[key]++
	gen := d.seq[key]
	d.fns[key] = fn
	d.timers[key] = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.seq[key] != gen {
			// superseded or cancelled while we waited on the lock
			d.mu.Unlock()
			return
		}
		fn := d.fns[key]
		delete(d.fns, key)
		delete(d.timers, key)
		d.mu.Unlock()
		if fn != nil {
			fn()
		}
	})
}

func (d *Debouncer) Cancel(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[key]; ok {
		t.Stop()
	}
	d.seq[key]++
	delete(d.timers, key)
	delete(d.fns, key)
}

// Flush runs everything still pending, synchronously. Call on shutdown so a
// quick quit doesn't drop the last edit.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	var fns []func()
	for key, t := range d.timers {
		t.Stop()
		if fn := d.fns[key]; fn != nil {
			fns = append(fns, fn)
		}
		d.seq[key]++
		delete(d.timers, key)
		delete(d.fns, key)
	}
	d.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Immediate is a Scheduler that runs work synchronously; used by the CLI and
// in tests where debouncing would only add sleeps.
type Immediate struct{}

func (Immediate) Schedule(key string, fn func()) { fn() }
func (Immediate) Cancel(string)                  {}
func (Immediate) Flush()                         {}
