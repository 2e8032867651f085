package ringscene

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// FrameHandle identifies a registered frame callback.
type FrameHandle struct {
	id uuid.UUID
}

func (h FrameHandle) Valid() bool    { return h.id != uuid.Nil }
func (h FrameHandle) String() string { return h.id.String() }

// FrameScheduler delivers a callback once per displayed frame until the
// callback is cancelled.
type FrameScheduler interface {
	RegisterFrameCallback(fn func()) FrameHandle
	CancelFrameCallback(h FrameHandle)
}

type frameEntry struct {
	handle FrameHandle
	fn     func()
	live   bool
}

// FrameLoop is an in-process FrameScheduler. Step runs every live callback in
// registration order. Callbacks registered during a step first run on the
// next step; callbacks cancelled during a step do not run again, even later
// in the same step. Not safe for concurrent use.
type FrameLoop struct {
	entries  []frameEntry
	stepping bool
	frames   uint64
}

func NewFrameLoop() *FrameLoop {
	return &FrameLoop{}
}

func (l *FrameLoop) RegisterFrameCallback(fn func()) FrameHandle {
	h := FrameHandle{id: uuid.New()}
	l.entries = append(l.entries, frameEntry{handle: h, fn: fn, live: true})
	return h
}

func (l *FrameLoop) CancelFrameCallback(h FrameHandle) {
	for i := range l.entries {
		if l.entries[i].handle == h {
			l.entries[i].live = false
			l.entries[i].fn = nil
		}
	}
	if !l.stepping {
		l.compact()
	}
}

// Len is the number of live callbacks.
func (l *FrameLoop) Len() int {
	n := 0
	for i := range l.entries {
		if l.entries[i].live {
			n++
		}
	}
	return n
}

// Frames is the number of completed steps.
func (l *FrameLoop) Frames() uint64 { return l.frames }

// Step runs one frame and returns how many callbacks ran.
func (l *FrameLoop) Step() int {
	l.stepping = true
	n := len(l.entries)
	ran := 0
	for i := 0; i < n; i++ {
		if e := l.entries[i]; e.live {
			e.fn()
			ran++
		}
	}
	l.stepping = false
	l.compact()
	l.frames++
	return ran
}

func (l *FrameLoop) compact() {
	live := l.entries[:0]
	for _, e := range l.entries {
		if e.live {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(l.entries); i++ {
		l.entries[i] = frameEntry{}
	}
	l.entries = live
}

// Run steps the loop every interval until ctx is done or no callbacks remain.
// Ticks missed while a step overruns the interval are dropped.
func (l *FrameLoop) Run(ctx context.Context, interval time.Duration) error {
	if l.Len() == 0 {
		return nil
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Step()
			if l.Len() == 0 {
				return nil
			}
		}
	}
}
