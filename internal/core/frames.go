package core

import "time"

// FrameID identifies a pending frame request. Zero is never issued.
type FrameID uint64

// FrameScheduler is the host primitive that calls back once per displayed
// frame.
type FrameScheduler interface {
	Now() time.Duration
	RequestFrame(fn func(now time.Duration)) FrameID
	CancelFrame(id FrameID)
}

// FrameQueue is a FrameScheduler for hosts that pump frames themselves, such
// as a game loop's update hook or a ticker.
type FrameQueue struct {
	now     func() time.Duration
	nextID  FrameID
	pending map[FrameID]func(time.Duration)
	order   []FrameID
}

// NewFrameQueue returns a queue whose Now reads the provided clock. A nil
// clock measures monotonic time since the queue was created.
func NewFrameQueue(now func() time.Duration) *FrameQueue {
	if now == nil {
		start := time.Now()
		now = func() time.Duration { return time.Since(start) }
	}
	return &FrameQueue{now: now, pending: map[FrameID]func(time.Duration){}}
}

// Now returns the current host timestamp.
func (q *FrameQueue) Now() time.Duration { return q.now() }

// RequestFrame queues fn for the next Pump.
func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) FrameID {
	q.nextID++
	q.pending[q.nextID] = fn
	q.order = append(q.order, q.nextID)
	return q.nextID
}

// CancelFrame drops a pending request. Unknown ids are ignored.
func (q *FrameQueue) CancelFrame(id FrameID) {
	delete(q.pending, id)
}

// Pending reports how many frame requests are waiting.
func (q *FrameQueue) Pending() int { return len(q.pending) }

// Pump runs every request queued before the call with the current timestamp.
// Requests made while pumping wait for the next Pump.
func (q *FrameQueue) Pump() int {
	now := q.now()
	batch := q.order
	q.order = nil
	ran := 0
	for _, id := range batch {
		fn, ok := q.pending[id]
		if !ok {
			continue
		}
		delete(q.pending, id)
		fn(now)
		ran++
	}
	return ran
}
