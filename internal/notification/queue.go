package notification

import (
	"log"

	"github.com/sigma/mirage/internal/anim"
	"github.com/sigma/mirage/internal/gfx"
)

// Options fixes the geometry and timing shared by all banners of a queue.
type Options struct {
	StartX     float64 // off-screen x a banner slides in from
	RestX      float64 // x a banner comes to rest at
	TopY       int     // y of the first stack slot
	Width      int
	Height     int
	Spacing    int    // vertical distance between stack slots
	SlideTicks uint32 // slide-in duration
	Lifetime   uint32 // ticks before a banner expires
}

// DefaultOptions matches a 640-wide desktop.
func DefaultOptions() Options {
	return Options{
		StartX:     640,
		RestX:      320,
		TopY:       50,
		Width:      300,
		Height:     80,
		Spacing:    90,
		SlideTicks: 30,
		Lifetime:   300,
	}
}

// Queue holds the live notification stack. A new banner takes the slot below
// the ones alive at creation time; slots are never compacted afterwards, so
// removals can leave gaps.
type Queue struct {
	opts  Options
	items []*Notification
}

// NewQueue creates an empty queue.
func NewQueue(opts Options) *Queue {
	return &Queue{opts: opts}
}

// Len returns the number of live banners.
func (q *Queue) Len() int { return len(q.items) }

// Items returns the live banners in arrival order.
func (q *Queue) Items() []*Notification { return q.items }

// Enqueue appends a banner whose vertical slot is derived from the current
// queue length, with a fresh slide-in animation.
func (q *Queue) Enqueue(title, message string) *Notification {
	n := &Notification{
		Title:    title,
		Message:  message,
		X:        q.opts.StartX,
		Y:        q.opts.TopY + len(q.items)*q.opts.Spacing,
		Width:    q.opts.Width,
		Height:   q.opts.Height,
		Slide:    anim.New(q.opts.StartX, q.opts.RestX, q.opts.SlideTicks, anim.EaseOut),
		Lifetime: q.opts.Lifetime,
	}
	q.items = append(q.items, n)
	log.Printf("Notification queued: %s", title)
	return n
}

// Update advances every banner by one tick, then prunes expired ones. The
// relative order and animation state of survivors are untouched.
func (q *Queue) Update() {
	for _, n := range q.items {
		n.Update()
	}

	kept := q.items[:0]
	for _, n := range q.items {
		if !n.Expired() {
			kept = append(kept, n)
		}
	}
	for i := len(kept); i < len(q.items); i++ {
		q.items[i] = nil
	}
	q.items = kept
}

// Draw renders all surviving banners.
func (q *Queue) Draw(s *gfx.Surface) {
	for _, n := range q.items {
		n.Draw(s)
	}
}
