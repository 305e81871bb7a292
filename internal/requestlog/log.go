// Package requestlog keeps the in-memory sequence of submitted check inputs.
package requestlog

import "sync"

// Log is an ordered, goroutine-safe list of inputs. It is only ever appended to
// or cleared as a whole.
//
// An unbounded log is a plain growing slice. A bounded log is a ring of
// maxEntries slots: head is the oldest entry and count the number in use.
type Log struct {
	mu         sync.Mutex
	entries    []string
	head       int
	count      int
	maxEntries int
	onEvict    func()
}

// Option customizes a Log.
type Option func(*Log)

// WithMaxEntries bounds the log. Appending to a full log drops the oldest
// entry. Zero or a negative value leaves the log unbounded.
func WithMaxEntries(n int) Option {
	return func(l *Log) {
		if n > 0 {
			l.maxEntries = n
		}
	}
}

// WithEvictionHook registers fn to run once per evicted entry, outside the lock.
func WithEvictionHook(fn func()) Option {
	return func(l *Log) {
		l.onEvict = fn
	}
}

// New creates an empty log.
func New(opts ...Option) *Log {
	l := &Log{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append adds s to the end of the log in O(1) amortized time.
func (l *Log) Append(s string) {
	evicted := false

	l.mu.Lock()
	switch {
	case l.maxEntries == 0:
		l.entries = append(l.entries, s)
		l.count++
	case l.count < l.maxEntries:
		if l.entries == nil {
			l.entries = make([]string, l.maxEntries)
		}
		l.entries[(l.head+l.count)%l.maxEntries] = s
		l.count++
	default:
		// full: overwrite the oldest slot and advance head
		l.entries[l.head] = s
		l.head = (l.head + 1) % l.maxEntries
		evicted = true
	}
	l.mu.Unlock()

	if evicted && l.onEvict != nil {
		l.onEvict()
	}
}

// Clear removes every entry.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.head = 0
	l.count = 0
}

// Size returns the current number of entries.
func (l *Log) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Entries returns a copy of the log in insertion order.
func (l *Log) Entries() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, l.count)
	if l.maxEntries == 0 {
		copy(out, l.entries)
		return out
	}
	for i := range out {
		out[i] = l.entries[(l.head+i)%l.maxEntries]
	}
	return out
}

// Capacity returns the configured bound, or 0 when unbounded.
func (l *Log) Capacity() int {
	return l.maxEntries
}
