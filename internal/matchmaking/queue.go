package matchmaking

import "sync"

// Queue - a FIFO of users waiting for an anonymous opponent. All access runs
// under one mutex so enqueue and pair-dequeue are atomic as a unit and no two
// concurrent dequeues can ever return overlapping pairs.
type Queue struct {
	mu      sync.Mutex
	waiting []string
	present map[string]struct{}
}

func NewQueue() *Queue {
	return &Queue{
		waiting: make([]string, 0),
		present: make(map[string]struct{}),
	}
}

// Enqueue - adds a user to the tail of the queue. A user already waiting is
// left at their original position.
func (that *Queue) Enqueue(userID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.present[userID]; ok {
		return
	}

	that.waiting = append(that.waiting, userID)
	that.present[userID] = struct{}{}
}

// TryDequeuePair - atomically removes and returns the two longest-waiting
// users. Returns false without touching the queue when fewer than two wait.
func (that *Queue) TryDequeuePair() (string, string, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if len(that.waiting) < 2 {
		return "", "", false
	}

	first, second := that.waiting[0], that.waiting[1]
	that.waiting = that.waiting[2:]
	delete(that.present, first)
	delete(that.present, second)

	return first, second, true
}

// Len - number of users currently waiting.
func (that *Queue) Len() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.waiting)
}
