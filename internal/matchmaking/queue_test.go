package matchmaking

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_Enqueue(t *testing.T) {
	t.Run("Repeated enqueue keeps the original position", func(t *testing.T) {
		// Given: a queue with two waiting users
		queue := NewQueue()
		queue.Enqueue("alice")
		queue.Enqueue("bob")

		// When: alice enqueues again
		queue.Enqueue("alice")

		// Then: the queue still holds two entries and alice pairs first
		require.Equal(t, 2, queue.Len())

		first, second, ok := queue.TryDequeuePair()
		require.True(t, ok)
		assert.Equal(t, "alice", first)
		assert.Equal(t, "bob", second)
	})
}

func TestQueue_TryDequeuePair(t *testing.T) {
	t.Run("Returns nothing with fewer than two waiting", func(t *testing.T) {
		// Given: a queue with a single user
		queue := NewQueue()
		queue.Enqueue("alice")

		// When: trying to form a pair
		_, _, ok := queue.TryDequeuePair()

		// Then: no pair forms and alice keeps waiting
		require.False(t, ok)
		assert.Equal(t, 1, queue.Len())
	})

	t.Run("Pairs strictly FIFO", func(t *testing.T) {
		// Given: four users enqueued in order
		queue := NewQueue()
		for _, id := range []string{"a", "b", "c", "d"} {
			queue.Enqueue(id)
		}

		// When: forming two pairs
		first1, second1, ok1 := queue.TryDequeuePair()
		first2, second2, ok2 := queue.TryDequeuePair()

		// Then: the longest-waiting pair forms first
		require.True(t, ok1)
		require.True(t, ok2)
		assert.Equal(t, "a", first1)
		assert.Equal(t, "b", second1)
		assert.Equal(t, "c", first2)
		assert.Equal(t, "d", second2)
		assert.Equal(t, 0, queue.Len())
	})

	t.Run("A user can rejoin after being paired", func(t *testing.T) {
		// Given: a paired-out queue
		queue := NewQueue()
		queue.Enqueue("alice")
		queue.Enqueue("bob")
		_, _, ok := queue.TryDequeuePair()
		require.True(t, ok)

		// When: alice enqueues again
		queue.Enqueue("alice")

		// Then: she waits again
		assert.Equal(t, 1, queue.Len())
	})
}

func TestQueue_ConcurrentPairing(t *testing.T) {
	// Given: many users enqueued concurrently with concurrent pair dequeues
	queue := NewQueue()

	const users = 200

	var wg sync.WaitGroup
	pairs := make(chan [2]string, users)

	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			queue.Enqueue(fmt.Sprintf("user-%03d", n))
			if first, second, ok := queue.TryDequeuePair(); ok {
				pairs <- [2]string{first, second}
			}
		}(i)
	}

	wg.Wait()
	close(pairs)

	// Then: every user is paired at most once, never with themselves,
	// and nobody is both paired and still waiting
	seen := make(map[string]struct{})
	paired := 0
	for pair := range pairs {
		require.NotEqual(t, pair[0], pair[1])
		for _, id := range pair {
			_, dup := seen[id]
			require.False(t, dup, "user %s paired twice", id)
			seen[id] = struct{}{}
		}
		paired += 2
	}

	assert.Equal(t, users, paired+queue.Len())
}
