package anycow

import (
	"slices"
	"sync"
)

// broadcaster fans replacement values out to watch channels. Sends are
// non-blocking: a subscriber that stops draining loses messages instead
// of stalling TryReplace.
type broadcaster[T any] struct {
	subscribers []chan T
	mu          sync.RWMutex
}

func (b *broadcaster[T]) subscribe() chan T {
	ch := make(chan T, 10)
	b.mu.Lock()
	b.subscribers = append(b.subscribers, ch)
	b.mu.Unlock()
	return ch
}

func (b *broadcaster[T]) unsubscribe(ch chan T) {
	b.mu.Lock()
	b.subscribers = slices.DeleteFunc(b.subscribers, func(c chan T) bool {
		if c == ch {
			close(c)
			return true
		}
		return false
	})
	b.mu.Unlock()
}

func (b *broadcaster[T]) broadcast(msg T) {
	if b == nil {
		return
	}

	b.mu.RLock()
	for _, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
		}
	}
	b.mu.RUnlock()
}
