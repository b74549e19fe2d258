package events

import "sync"

// subscriberBuffer bounds how far a slow SSE client can lag before its
// events start getting dropped.
const subscriberBuffer = 16

// Hub fans published events out to every subscribed client. Delivery is
// best-effort: a subscriber that stops draining its channel loses events
// rather than stalling the publisher.
type Hub struct {
	mu   sync.Mutex
	subs map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan string]struct{})}
}

func (h *Hub) Subscribe() chan string {
	ch := make(chan string, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes the channel. Closing only after the
// channel has left the set keeps concurrent Publish calls off it.
func (h *Hub) Unsubscribe(ch chan string) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
	close(ch)
}

func (h *Hub) Publish(evt string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default: // slow subscriber, drop
		}
	}
}
