// Package hub fans finished-import notifications out to the event-stream
// clients watching a provider.
package hub

import (
	"encoding/json"
	"sync"
)

// Event is one notification on a provider feed.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client receives encoded events. Its buffer size decides how far a stream
// may lag before events are dropped for it.
type Client chan []byte

type feed map[Client]struct{}

type Hub struct {
	mu    sync.RWMutex
	feeds map[string]feed
}

func NewHub() *Hub {
	return &Hub{feeds: make(map[string]feed)}
}

// Subscribe attaches client to the provider's feed.
func (h *Hub) Subscribe(provider string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f, ok := h.feeds[provider]
	if !ok {
		f = make(feed)
		h.feeds[provider] = f
	}
	f[client] = struct{}{}
}

// Unsubscribe detaches client and closes it. Calling it twice is a no-op.
func (h *Hub) Unsubscribe(provider string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	f := h.feeds[provider]
	if _, ok := f[client]; !ok {
		return
	}
	delete(f, client)
	close(client)
	if len(f) == 0 {
		delete(h.feeds, provider)
	}
}

func (h *Hub) Subscribers(provider string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.feeds[provider])
}

// Broadcast encodes event once and offers it to every client of provider
// without blocking. It returns how many clients accepted it.
func (h *Hub) Broadcast(provider string, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	f := h.feeds[provider]
	if len(f) == 0 {
		return 0
	}
	msg, err := json.Marshal(event)
	if err != nil {
		return 0
	}
	delivered := 0
	for client := range f {
		select {
		case client <- msg:
			delivered++
		default:
		}
	}
	return delivered
}
