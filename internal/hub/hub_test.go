package hub

import (
	"encoding/json"
	"testing"
)

func TestBroadcast_OnlyReachesProviderSubscribers(t *testing.T) {
	h := NewHub()
	acme := make(Client, 1)
	other := make(Client, 1)
	h.Subscribe("acme", acme)
	h.Subscribe("other", other)

	if n := h.Broadcast("acme", Event{Type: "import.completed", Payload: map[string]int{"received": 2}}); n != 1 {
		t.Fatalf("delivered=%d want 1", n)
	}

	select {
	case msg := <-acme:
		var ev Event
		if err := json.Unmarshal(msg, &ev); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if ev.Type != "import.completed" {
			t.Fatalf("type=%q", ev.Type)
		}
	default:
		t.Fatalf("acme subscriber got nothing")
	}
	select {
	case msg := <-other:
		t.Fatalf("other subscriber got %s", msg)
	default:
	}
}

func TestBroadcast_FullClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	c := make(Client)
	h.Subscribe("acme", c)
	if n := h.Broadcast("acme", Event{Type: "x"}); n != 0 {
		t.Fatalf("delivered=%d want 0", n)
	}
	if n := h.Broadcast("nobody", Event{Type: "x"}); n != 0 {
		t.Fatalf("delivered=%d to empty feed", n)
	}
}

func TestUnsubscribe_ClosesAndForgetsClient(t *testing.T) {
	h := NewHub()
	c := make(Client, 1)
	h.Subscribe("acme", c)
	if h.Subscribers("acme") != 1 {
		t.Fatalf("subscribers=%d want 1", h.Subscribers("acme"))
	}
	h.Unsubscribe("acme", c)
	if _, ok := <-c; ok {
		t.Fatalf("channel still open")
	}
	if h.Subscribers("acme") != 0 {
		t.Fatalf("subscribers=%d want 0", h.Subscribers("acme"))
	}
	h.Unsubscribe("acme", c)
}
