package events

import (
	"context"
	"testing"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := NewInMemoryDispatcher()

	var got []Event
	d.Subscribe(EventUserRegistered, func(_ context.Context, e Event) error {
		got = append(got, e)
		return nil
	})

	err := d.Publish(context.Background(), Event{ID: "e1", Type: EventUserRegistered, UserID: "u1"})
	if err != nil {
		t.Fatalf("publish: %v", err)
	}

	if len(got) != 1 || got[0].UserID != "u1" {
		t.Fatalf("expected one delivered event for u1, got %v", got)
	}
}

func TestDispatcherIgnoresOtherEventTypes(t *testing.T) {
	d := NewInMemoryDispatcher()

	called := false
	d.Subscribe(EventUserLoggedIn, func(_ context.Context, _ Event) error {
		called = true
		return nil
	})

	if err := d.Publish(context.Background(), Event{Type: EventUserRegistered}); err != nil {
		t.Fatalf("publish: %v", err)
	}
	if called {
		t.Fatal("handler for a different event type must not fire")
	}
}
