package live

import (
	"encoding/json"
	"testing"
	"time"

	"wayfare/models"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:   make(chan []byte, 10),
		TripID: "trip1",
	}

	hub.register <- client

	event := models.TripEvent{TripID: "trip1", RecordID: "rec1", Method: "POST"}
	data, _ := json.Marshal(event)
	hub.Broadcast("trip1", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubBroadcastScopedToTrip(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	watching := &Client{Send: make(chan []byte, 10), TripID: "trip1"}
	other := &Client{Send: make(chan []byte, 10), TripID: "trip2"}
	hub.register <- watching
	hub.register <- other

	hub.Broadcast("trip1", []byte(`{"tripid":"trip1"}`))

	select {
	case <-watching.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message on watched trip")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("client on another trip received %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
