package mq

import (
	"context"
	"encoding/json"
	"log"

	"wayfare/live"
	"wayfare/models"
	"wayfare/rdx"
)

const tripEventsChannel = "trip-events"

// Emit publishes a record-change event. Going through Redis pub/sub instead
// of straight to the hub keeps multiple server instances in sync.
func Emit(ctx context.Context, event models.TripEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, tripEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event: %v", err)
	}
}

// StartSyncWorker subscribes to the trip-events channel and fans each event
// out to the websocket clients watching that trip. Runs until the context
// is cancelled.
func StartSyncWorker(ctx context.Context, hub *live.Hub) {
	sub := rdx.Conn.Subscribe(ctx, tripEventsChannel)
	defer sub.Close()
	ch := sub.Channel()

	log.Println("[SyncWorker] Listening for trip events...")

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event models.TripEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[SyncWorker] Failed to parse event: %v", err)
				continue
			}
			hub.Broadcast(event.TripID, []byte(msg.Payload))
		case <-ctx.Done():
			return
		}
	}
}
