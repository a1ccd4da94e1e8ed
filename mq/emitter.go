package mq

import (
	"context"
	"encoding/json"
	"log"

	"mixie/rdx"
)

const channel = "mixie:recipe-events"

type Event struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityID   string `json:"entity_id"`
	UserEmail  string `json:"user_email"`
}

// Emit publishes a lifecycle event to the Redis channel. Best effort: a
// publish failure is logged and swallowed, never surfaced to the request.
func Emit(ctx context.Context, event Event) {
	if rdx.Client == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("event marshal failed: %v", err)
		return
	}
	if err := rdx.Client.Publish(ctx, channel, payload).Err(); err != nil {
		log.Printf("event publish failed: %v", err)
	}
}
