package models

// TripEvent is a record-change message published on the sync channel so
// connected clients know to refetch their projection.
type TripEvent struct {
	TripID   string `json:"tripid"`
	RecordID string `json:"recordid,omitempty"`
	Method   string `json:"method"` // POST, PUT, DELETE, PATCH, GENERATE
	ActorID  string `json:"actor_id,omitempty"`
}
