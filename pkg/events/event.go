package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "BATCH_TRACKING_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is a generic implementation used by the services to emit
// operational events without declaring a type per event.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewBatchTrackingCreated is emitted when a tracking record is appended to a batch.
func NewBatchTrackingCreated(batchID, trackingID uint, status string) Event {
	return BaseEvent{
		Type: "BATCH_TRACKING_CREATED",
		Data: map[string]interface{}{
			"batch_id":    batchID,
			"tracking_id": trackingID,
			"status":      status,
		},
		OccurredAt: time.Now(),
	}
}

// NewMaintenanceReported is emitted when a new maintenance log is filed.
func NewMaintenanceReported(maintenanceID, assetID uint) Event {
	return BaseEvent{
		Type: "MAINTENANCE_REPORTED",
		Data: map[string]interface{}{
			"maintenance_id": maintenanceID,
			"asset_id":       assetID,
		},
		OccurredAt: time.Now(),
	}
}
