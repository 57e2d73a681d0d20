// Package events defines the booking lifecycle events published to Kafka.
package events

import "time"

// TopicBookingEvents is the topic carrying all booking lifecycle events.
const TopicBookingEvents = "booking.events"

// Event type names.
const (
	BookingCreated   = "booking.created"
	BookingApproved  = "booking.approved"
	BookingRejected  = "booking.rejected"
	BookingCancelled = "booking.cancelled"
)

// BookingCreatedEvent is published when a booker reserves an item.
type BookingCreatedEvent struct {
	BookingID  int64     `json:"bookingId"`
	ItemID     int64     `json:"itemId"`
	OwnerID    int64     `json:"ownerId"`
	BookerID   int64     `json:"bookerId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	OccurredAt time.Time `json:"occurredAt"`
}

// BookingDecisionEvent is published when the item owner approves or rejects
// a booking, or the booker cancels it.
type BookingDecisionEvent struct {
	BookingID  int64     `json:"bookingId"`
	ItemID     int64     `json:"itemId"`
	OwnerID    int64     `json:"ownerId"`
	BookerID   int64     `json:"bookerId"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurredAt"`
}
