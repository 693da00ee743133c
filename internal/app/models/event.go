package models

import "time"

// Event defines an event published by an organization, based on the 'events'
// table. The booking window and event date are each independently optional.
type Event struct {
	UUID         string     `json:"eventUUID" db:"event_uuid"`
	Name         string     `json:"eventName" db:"event_name"`
	BDEUUID      string     `json:"bdeUUID" db:"bde_uuid"`
	BookingStart *time.Time `json:"bookingStart,omitempty" db:"booking_start"`
	BookingEnd   *time.Time `json:"bookingEnd,omitempty" db:"booking_end"`
	EventDate    *time.Time `json:"eventDate,omitempty" db:"event_date"`
	IsDraft      bool       `json:"isDraft" db:"is_draft"`
}
