package models

// Booking links one user to one event, based on the 'bookings' table.
type Booking struct {
	UserUUID  string `json:"userUUID" db:"user_uuid"`
	EventUUID string `json:"eventUUID" db:"event_uuid"`
}

// EventBooking is the flattened booking+event view returned by lookups.
// User is populated only by the per-event listing, which joins a partial
// user projection.
type EventBooking struct {
	UserUUID string       `json:"userUUID"`
	Event    Event        `json:"event"`
	User     *PartialUser `json:"user,omitempty"`
}
