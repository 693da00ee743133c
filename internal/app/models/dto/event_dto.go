package dto

import "time"

// CreateEventRequest creates an event for an organization
type CreateEventRequest struct {
	Name         string     `json:"eventName" binding:"required"`
	BDEUUID      string     `json:"bdeUUID" binding:"required"`
	BookingStart *time.Time `json:"bookingStart"`
	BookingEnd   *time.Time `json:"bookingEnd"`
	EventDate    *time.Time `json:"eventDate"`
	IsDraft      bool       `json:"isDraft"`
}
