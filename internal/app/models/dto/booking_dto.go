package dto

// CreateBookingRequest books a user onto an event
type CreateBookingRequest struct {
	UserUUID  string `json:"userUUID" binding:"required"`
	EventUUID string `json:"eventUUID" binding:"required"`
}
