package dto

// SpecialtyRequest describes one specialty offered by an organization
type SpecialtyRequest struct {
	Name    string `json:"name" binding:"required"`
	MinYear int    `json:"minYear" binding:"required,min=1"`
	MaxYear int    `json:"maxYear" binding:"required,min=1"`
}

// CreateOrganizationRequest creates an organization with its owner account
type CreateOrganizationRequest struct {
	UUID        string             `json:"bdeUUID" binding:"required"`
	Name        string             `json:"bdeName" binding:"required"`
	Specialties []SpecialtyRequest `json:"specialties" binding:"required,dive"`
	OwnerUUID   string             `json:"ownerUUID" binding:"required"`
	OwnerEmail  string             `json:"ownerEmail" binding:"required,email"`
}
