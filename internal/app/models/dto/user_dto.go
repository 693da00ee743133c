package dto

// RegisterUserRequest is a join request submitted by a prospective member
type RegisterUserRequest struct {
	Email         string  `json:"email" binding:"required,email"`
	FirstName     *string `json:"firstname"`
	LastName      *string `json:"lastname"`
	BDEUUID       string  `json:"bdeUUID" binding:"required"`
	SpecialtyName string  `json:"specialtyName" binding:"required"`
	SpecialtyYear int     `json:"specialtyYear" binding:"required,min=1"`
}

// ProcessUserRequest accepts or refuses a pending join request
type ProcessUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	BDEUUID  string `json:"bdeUUID" binding:"required"`
	Accepted bool   `json:"accepted"`
}

// FinishRegistrationRequest completes an approved member account
type FinishRegistrationRequest struct {
	FirstName     string `json:"firstname" binding:"required"`
	LastName      string `json:"lastname" binding:"required"`
	Password      string `json:"password" binding:"required,min=8"`
	SpecialtyName string `json:"specialtyName" binding:"required"`
	SpecialtyYear int    `json:"specialtyYear" binding:"required,min=1"`
}
