package models

// UserRequest is a pending application to join an organization, based on the
// 'user_requests' table. A request is either pending, promoted into an
// unregistered user (row deleted), or refused (row kept with the refused
// marker and excluded from listings).
type UserRequest struct {
	Email         string  `json:"email" db:"email"`
	FirstName     *string `json:"firstname,omitempty" db:"firstname"`
	LastName      *string `json:"lastname,omitempty" db:"lastname"`
	BDEUUID       string  `json:"bdeUUID" db:"bde_uuid"`
	SpecialtyName string  `json:"specialty" db:"specialty_name"`
	SpecialtyYear int     `json:"specialtyYear" db:"specialty_year"`
}
