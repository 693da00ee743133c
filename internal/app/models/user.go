package models

// UnregisteredUser is an approved member whose account credentials are not
// completed yet. It maps the 'unregistered_users' view.
type UnregisteredUser struct {
	UUID        string       `json:"userUUID" db:"uuid"`
	Email       string       `json:"email" db:"email"`
	BDEUUID     string       `json:"bdeUUID" db:"bde_uuid"`
	FirstName   *string      `json:"firstname,omitempty" db:"firstname"`
	LastName    *string      `json:"lastname,omitempty" db:"lastname"`
	Permissions []Permission `json:"permissions"`
	Member      bool         `json:"member" db:"member"`
}

// RegisteredUser is a member with completed credentials and a chosen
// specialty. It maps the 'registered_users' view.
type RegisteredUser struct {
	UUID          string       `json:"userUUID" db:"uuid"`
	Email         string       `json:"email" db:"email"`
	BDEUUID       string       `json:"bdeUUID" db:"bde_uuid"`
	FirstName     string       `json:"firstname" db:"firstname"`
	LastName      string       `json:"lastname" db:"lastname"`
	Password      string       `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	SpecialtyName string       `json:"specialty" db:"specialty_name"`
	SpecialtyYear int          `json:"specialtyYear" db:"specialty_year"`
	Permissions   []Permission `json:"permissions"`
	Member        bool         `json:"member" db:"member"`
}

// User is the tagged union of the two lifecycle shapes of one identity.
// Exactly one side is set; the decision is made once, at row-mapping time,
// from the presence of a stored credential.
type User struct {
	Unregistered *UnregisteredUser `json:"unregistered,omitempty"`
	Registered   *RegisteredUser   `json:"registered,omitempty"`
}

// IsRegistered reports which side of the union is populated.
func (u User) IsRegistered() bool {
	return u.Registered != nil
}

// UUID returns the identity shared by both shapes.
func (u User) UUID() string {
	if u.Registered != nil {
		return u.Registered.UUID
	}
	if u.Unregistered != nil {
		return u.Unregistered.UUID
	}
	return ""
}

// Email returns the email shared by both shapes.
func (u User) Email() string {
	if u.Registered != nil {
		return u.Registered.Email
	}
	if u.Unregistered != nil {
		return u.Unregistered.Email
	}
	return ""
}

// Permissions returns the permission set of whichever shape is populated.
func (u User) Permissions() []Permission {
	if u.Registered != nil {
		return u.Registered.Permissions
	}
	if u.Unregistered != nil {
		return u.Unregistered.Permissions
	}
	return nil
}

// PartialUser is the reduced user projection attached to booking listings.
type PartialUser struct {
	UUID      string  `json:"userUUID" db:"uuid"`
	Email     string  `json:"email" db:"email"`
	FirstName *string `json:"firstname,omitempty" db:"firstname"`
	LastName  *string `json:"lastname,omitempty" db:"lastname"`
}
