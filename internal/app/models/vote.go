package models

import "time"

// Vote is one append-only row of the 'votes' table. Choice is nil for an
// abstention. The current vote of a user is the most recently inserted row.
type Vote struct {
	UserUUID string    `json:"userUUID" db:"user_uuid"`
	Choice   *string   `json:"liste" db:"liste"`
	VotedOn  time.Time `json:"votedOn" db:"voted_on"`
}
