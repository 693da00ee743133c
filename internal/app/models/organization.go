package models

// Organization defines a BDE based on the 'bde' table. It owns the set of
// specialties supplied at creation time.
type Organization struct {
	UUID        string      `json:"bdeUUID" db:"uuid" example:"f6c33e9b-2f7c-4f34-a3e7-12a1f1f0c2bb"` // Unique identifier, caller-generated
	Name        string      `json:"bdeName" db:"name" example:"Polytech Montpellier"`                 // Unique display name
	Specialties []Specialty `json:"specialties"`                                                      // Ordered by insertion
}

// Specialty defines an academic track scoped to one organization, based on
// the 'specialties' table. MinYear and MaxYear bound the eligible academic
// years, inclusive.
type Specialty struct {
	Name    string `json:"name" db:"name" example:"IG"`
	MinYear int    `json:"minYear" db:"min_year" example:"3"`
	MaxYear int    `json:"maxYear" db:"max_year" example:"5"`
}
