package entities

import "communibase/pkg/communibase"

// Participant is anything that can take part in an event.
type Participant interface {
	ID() communibase.ID
}

// Participation is one participant's entry in an event's participants list.
type Participation struct {
	PersonID string  `json:"personId"`
	Status   string  `json:"status"`
	DebtorID *string `json:"debtorId"`
}

// Person is the plain Participant used when only an id is known.
type Person struct {
	id communibase.ID
}

func NewPerson(id communibase.ID) Person {
	return Person{id: id}
}

func (p Person) ID() communibase.ID {
	return p.id
}
