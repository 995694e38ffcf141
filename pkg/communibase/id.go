// Package communibase holds the identifier types shared by records in the
// Communibase record store.
package communibase

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a string is not a well-formed record id.
var ErrInvalidID = errors.New("invalid communibase id")

// ID is a validated record identifier (a 24 character hex ObjectID).
// It keeps the string it was parsed from; ids differing only in hex case
// are Equal. The zero value is not a valid id.
type ID struct {
	oid primitive.ObjectID
	raw string
}

// ParseID validates s and returns it as an ID.
func ParseID(s string) (ID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return ID{}, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return ID{oid: oid, raw: s}, nil
}

// MustParseID is like ParseID but panics on invalid input. Meant for
// constants and tests.
func MustParseID(s string) ID {
	id, err := ParseID(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String returns the id as it was parsed.
func (id ID) String() string {
	if id.raw == "" {
		return id.oid.Hex()
	}
	return id.raw
}

// Hex returns the canonical lowercase form, for use as a lookup key.
func (id ID) Hex() string {
	return id.oid.Hex()
}

// Equal reports whether both ids name the same record.
func (id ID) Equal(other ID) bool {
	return id.oid == other.oid
}

// Matches reports whether s is a valid id naming the same record as id.
func (id ID) Matches(s string) bool {
	other, err := ParseID(s)
	return err == nil && id.Equal(other)
}

func (id ID) IsZero() bool {
	return id.oid.IsZero()
}
