package domain

import (
	"errors"

	"communibase/pkg/communibase"
)

// Domain errors.
var (
	ErrEventNotFound          = errors.New("event not found")
	ErrInvalidDate            = errors.New("invalid date")
	ErrActionNotAllowed       = errors.New("action not allowed")
	ErrActionNotAllowedByDate = errors.New("action not allowed by date")
	ErrAlreadyRegistered      = errors.New("participant is already registered")
	ErrFullyBooked            = errors.New("event is fully booked")
)

// ErrInvalidID is re-exported so callers only need the domain package.
var ErrInvalidID = communibase.ErrInvalidID

var codes = []struct {
	err  error
	code string
}{
	{ErrEventNotFound, "event_not_found"},
	{ErrInvalidID, "invalid_id"},
	{ErrActionNotAllowedByDate, "action_not_allowed_by_date"},
	{ErrActionNotAllowed, "action_not_allowed"},
	{ErrAlreadyRegistered, "already_registered"},
	{ErrFullyBooked, "fully_booked"},
	{ErrInvalidDate, "invalid_date"},
}

// Code returns the stable code of the first domain error found in err's
// chain, or "" when err is not a domain error. A refusal by date that wraps
// an invalid date reports the refusal.
func Code(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return ""
}

// MessageKey returns the translation key for err: "error.<code>" for domain
// errors, "error.unknown" otherwise.
func MessageKey(err error) string {
	if code := Code(err); code != "" {
		return "error." + code
	}
	return "error.unknown"
}
