package entities

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"communibase/internal/domain"
	"communibase/pkg/communibase"
	"communibase/pkg/databag"
	"communibase/pkg/tz"
)

// DefaultEntityType is the namespace event fields are stored under.
const DefaultEntityType = "event"

// Event is a registration-managed event backed by a generic record. Fields
// are read from the record on every call; nothing is validated up front.
// An Event is not safe for concurrent use.
type Event struct {
	bag                *databag.DataBag
	entityType         string
	loc                *time.Location
	now                func() time.Time
	registeredStatuses domain.StatusSet
}

type Option func(*Event)

// WithEntityType stores the event under a namespace other than "event".
func WithEntityType(entityType string) Option {
	return func(e *Event) {
		if entityType != "" {
			e.entityType = entityType
		}
	}
}

// WithLocation sets the zone record dates are converted to.
func WithLocation(loc *time.Location) Option {
	return func(e *Event) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Event) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRegisteredStatuses replaces the set of statuses that count as
// registered.
func WithRegisteredStatuses(statuses ...string) Option {
	return func(e *Event) {
		e.registeredStatuses = domain.NewStatusSet(statuses...)
	}
}

func newEvent(opts []Option) (*Event, error) {
	e := &Event{
		entityType:         DefaultEntityType,
		loc:                tz.Amsterdam,
		now:                time.Now,
		registeredStatuses: domain.RegisteredStatuses(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := databag.ValidateSegment(e.entityType); err != nil {
		return nil, fmt.Errorf("new event: entity type: %w", err)
	}
	return e, nil
}

// NewEvent builds an Event from the fields of an event record.
func NewEvent(record map[string]any, opts ...Option) (*Event, error) {
	e, err := newEvent(opts)
	if err != nil {
		return nil, err
	}
	bag, err := databag.FromEntityData(e.entityType, record)
	if err != nil {
		return nil, fmt.Errorf("new event: %w", err)
	}
	e.bag = bag
	return e, nil
}

// FromDataBag wraps a bag that already holds the event namespace. The bag
// is shared, so mutations are visible through it.
func FromDataBag(bag *databag.DataBag, opts ...Option) (*Event, error) {
	e, err := newEvent(opts)
	if err != nil {
		return nil, err
	}
	e.bag = bag
	return e, nil
}

func (e *Event) path(field string) string {
	return databag.Path(e.entityType, field)
}

func (e *Event) EntityType() string {
	return e.entityType
}

func (e *Event) DataBag() *databag.DataBag {
	return e.bag
}

// Record returns the event fields as a plain map, e.g. for storage.
func (e *Event) Record() (map[string]any, error) {
	return e.bag.EntityData(e.entityType)
}

func (e *Event) ID() (communibase.ID, error) {
	return communibase.ParseID(e.bag.String(e.path("_id"), ""))
}

func (e *Event) Status() string {
	return e.bag.String(e.path("status"), "")
}

func (e *Event) IsReady() bool {
	return e.Status() == domain.StatusReady
}

// MaxParticipants returns the participant limit; ok is false when the event
// has none.
func (e *Event) MaxParticipants() (limit int, ok bool) {
	return e.bag.Int(e.path("maxParticipants"))
}

func (e *Event) IsFullyBooked() bool {
	limit, ok := e.MaxParticipants()
	if !ok {
		return false
	}
	return e.registeredCount() >= limit
}

// Participations returns a copy of the participants list.
func (e *Event) Participations() []Participation {
	var out []Participation
	e.eachParticipation(func(_ int, p Participation) bool {
		out = append(out, p)
		return true
	})
	return out
}

// RegisteredParticipantsPersonIDs returns the person ids of registered
// participants in list order.
func (e *Event) RegisteredParticipantsPersonIDs() (communibase.IDCollection, error) {
	var ids []string
	e.eachParticipation(func(_ int, p Participation) bool {
		if e.registeredStatuses.Contains(p.Status) {
			ids = append(ids, p.PersonID)
		}
		return true
	})
	return communibase.IDsFromStrings(ids)
}

func (e *Event) IsRegisteredParticipant(participant Participant) bool {
	id := participant.ID()
	found := false
	e.eachParticipation(func(_ int, p Participation) bool {
		if e.registeredStatuses.Contains(p.Status) && id.Matches(p.PersonID) {
			found = true
		}
		return !found
	})
	return found
}

// StartDate returns the event start. ok is false when no start is set.
func (e *Event) StartDate() (time.Time, bool, error) {
	return e.date("startDate")
}

func (e *Event) RegistrationStartDate() (time.Time, bool, error) {
	return e.date("registrationStartDate")
}

func (e *Event) RegistrationEndDate() (time.Time, bool, error) {
	return e.date("registrationEndDate")
}

func (e *Event) date(field string) (time.Time, bool, error) {
	s := e.bag.String(e.path(field), "")
	if s == "" {
		return time.Time{}, false, nil
	}
	t, err := tz.ParseISO8601(s, e.loc)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("%w: %s %q", domain.ErrInvalidDate, field, s)
	}
	return t, true, nil
}

func (e *Event) registeredCount() int {
	n := 0
	e.eachParticipation(func(_ int, p Participation) bool {
		if e.registeredStatuses.Contains(p.Status) {
			n++
		}
		return true
	})
	return n
}

// eachParticipation calls fn with the index and decoded value of every
// participants entry until fn returns false.
func (e *Event) eachParticipation(fn func(i int, p Participation) bool) {
	list := e.bag.Get(e.path("participants"))
	if !list.IsArray() {
		return
	}
	i := 0
	list.ForEach(func(_, v gjson.Result) bool {
		p := Participation{
			PersonID: v.Get("personId").String(),
			Status:   v.Get("status").String(),
		}
		if d := v.Get("debtorId"); d.Exists() && d.Type != gjson.Null {
			s := d.String()
			p.DebtorID = &s
		}
		cont := fn(i, p)
		i++
		return cont
	})
}

// indexOf returns the position of id in the participants list, or -1.
// Stored person ids are compared regardless of hex case.
func (e *Event) indexOf(id communibase.ID) int {
	idx := -1
	e.eachParticipation(func(i int, p Participation) bool {
		if id.Matches(p.PersonID) {
			idx = i
			return false
		}
		return true
	})
	return idx
}
