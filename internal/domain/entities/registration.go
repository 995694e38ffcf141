package entities

import (
	"fmt"
	"strconv"
	"time"

	"communibase/internal/domain"
	"communibase/pkg/communibase"
	"communibase/pkg/databag"
	"communibase/pkg/tz"
)

type guard func() error

// check returns the first failing guard's error.
func check(guards ...guard) error {
	for _, g := range guards {
		if err := g(); err != nil {
			return err
		}
	}
	return nil
}

// RegisterParticipant registers participant, optionally billing debtorID.
// A cancelled participant keeps its entry and is flipped back to registered.
//
// Guards run in order and the first failure is returned with nothing
// written: already started, not ready, registration window closed, already
// registered, fully booked.
func (e *Event) RegisterParticipant(participant Participant, debtorID *communibase.ID) error {
	now := e.now()
	err := check(
		func() error { return e.guardNotStarted(now) },
		e.guardReady,
		func() error { return e.guardRegistrationOpen(now) },
		func() error { return e.guardNotRegistered(participant) },
		e.guardNotFullyBooked,
	)
	if err != nil {
		return err
	}

	id := participant.ID()
	participants := e.path("participants")

	if i := e.indexOf(id); i >= 0 {
		entry := databag.Path(participants, strconv.Itoa(i))
		return e.bag.Update(func(tx *databag.DataBag) error {
			if err := tx.Set(databag.Path(entry, "status"), domain.ParticipantStatusRegistered); err != nil {
				return err
			}
			if debtorID != nil {
				return tx.Set(databag.Path(entry, "debtorId"), debtorID.String())
			}
			return nil
		})
	}

	p := Participation{PersonID: id.String(), Status: domain.ParticipantStatusRegistered}
	if debtorID != nil {
		d := debtorID.String()
		p.DebtorID = &d
	}
	return e.bag.Append(participants, p)
}

// UnRegisterParticipant cancels participant's registration. Cancelling a
// participant that is not registered is a no-op.
func (e *Event) UnRegisterParticipant(participant Participant) error {
	if err := e.guardNotStarted(e.now()); err != nil {
		return err
	}
	id := participant.ID()
	var registered []int
	e.eachParticipation(func(i int, p Participation) bool {
		if id.Matches(p.PersonID) && e.registeredStatuses.Contains(p.Status) {
			registered = append(registered, i)
		}
		return true
	})
	if len(registered) == 0 {
		return nil
	}
	return e.bag.Update(func(tx *databag.DataBag) error {
		for _, i := range registered {
			status := databag.Path(e.path("participants"), strconv.Itoa(i), "status")
			if err := tx.Set(status, domain.ParticipantStatusCancelled); err != nil {
				return err
			}
		}
		return nil
	})
}

// guardNotStarted fails once the start date has passed. A start date that
// cannot be read counts as started.
func (e *Event) guardNotStarted(now time.Time) error {
	start, ok, err := e.StartDate()
	if err != nil {
		return fmt.Errorf("%w: event is already started: %w", domain.ErrActionNotAllowedByDate, err)
	}
	if !ok || now.Before(start) {
		return nil
	}
	return fmt.Errorf("%w: event is already started", domain.ErrActionNotAllowedByDate)
}

func (e *Event) guardReady() error {
	if !e.IsReady() {
		return fmt.Errorf("%w: event status is not ready", domain.ErrActionNotAllowed)
	}
	return nil
}

func (e *Event) guardRegistrationOpen(now time.Time) error {
	start, ok, err := e.RegistrationStartDate()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrActionNotAllowedByDate, err)
	}
	if ok && now.Before(start) {
		return fmt.Errorf("%w: registration starts on %s", domain.ErrActionNotAllowedByDate, tz.Format(start))
	}
	end, ok, err := e.RegistrationEndDate()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrActionNotAllowedByDate, err)
	}
	if ok && now.After(end) {
		return fmt.Errorf("%w: registration ended on %s", domain.ErrActionNotAllowedByDate, tz.Format(end))
	}
	return nil
}

func (e *Event) guardNotRegistered(participant Participant) error {
	if e.IsRegisteredParticipant(participant) {
		return domain.ErrAlreadyRegistered
	}
	return nil
}

func (e *Event) guardNotFullyBooked() error {
	if e.IsFullyBooked() {
		return domain.ErrFullyBooked
	}
	return nil
}
