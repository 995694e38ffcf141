package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"communibase/internal/config"
	"communibase/internal/domain"
	"communibase/internal/domain/entities"
	"communibase/internal/ports/input"
	"communibase/internal/ports/output"
	"communibase/pkg/communibase"
	"communibase/pkg/tz"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

// RegistrationService loads an event record, applies a registration change
// and stores the record again when the change succeeds.
type RegistrationService struct {
	store      output.EventStore
	translator output.Translator
	entityType string
	loc        *time.Location
	now        func() time.Time
	log        *slog.Logger
}

func NewRegistrationService(
	store output.EventStore,
	translator output.Translator,
	cfg *config.Config,
	log *slog.Logger,
) *RegistrationService {
	if log == nil {
		log = slog.Default()
	}
	s := &RegistrationService{
		store:      store,
		translator: translator,
		entityType: entities.DefaultEntityType,
		loc:        tz.Amsterdam,
		now:        time.Now,
		log:        log,
	}
	if cfg != nil {
		s.entityType = cfg.EntityType
		if cfg.Location != nil {
			s.loc = cfg.Location
		}
	}
	return s
}

// Register registers personID for the event and returns the message to show
// the person. debtorID may be empty. Domain refusals come back with both a
// translated message and the domain error.
func (s *RegistrationService) Register(ctx context.Context, locale, eventID, personID, debtorID string) (string, error) {
	log := s.log.With("event_id", eventID, "person_id", personID)

	person, err := parsePerson(personID)
	if err != nil {
		return s.refuse(locale, log, err)
	}
	var debtor *communibase.ID
	if debtorID != "" {
		id, err := communibase.ParseID(debtorID)
		if err != nil {
			return s.refuse(locale, log, err)
		}
		debtor = &id
	}

	id, event, err := s.load(ctx, eventID)
	if err != nil {
		return s.refuse(locale, log, err)
	}
	if err := event.RegisterParticipant(person, debtor); err != nil {
		return s.refuse(locale, log, err)
	}
	if err := s.save(ctx, id, event); err != nil {
		log.Error("saving registration failed", "err", err)
		return "", err
	}

	log.Info("participant registered", "debtor_id", debtorID)
	return s.translator.T(locale, "registration.confirmed", nil), nil
}

// Unregister cancels the registration of personID. Cancelling a person who
// is not registered succeeds without touching the record.
func (s *RegistrationService) Unregister(ctx context.Context, locale, eventID, personID string) (string, error) {
	log := s.log.With("event_id", eventID, "person_id", personID)

	person, err := parsePerson(personID)
	if err != nil {
		return s.refuse(locale, log, err)
	}
	id, event, err := s.load(ctx, eventID)
	if err != nil {
		return s.refuse(locale, log, err)
	}

	wasRegistered := event.IsRegisteredParticipant(person)
	if err := event.UnRegisterParticipant(person); err != nil {
		return s.refuse(locale, log, err)
	}
	if !wasRegistered {
		log.Debug("participant was not registered")
		return s.translator.T(locale, "registration.not_registered", nil), nil
	}
	if err := s.save(ctx, id, event); err != nil {
		log.Error("saving cancellation failed", "err", err)
		return "", err
	}

	log.Info("participant cancelled")
	return s.translator.T(locale, "registration.cancelled", nil), nil
}

// RegisteredPersonIDs lists the registered participants of an event.
func (s *RegistrationService) RegisteredPersonIDs(ctx context.Context, eventID string) ([]string, error) {
	_, event, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}
	ids, err := event.RegisteredParticipantsPersonIDs()
	if err != nil {
		return nil, fmt.Errorf("registered participants of %s: %w", eventID, err)
	}
	return ids.Strings(), nil
}

// refuse reports err to the caller. Domain errors get a translated message;
// anything else is logged and returned bare.
func (s *RegistrationService) refuse(locale string, log *slog.Logger, err error) (string, error) {
	code := domain.Code(err)
	if code == "" {
		log.Error("registration change failed", "err", err)
		return "", err
	}
	log.Debug("registration change refused", "code", code, "err", err)
	return s.translator.T(locale, domain.MessageKey(err), nil), err
}

func (s *RegistrationService) load(ctx context.Context, eventID string) (communibase.ID, *entities.Event, error) {
	id, err := communibase.ParseID(eventID)
	if err != nil {
		return communibase.ID{}, nil, err
	}
	record, err := s.store.Find(ctx, s.entityType, id.Hex())
	if err != nil {
		return communibase.ID{}, nil, err
	}
	event, err := entities.NewEvent(record,
		entities.WithEntityType(s.entityType),
		entities.WithLocation(s.loc),
		entities.WithClock(s.now),
	)
	if err != nil {
		return communibase.ID{}, nil, err
	}
	return id, event, nil
}

func (s *RegistrationService) save(ctx context.Context, id communibase.ID, event *entities.Event) error {
	record, err := event.Record()
	if err != nil {
		return fmt.Errorf("encode event %s: %w", id, err)
	}
	if err := s.store.Save(ctx, s.entityType, id.Hex(), record); err != nil {
		return fmt.Errorf("save event %s: %w", id, err)
	}
	return nil
}

func parsePerson(personID string) (entities.Person, error) {
	id, err := communibase.ParseID(personID)
	if err != nil {
		return entities.Person{}, err
	}
	return entities.NewPerson(id), nil
}
