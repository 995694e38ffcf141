package input

import "context"

type RegistrationUseCase interface {
	Register(ctx context.Context, locale, eventID, personID, debtorID string) (string, error)
	Unregister(ctx context.Context, locale, eventID, personID string) (string, error)
	RegisteredPersonIDs(ctx context.Context, eventID string) ([]string, error)
}
