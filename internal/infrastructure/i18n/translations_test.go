package i18n

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"communibase/internal/domain"
)

func newTestTranslator(buf *bytes.Buffer) *Translator {
	return NewTranslator("nl", slog.New(slog.NewTextHandler(buf, nil)))
}

func TestT_Locales(t *testing.T) {
	tr := newTestTranslator(&bytes.Buffer{})

	assert.Equal(t, "You are registered.", tr.T("en", "registration.confirmed", nil))
	assert.Equal(t, "Je bent ingeschreven.", tr.T("nl", "registration.confirmed", nil))
	assert.Equal(t, "Je bent ingeschreven.", tr.T("", "registration.confirmed", nil))
}

func TestT_FallsBackToDefaultLocale(t *testing.T) {
	tr := newTestTranslator(&bytes.Buffer{})
	assert.Equal(t, "Dit evenement is volgeboekt.", tr.T("fr", "error.fully_booked", nil))
}

func TestT_UnknownKey(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTranslator(&buf)

	assert.Equal(t, "nope.missing", tr.T("en", "nope.missing", nil))
	assert.Contains(t, buf.String(), "no message")
	assert.Equal(t, "", tr.T("en", "", nil))
}

func TestT_UnknownErrorCode(t *testing.T) {
	var buf bytes.Buffer
	tr := newTestTranslator(&buf)

	assert.Equal(t, "Something went wrong.", tr.T("en", "error.nonexistent", nil))
	assert.Equal(t, "Er is iets misgegaan.", tr.T("", "error.nonexistent", nil))
	assert.Contains(t, buf.String(), "code=nonexistent")
}

func TestNewTranslator_BadDefaultLocale(t *testing.T) {
	tr := NewTranslator("not a locale!", nil)
	assert.Equal(t, "Er is iets misgegaan.", tr.T("", "error.unknown", nil))
}

func TestMessageKey(t *testing.T) {
	assert.Equal(t, "error.fully_booked", domain.MessageKey(fmt.Errorf("x: %w", domain.ErrFullyBooked)))
	assert.Equal(t, "error.unknown", domain.MessageKey(errors.New("boom")))
}

func TestCatalogs_CoverEveryErrorCode(t *testing.T) {
	codes := []error{
		domain.ErrEventNotFound,
		domain.ErrInvalidID,
		domain.ErrInvalidDate,
		domain.ErrActionNotAllowed,
		domain.ErrActionNotAllowedByDate,
		domain.ErrAlreadyRegistered,
		domain.ErrFullyBooked,
	}
	for _, file := range catalogs {
		raw, err := fs.ReadFile(localeFS, file)
		require.NoError(t, err)
		messages := map[string]string{}
		require.NoError(t, toml.Unmarshal(raw, &messages), file)

		for _, err := range codes {
			key := domain.MessageKey(err)
			assert.NotEmpty(t, messages[key], "%s misses %s", file, key)
		}
		for key := range messages {
			assert.True(t, strings.HasPrefix(key, "error.") || strings.HasPrefix(key, "registration."), key)
		}
	}
}
