package i18n

import (
	"embed"
	"log/slog"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"communibase/internal/ports/output"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogs = []string{"active.nl.toml", "active.en.toml"}

const (
	errorPrefix     = "error."
	unknownErrorKey = errorPrefix + "unknown"
)

var _ output.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *i18n.Bundle
	defaultLanguage language.Tag
	log             *slog.Logger
}

// NewTranslator builds a Translator over the embedded catalogs. An
// unparsable defaultLocale falls back to Dutch.
func NewTranslator(defaultLocale string, log *slog.Logger) *Translator {
	if log == nil {
		log = slog.Default()
	}
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		tag = language.Dutch
	}
	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range catalogs {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			log.Warn("i18n: failed to load catalog", "file", file, "err", err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
		log:             log,
	}
}

// T renders key for locale, then the default locale. An unknown error key
// renders as error.unknown so callers always get a sentence; any other
// unknown key comes back unchanged.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}
	msg, err := t.localize(locale, key, data)
	if err == nil {
		return msg
	}

	code, isError := strings.CutPrefix(key, errorPrefix)
	if !isError || key == unknownErrorKey {
		t.log.Warn("i18n: no message", "key", key, "locale", locale, "err", err)
		return key
	}
	t.log.Warn("i18n: no message for error code", "code", code, "locale", locale)
	if msg, err := t.localize(locale, unknownErrorKey, nil); err == nil {
		return msg
	}
	return key
}

func (t *Translator) localize(locale, key string, data map[string]any) (string, error) {
	langs := make([]string, 0, 2)
	if locale != "" {
		langs = append(langs, locale)
	}
	langs = append(langs, t.defaultLanguage.String())

	return i18n.NewLocalizer(t.bundle, langs...).Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
}
