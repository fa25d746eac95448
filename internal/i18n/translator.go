// Package i18n renders user-facing error messages in the caller's language.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. Failure keys match service.Kind strings.
const (
	KeyNotFound           = "not_found"
	KeyInvalidOption      = "invalid_option"
	KeyEventClosed        = "event_closed"
	KeyDuplicateBet       = "duplicate_bet"
	KeyTransientFailure   = "transient_failure"
	KeyInvariantViolation = "invariant_violation"
	KeyInvalidInput       = "invalid_input"
	KeyAlreadySettled     = "already_settled"
	KeyUnknown            = "unknown"
	KeyMalformedRequest   = "malformed_request"
)

var messages = map[language.Tag]map[string]string{
	language.English: {
		KeyNotFound:           "The requested resource was not found.",
		KeyInvalidOption:      "The selected option does not belong to this event.",
		KeyEventClosed:        "This event is no longer accepting bets.",
		KeyDuplicateBet:       "You have already placed a bet on this event.",
		KeyTransientFailure:   "The service is busy. Please try again.",
		KeyInvariantViolation: "Something went wrong while updating the odds.",
		KeyInvalidInput:       "The request contains invalid data.",
		KeyAlreadySettled:     "A winner has already been assigned to this event.",
		KeyUnknown:            "Something went wrong.",
		KeyMalformedRequest:   "The request body could not be read.",
	},
	language.Spanish: {
		KeyNotFound:           "No se encontró el recurso solicitado.",
		KeyInvalidOption:      "La opción seleccionada no pertenece a este evento.",
		KeyEventClosed:        "Este evento ya no acepta apuestas.",
		KeyDuplicateBet:       "Ya has realizado una apuesta en este evento.",
		KeyTransientFailure:   "El servicio está ocupado. Inténtalo de nuevo.",
		KeyInvariantViolation: "Algo salió mal al actualizar las cuotas.",
		KeyInvalidInput:       "La solicitud contiene datos no válidos.",
		KeyAlreadySettled:     "Este evento ya tiene un ganador asignado.",
		KeyUnknown:            "Algo salió mal.",
		KeyMalformedRequest:   "No se pudo leer el cuerpo de la solicitud.",
	},
}

// Translator picks the best supported language for a request and renders messages in it
type Translator struct {
	catalog *catalog.Builder
	tags    []language.Tag
	matcher language.Matcher
}

// NewTranslator builds the message catalog. defaultLanguage must be one of
// the supported languages; it is used when nothing in Accept-Language matches.
func NewTranslator(defaultLanguage string) (*Translator, error) {
	fallback, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to parse default language: %w", err)
	}
	if _, ok := messages[fallback]; !ok {
		return nil, fmt.Errorf("unsupported default language %q", defaultLanguage)
	}

	builder := catalog.NewBuilder(catalog.Fallback(fallback))
	// The matcher treats the first tag as the default
	tags := []language.Tag{fallback}
	for tag, msgs := range messages {
		for key, text := range msgs {
			if err := builder.SetString(tag, key, text); err != nil {
				return nil, fmt.Errorf("failed to register message %s/%s: %w", tag, key, err)
			}
		}
		if tag != fallback {
			tags = append(tags, tag)
		}
	}

	return &Translator{
		catalog: builder,
		tags:    tags,
		matcher: language.NewMatcher(tags),
	}, nil
}

// Match returns the supported language closest to an Accept-Language header value
func (t *Translator) Match(acceptLanguage string) language.Tag {
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return t.tags[0]
	}
	_, index, confidence := t.matcher.Match(desired...)
	if confidence == language.No {
		return t.tags[0]
	}
	return t.tags[index]
}

// Message renders key in the language negotiated from acceptLanguage.
// Unknown keys are returned unchanged.
func (t *Translator) Message(acceptLanguage, key string, args ...any) string {
	p := message.NewPrinter(t.Match(acceptLanguage), message.Catalog(t.catalog))
	return p.Sprintf(key, args...)
}
