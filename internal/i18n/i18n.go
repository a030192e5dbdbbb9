// Package i18n localizes the bridge's own fixed messages.
//
// Messages coming from the processor or from adapter errors are passed
// through untouched; only the catalog keys registered here are translated.
package i18n

import (
	"context"
	"net/http"
	"strings"

	"github.com/DanielPopoola/redeban-payment-bridge/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type ctxKey struct{}

var (
	supported = []language.Tag{language.English, language.Spanish}
	matcher   = language.NewMatcher(supported)
)

var spanish = map[string]string{
	domain.MsgInitialized:        "SDK inicializado correctamente",
	domain.MsgInvalidExpiration:  "Mes o año de expiración inválido",
	domain.MsgInvalidCardData:    "Datos de tarjeta inválidos",
	domain.MsgCardNull:           "La tarjeta es nula",
	domain.MsgUnknownError:       "Error desconocido",
	domain.MsgNotImplemented:     "Método no implementado",
	domain.MsgInvalidArgumentFmt: "el argumento %s debe ser de tipo %s",
	domain.MsgInvalidBody:        "el cuerpo de la solicitud debe ser un objeto JSON",
	domain.MsgUnauthorized:       "token bearer ausente o inválido",
	domain.MsgTimeout:            "la solicitud expiró esperando la respuesta",
	domain.MsgInternal:           "ocurrió un error interno",
}

func init() {
	for key, translation := range spanish {
		_ = message.SetString(language.English, key, key)
		_ = message.SetString(language.Spanish, key, translation)
	}
}

// Default is the locale used when the caller expresses no preference.
func Default() language.Tag {
	return language.English
}

// Supported returns the locales with a catalog.
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match picks the best supported locale for the given preferences.
func Match(tags ...language.Tag) language.Tag {
	if len(tags) == 0 {
		return Default()
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return Default()
	}
	return supported[index]
}

// ResolveTag reads the Accept-Language header of r.
func ResolveTag(r *http.Request) language.Tag {
	accept := strings.TrimSpace(r.Header.Get("Accept-Language"))
	if accept == "" {
		return Default()
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil {
		return Default()
	}
	return Match(tags...)
}

func WithTag(ctx context.Context, tag language.Tag) context.Context {
	return context.WithValue(ctx, ctxKey{}, tag)
}

// TagFrom returns the locale stored in ctx, or the default.
func TagFrom(ctx context.Context) language.Tag {
	if tag, ok := ctx.Value(ctxKey{}).(language.Tag); ok {
		return tag
	}
	return Default()
}

// Sprintf formats a catalog message in the locale stored in ctx.
func Sprintf(ctx context.Context, key string, args ...any) string {
	return message.NewPrinter(TagFrom(ctx)).Sprintf(key, args...)
}
