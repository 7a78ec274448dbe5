// Package i18n renders the user-facing register of findings and constraint
// reasons. Technical detail strings never go through here; they stay English
// for logs and diagnostics.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// supported lists the catalog languages in preference order. The first entry
// is the fallback.
var supported = []language.Tag{
	language.English,
	language.German,
}

var matcher = language.NewMatcher(supported)

// Match negotiates a catalog language from an Accept-Language header value.
// Unparseable or empty input falls back to English.
func Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return supported[0]
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil {
		return supported[0]
	}
	_, i, _ := matcher.Match(tags...)
	return supported[i]
}

// Printer formats catalog messages in one negotiated language.
type Printer struct {
	lang string
}

// NewPrinter returns a printer for the given tag. Tags outside the catalog
// fall back to English.
func NewPrinter(tag language.Tag) *Printer {
	base, _ := tag.Base()
	lang := base.String()
	if _, ok := catalog[lang]; !ok {
		lang = "en"
	}
	return &Printer{lang: lang}
}

// T formats the catalog entry for key. Keys missing from the printer's
// language fall back to English; keys missing entirely come back verbatim,
// which keeps a forgotten entry visible instead of silently blank.
func (p *Printer) T(key string, args ...any) string {
	format, ok := catalog[p.lang][key]
	if !ok {
		format, ok = catalog["en"][key]
	}
	if !ok {
		return key
	}
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

// Lang returns the printer's language code.
func (p *Printer) Lang() string {
	return p.lang
}
