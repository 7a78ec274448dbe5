package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   language.Tag
	}{
		{name: "empty header falls back to English", header: "", want: language.English},
		{name: "plain German", header: "de", want: language.German},
		{name: "regional German", header: "de-AT", want: language.German},
		{name: "weighted preference", header: "de-DE,de;q=0.9,en;q=0.8", want: language.German},
		{name: "unsupported language falls back", header: "fr-FR", want: language.English},
		{name: "garbage falls back", header: ";;;", want: language.English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.header))
		})
	}
}

func TestPrinter(t *testing.T) {
	en := NewPrinter(language.English)
	de := NewPrinter(language.German)

	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "de", de.Lang())

	assert.Equal(t, "granite", en.T("material.granite"))
	assert.Equal(t, "Granit", de.T("material.granite"))

	assert.Equal(t, "A granite top must be at least 18 mm thick.", en.T("rule.mat01", "granite", 18.0))
	assert.Equal(t, "Eine Platte aus Granit muss mindestens 18 mm stark sein.", de.T("rule.mat01", "Granit", 18.0))
}

func TestPrinterFallsBackToEnglish(t *testing.T) {
	fr := NewPrinter(language.French)
	assert.Equal(t, "en", fr.Lang())
	assert.Equal(t, "granite", fr.T("material.granite"))
}

func TestPrinterMissingKeyStaysVisible(t *testing.T) {
	en := NewPrinter(language.English)
	assert.Equal(t, "rule.nope", en.T("rule.nope"))
}

func TestEnglishCatalogCoversEveryKey(t *testing.T) {
	// English is the fallback language; a key present elsewhere but missing
	// from English would render verbatim.
	for lang, entries := range catalog {
		if lang == "en" {
			continue
		}
		for key := range entries {
			_, ok := catalog["en"][key]
			assert.True(t, ok, "key %q in %q missing from en", key, lang)
		}
	}
}
