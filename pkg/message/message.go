package message

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Formatter renders a message key with positional arguments.
type Formatter interface {
	Format(key string, args ...any) string
}

// DefaultLanguage is used when no language is requested.
var DefaultLanguage = language.English

// Translator is a Formatter backed by the built-in catalog.
// It is safe for concurrent use.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

var builtin = newCatalog()

// NewTranslator returns a Translator for tag. Unsupported languages fall back
// to English.
func NewTranslator(tag language.Tag) *Translator {
	matched, _, _ := language.NewMatcher(SupportedLanguages()).Match(tag)
	base, _ := matched.Base()
	tag = language.Make(base.String())
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(builtin)),
	}
}

// ParseLanguage parses a BCP 47 tag such as "en" or "de-DE".
// An empty string yields DefaultLanguage.
func ParseLanguage(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLanguage, nil
	}
	return language.Parse(s)
}

// Language returns the language messages are rendered in.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// Format renders key with args. Unknown keys are rendered as format strings.
func (t *Translator) Format(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// SupportedLanguages lists the languages with a translation for every key.
func SupportedLanguages() []language.Tag {
	return []language.Tag{language.English, language.German}
}

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	for key, text := range english {
		_ = b.SetString(language.English, key, text)
	}
	for key, text := range german {
		_ = b.SetString(language.German, key, text)
	}
	return b
}
