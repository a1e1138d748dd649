// Package message turns finding keys and positional arguments into
// user-facing text.
//
// Texts live in a golang.org/x/text message catalog. English is the default
// and the fallback for languages without a translation. Arguments are
// referenced positionally (%[1]s, %[2]d, ...) so translations may reorder them.
//
//	f := message.NewTranslator(language.German)
//	f.Format(message.KeyPSUPower, "Pure Power 12", 450, 600)
package message
