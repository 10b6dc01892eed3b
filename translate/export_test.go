package translate

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SetLanguage replaces the printer with one for the given language tag.
func SetLanguage(tag language.Tag) {
	mutex.Lock()
	defer mutex.Unlock()

	printer = message.NewPrinter(tag)
}
