// Package i18n holds the message catalog for user-visible widget text.
// Widgets format every translatable string through Sprintf so that
// additional languages only need catalog entries, not code changes.
package i18n

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SummaryFormat is the catalog key for the list summary line.
const SummaryFormat = "Showing %d-%d of %d items."

// EmptyText is the catalog key for the empty-state block.
const EmptyText = "No results found."

func init() {
	message.Set(language.English, SummaryFormat,
		plural.Selectf(3, "%d",
			"one", "Showing %d-%d of %d item.",
			"other", "Showing %d-%d of %d items.",
		))
	message.SetString(language.English, EmptyText, "No results found.")
}

var printer = message.NewPrinter(language.English)

// Sprintf formats a catalog message in the active language.
func Sprintf(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
