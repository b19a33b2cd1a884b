// Package culture maps language tags to the numeric separators used when
// converting culture-formatted command-line values.
package culture

import (
	"strings"

	"golang.org/x/text/language"
)

// Format describes how a locale writes numbers.
type Format struct {
	// Decimal is the decimal separator rune.
	Decimal rune
	// Group is the digit grouping separator rune, 0 when none is common.
	Group rune
}

// Invariant is the culture-neutral format: '.' decimal, ',' grouping.
var Invariant = Format{Decimal: '.', Group: ','}

// Locales that write decimals with a comma. Grouping separators follow CLDR
// conventions closely enough for parsing purposes.
var formats = map[string]Format{
	"de": {Decimal: ',', Group: '.'},
	"fr": {Decimal: ',', Group: ' '},
	"es": {Decimal: ',', Group: '.'},
	"it": {Decimal: ',', Group: '.'},
	"pt": {Decimal: ',', Group: '.'},
	"nl": {Decimal: ',', Group: '.'},
	"sv": {Decimal: ',', Group: ' '},
	"da": {Decimal: ',', Group: '.'},
	"nb": {Decimal: ',', Group: ' '},
	"nn": {Decimal: ',', Group: ' '},
	"fi": {Decimal: ',', Group: ' '},
	"pl": {Decimal: ',', Group: ' '},
	"cs": {Decimal: ',', Group: ' '},
	"sk": {Decimal: ',', Group: ' '},
	"hu": {Decimal: ',', Group: ' '},
	"ru": {Decimal: ',', Group: ' '},
	"uk": {Decimal: ',', Group: ' '},
	"tr": {Decimal: ',', Group: '.'},
	"el": {Decimal: ',', Group: '.'},
	"ro": {Decimal: ',', Group: '.'},
	"bg": {Decimal: ',', Group: ' '},
	"hr": {Decimal: ',', Group: '.'},
	"sl": {Decimal: ',', Group: '.'},
	"sr": {Decimal: ',', Group: '.'},
	"lt": {Decimal: ',', Group: ' '},
	"lv": {Decimal: ',', Group: ' '},
	"et": {Decimal: ',', Group: ' '},
	"id": {Decimal: ',', Group: '.'},
	"vi": {Decimal: ',', Group: '.'},
}

// For returns the numeric format for tag. Unknown and undefined tags get the
// invariant format.
func For(tag language.Tag) Format {
	if tag == language.Und {
		return Invariant
	}
	base, _ := tag.Base()
	if f, ok := formats[base.String()]; ok {
		return f
	}
	return Invariant
}

// Normalize rewrites a culture-formatted numeric literal into the form
// expected by strconv: grouping separators removed, the locale's decimal
// separator replaced by '.'. Non-numeric text passes through unchanged
// except for separator rewriting, which strconv then rejects.
func Normalize(text string, tag language.Tag) string {
	f := For(tag)
	if f == Invariant {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case f.Group, ' ':
			// grouping separators carry no value
		case f.Decimal:
			b.WriteRune('.')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
