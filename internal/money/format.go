package money

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number data for region-qualified tags like ar-EG falls back to Latin
// digits even though the region's conventional numbering system is not
// Latin. Pinned here by base language so digits come out in the script
// the locale expects.
var defaultNumberingSystem = map[string]string{
	"ar": "arab",
	"bn": "beng",
	"fa": "arabext",
	"my": "mymr",
	"ne": "deva",
}

func withNumberingSystem(tag language.Tag) language.Tag {
	if tag.TypeForKey("nu") != "" {
		return tag
	}
	base, conf := tag.Base()
	if conf == language.No {
		return tag
	}
	nu, ok := defaultNumberingSystem[base.String()]
	if !ok {
		return tag
	}
	if pinned, err := tag.SetTypeForKey("nu", nu); err == nil {
		return pinned
	}
	return tag
}

// FormatCurrency renders integer base units as a locale-aware string
// with exactly two fraction digits, prefixed with the currency symbol
// for the locale. It never fails: an unparseable locale falls back to
// English and an unknown currency code is used verbatim as the symbol.
func FormatCurrency(base int64, currencyCode, locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	p := message.NewPrinter(withNumberingSystem(tag))

	symbol := currencyCode
	if unit, err := currency.ParseISO(currencyCode); err == nil {
		symbol = p.Sprint(currency.Symbol(unit))
	}

	// Rendering only; arithmetic stays decimal end to end.
	major, _ := ToMajorUnits(base).Float64()
	amount := p.Sprint(number.Decimal(major,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	return symbol + " " + amount
}
