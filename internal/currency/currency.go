// Package currency formats monetary amounts for display.
//
// The formatter is keyed by an enumerated currency code and emits
// entity-encoded text (currency symbols as HTML entities, the form the
// symbol table is defined in). Decode recovers literal symbol characters;
// every string destined for a document must go through it.
package currency

import (
	"html"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Code identifies a supported currency.
type Code string

// Supported currency codes.
const (
	USD Code = "USD"
	EUR Code = "EUR"
	GBP Code = "GBP"
	JPY Code = "JPY"
	AUD Code = "AUD"
	CAD Code = "CAD"
	CHF Code = "CHF"
	CNY Code = "CNY"
	INR Code = "INR"
	VND Code = "VND"
	KRW Code = "KRW"
	RUB Code = "RUB"
	BRL Code = "BRL"
	MXN Code = "MXN"
	SGD Code = "SGD"
	HKD Code = "HKD"
	NZD Code = "NZD"
	SEK Code = "SEK"
	NOK Code = "NOK"
	DKK Code = "DKK"
	PLN Code = "PLN"
	THB Code = "THB"
	ZAR Code = "ZAR"
)

// def describes the display rules for one currency.
type def struct {
	symbol      string // entity-encoded
	minorUnits  int32
	thousandSep string
	decimalSep  string
	symbolLast  bool // symbol trails the number (e.g. 1.234,56 €)
	spaced      bool // space between symbol and number
}

var defs = map[Code]def{
	USD: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	EUR: {symbol: "&#8364;", minorUnits: 2, thousandSep: ".", decimalSep: ",", symbolLast: true, spaced: true},
	GBP: {symbol: "&#163;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	JPY: {symbol: "&#165;", minorUnits: 0, thousandSep: ",", decimalSep: "."},
	AUD: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	CAD: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	CHF: {symbol: "CHF", minorUnits: 2, thousandSep: "'", decimalSep: ".", spaced: true},
	CNY: {symbol: "&#165;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	INR: {symbol: "&#8377;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	VND: {symbol: "&#8363;", minorUnits: 0, thousandSep: ".", decimalSep: ",", symbolLast: true, spaced: true},
	KRW: {symbol: "&#8361;", minorUnits: 0, thousandSep: ",", decimalSep: "."},
	RUB: {symbol: "&#8381;", minorUnits: 2, thousandSep: " ", decimalSep: ",", symbolLast: true, spaced: true},
	BRL: {symbol: "R&#36;", minorUnits: 2, thousandSep: ".", decimalSep: ",", spaced: true},
	MXN: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	SGD: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	HKD: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	NZD: {symbol: "&#36;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	SEK: {symbol: "kr", minorUnits: 2, thousandSep: " ", decimalSep: ",", symbolLast: true, spaced: true},
	NOK: {symbol: "kr", minorUnits: 2, thousandSep: " ", decimalSep: ",", symbolLast: true, spaced: true},
	DKK: {symbol: "kr", minorUnits: 2, thousandSep: ".", decimalSep: ",", symbolLast: true, spaced: true},
	PLN: {symbol: "z&#322;", minorUnits: 2, thousandSep: " ", decimalSep: ",", symbolLast: true, spaced: true},
	THB: {symbol: "&#3647;", minorUnits: 2, thousandSep: ",", decimalSep: "."},
	ZAR: {symbol: "R", minorUnits: 2, thousandSep: " ", decimalSep: "."},
}

// Valid reports whether code is a supported currency code.
func (c Code) Valid() bool {
	_, ok := defs[c]
	return ok
}

// Supported returns all supported currency codes, sorted.
func Supported() []Code {
	codes := make([]Code, 0, len(defs))
	for c := range defs {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// Symbol returns the decoded currency symbol for code, or "" if unsupported.
func Symbol(code Code) string {
	d, ok := defs[code]
	if !ok {
		return ""
	}
	return Decode(d.symbol)
}

// Format renders amount as entity-encoded localized monetary text for code.
// Rounding to the currency's minor units happens here and only here.
// Unsupported codes fall back to "CODE amount" so the output is never empty;
// callers are expected to have validated the code up front.
func Format(amount decimal.Decimal, code Code) string {
	d, ok := defs[code]
	if !ok {
		return string(code) + " " + amount.String()
	}

	neg := amount.IsNegative()
	fixed := amount.Abs().StringFixed(d.minorUnits)

	intPart := fixed
	fracPart := ""
	if i := strings.IndexByte(fixed, '.'); i >= 0 {
		intPart, fracPart = fixed[:i], fixed[i+1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	if !d.symbolLast {
		b.WriteString(d.symbol)
		if d.spaced {
			b.WriteByte(' ')
		}
	}
	b.WriteString(group(intPart, d.thousandSep))
	if fracPart != "" {
		b.WriteString(d.decimalSep)
		b.WriteString(fracPart)
	}
	if d.symbolLast {
		if d.spaced {
			b.WriteByte(' ')
		}
		b.WriteString(d.symbol)
	}
	return b.String()
}

// Decode converts entity-encoded formatter output into literal symbol text.
func Decode(s string) string {
	return html.UnescapeString(s)
}

// FormatPlain is Decode applied to Format: the symbol-bearing display form.
func FormatPlain(amount decimal.Decimal, code Code) string {
	return Decode(Format(amount, code))
}

// group inserts sep between every three digits of an integer string.
func group(s, sep string) string {
	n := len(s)
	if n <= 3 || sep == "" {
		return s
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteString(sep)
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
