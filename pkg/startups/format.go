package startups

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Undisclosed is shown on cards for records without funding.
const Undisclosed = "Undisclosed"

// FormatFunding renders an amount for the card grid: millions and
// thousands get one decimal and a suffix, smaller amounts are printed
// as is, and zero means undisclosed.
func FormatFunding(amount float64) string {
	switch {
	case amount == 0 || math.IsNaN(amount):
		return Undisclosed
	case amount >= 1_000_000:
		return "$" + toFixed1(amount/1_000_000) + "M"
	case amount >= 1_000:
		return "$" + toFixed1(amount/1_000) + "K"
	default:
		return "$" + strconv.FormatFloat(amount, 'f', -1, 64)
	}
}

// FormatFundingMillions renders an amount for the detail page, always in
// millions. Zero renders as "N/A".
func FormatFundingMillions(amount float64) string {
	if amount == 0 || math.IsNaN(amount) {
		return NotAvailable
	}
	return "$" + toFixed1(amount/1_000_000) + "M"
}

// toFixed1 prints x with one decimal, rounding the exact binary value.
// 1.15 is stored just below 1.15 and prints "1.1"; exact ties such as
// 1.25 round up to "1.3" where %.1f would print "1.2".
func toFixed1(x float64) string {
	if math.IsInf(x, 0) {
		return strconv.FormatFloat(x, 'f', 1, 64)
	}
	sign := ""
	if x < 0 {
		sign, x = "-", -x
	}

	tenths := new(big.Rat).Mul(new(big.Rat).SetFloat64(x), big.NewRat(10, 1))
	n, rem := new(big.Int).QuoRem(tenths.Num(), tenths.Denom(), new(big.Int))
	if rem.Lsh(rem, 1).Cmp(tenths.Denom()) >= 0 {
		n.Add(n, big.NewInt(1))
	}

	digits := n.String()
	if len(digits) < 2 {
		digits = "0" + digits
	}
	return sign + digits[:len(digits)-1] + "." + digits[len(digits)-1:]
}

// Color derives a stable avatar color from a name. The hash runs over
// UTF-16 code units with 32-bit wraparound, and the low 24 bits become
// an uppercase hex color.
func Color(name string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = int32(c) + (h << 5) - h
	}
	return fmt.Sprintf("#%06X", uint32(h)&0xFFFFFF)
}

// Initials returns the upper-cased first letters of the first two
// space separated words of name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	runes := []rune(cases.Upper(language.Und).String(b.String()))
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return string(runes)
}
