package sku

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ComposeHuman builds the hyphen-delimited display SKU from fixed-width
// code fields. Inputs are expected to be normalized already; the
// composer performs no validation and no I/O.
func ComposeHuman(brandCode, categoryCode, subcategoryCode, quantityCode, productSeq string) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s", brandCode, categoryCode, subcategoryCode, quantityCode, productSeq)
}

// ComposeNumeric builds the compact delimiter-free SKU from the same
// fields as ComposeHuman.
func ComposeNumeric(brandCode, categoryCode, subcategoryCode, quantityCode, productSeq string) string {
	return brandCode + categoryCode + subcategoryCode + quantityCode + productSeq
}

// Slugify derives a URL-safe token from a display name: alphanumeric
// runes are lower-cased, every other rune becomes '-', and leading or
// trailing dashes are stripped. Idempotent on already-slugged input.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteByte('-')
		}
	}
	return strings.Trim(b.String(), "-")
}

// NormalizeBrand left-zero-pads a brand code to 3 characters.
func NormalizeBrand(code string) string {
	return zeroPad(code, 3)
}

// NormalizeCategory left-zero-pads a category code to 2 characters.
func NormalizeCategory(code string) string {
	return zeroPad(code, 2)
}

// NormalizeSingle reduces a subcategory or quantity code to its single
// trailing character, defaulting to "0" when empty. A caller sending
// "12" therefore allocates under "2"; this mirrors the reference
// behavior and is load-bearing for counter keying. The trailing
// character is a rune, not a byte, so multibyte input stays valid
// UTF-8.
func NormalizeSingle(code string) string {
	if code == "" {
		return "0"
	}
	r, _ := utf8.DecodeLastRuneInString(code)
	return string(r)
}

// FormatSeq zero-pads a sequence number to at least 2 digits.
func FormatSeq(seq int) string {
	return fmt.Sprintf("%02d", seq)
}

func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
