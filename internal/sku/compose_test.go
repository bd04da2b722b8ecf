package sku

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestComposeHuman(t *testing.T) {
	tests := []struct {
		name     string
		brand    string
		category string
		sub      string
		qty      string
		seq      string
		expected string
	}{
		{
			name:     "first sequence",
			brand:    "001",
			category: "01",
			sub:      "1",
			qty:      "1",
			seq:      "01",
			expected: "001-01-1-1-01",
		},
		{
			name:     "three digit sequence",
			brand:    "055",
			category: "07",
			sub:      "4",
			qty:      "2",
			seq:      "123",
			expected: "055-07-4-2-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeHuman(tt.brand, tt.category, tt.sub, tt.qty, tt.seq)
			assert.Equal(t, tt.expected, got)

			// The numeric form is the same fields without delimiters.
			assert.Equal(t, strings.ReplaceAll(got, "-", ""),
				ComposeNumeric(tt.brand, tt.category, tt.sub, tt.qty, tt.seq))
		})
	}
}

func TestComposeDeterministic(t *testing.T) {
	for i := 0; i < 3; i++ {
		assert.Equal(t, "001-01-1-1-01", ComposeHuman("001", "01", "1", "1", "01"))
		assert.Equal(t, "001011101", ComposeNumeric("001", "01", "1", "1", "01"))
	}
}

func TestComposeRoundTrip(t *testing.T) {
	// With fixed-width fields the human SKU splits back into its five
	// components, and joining those yields the numeric SKU.
	human := ComposeHuman("002", "05", "3", "9", "07")
	parts := strings.Split(human, "-")
	assert.Len(t, parts, 5)
	assert.Equal(t, []string{"002", "05", "3", "9", "07"}, parts)
	assert.Equal(t, ComposeNumeric("002", "05", "3", "9", "07"), strings.Join(parts, ""))
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "spaces and punctuation", input: "Shin Ramyun!!", expected: "shin-ramyun"},
		{name: "already slugged", input: "shin-ramyun", expected: "shin-ramyun"},
		{name: "mixed case", input: "Soy Sauce 1L", expected: "soy-sauce-1l"},
		{name: "leading and trailing separators", input: "  Lao Gan Ma  ", expected: "lao-gan-ma"},
		{name: "only punctuation", input: "!!!", expected: ""},
		{name: "empty", input: "", expected: ""},
		{name: "unicode letters", input: "Nestlé Milo", expected: "nestlé-milo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Shin Ramyun!!", "Lao Gan Ma Chili Crisp 250g", "a--b", "HALDIRAM's Chanachur"}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "Slugify must be idempotent for %q", in)
	}
}

func TestNormalization(t *testing.T) {
	assert.Equal(t, "001", NormalizeBrand("1"))
	assert.Equal(t, "012", NormalizeBrand("12"))
	assert.Equal(t, "123", NormalizeBrand("123"))

	assert.Equal(t, "01", NormalizeCategory("1"))
	assert.Equal(t, "12", NormalizeCategory("12"))

	// Trailing-character rule: longer codes keep only the last
	// character, empty codes default to "0".
	assert.Equal(t, "2", NormalizeSingle("12"))
	assert.Equal(t, "2", NormalizeSingle("2"))
	assert.Equal(t, "0", NormalizeSingle(""))

	// The trailing character is taken by rune, so multibyte input
	// yields a whole character, not a dangling continuation byte.
	assert.Equal(t, "é", NormalizeSingle("é"))
	assert.Equal(t, "é", NormalizeSingle("sé"))
	assert.True(t, utf8.ValidString(NormalizeSingle("sé")))
}

func TestNormalizationKeysCollide(t *testing.T) {
	// "12" and "2" must land on the same allocation key.
	a := NewKey(testTenantID, "1", "1", "12", "1")
	b := NewKey(testTenantID, "001", "01", "2", "1")
	assert.Equal(t, a, b)
}

func TestFormatSeq(t *testing.T) {
	assert.Equal(t, "01", FormatSeq(1))
	assert.Equal(t, "09", FormatSeq(9))
	assert.Equal(t, "10", FormatSeq(10))
	assert.Equal(t, "100", FormatSeq(100))
}
