package render

import (
	"countries/pkg/domain"
	"strings"

	"github.com/dustin/go-humanize"
)

// NotAvailable stands in for a missing optional field.
const NotAvailable = "N/A"

// NoBorders is shown for a country without neighbours.
const NoBorders = "None"

// Population formats n with thousands separators.
func Population(n int64) string {
	return humanize.Comma(n)
}

// NativeName returns the common native name listed first by the source.
func NativeName(c domain.Country) string {
	if len(c.NativeNames) == 0 || c.NativeNames[0].Common == "" {
		return NotAvailable
	}

	return c.NativeNames[0].Common
}

// Currencies joins currency names in payload order, or N/A when there are none.
func Currencies(c domain.Country) string {
	names := make([]string, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		names = append(names, cur.Name)
	}

	return JoinOrNA(names)
}

// Languages joins language names in payload order, or N/A when there are none.
func Languages(c domain.Country) string {
	names := make([]string, 0, len(c.Languages))
	for _, l := range c.Languages {
		names = append(names, l.Name)
	}

	return JoinOrNA(names)
}

// OrNA returns s, or NotAvailable when s is empty.
func OrNA(s string) string {
	if s == "" {
		return NotAvailable
	}

	return s
}

// JoinOrNA joins the non-empty values with ", ", or returns NotAvailable.
func JoinOrNA(values []string) string {
	kept := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			kept = append(kept, v)
		}
	}
	if len(kept) == 0 {
		return NotAvailable
	}

	return strings.Join(kept, ", ")
}
