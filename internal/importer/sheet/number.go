package sheet

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseNumber reads a measurement or price cell such as "1,200", "1.200,5"
// or "1500 mm". Thousands separators and a trailing unit are ignored.
func parseNumber(s string, decimalComma bool) (decimal.Decimal, error) {
	clean := strings.TrimSpace(strings.ToLower(s))
	clean = strings.TrimSuffix(clean, "mm")
	clean = strings.NewReplacer(" ", "", "rs.", "", "rs", "").Replace(clean)

	if decimalComma {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	} else {
		clean = strings.ReplaceAll(clean, ",", "")
	}

	return decimal.NewFromString(clean)
}
