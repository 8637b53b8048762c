package document

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const notAvailable = "N/A"

var (
	printer = message.NewPrinter(language.MustParse("en-IN"))

	unsafeFilename = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
)

// Labels that title casing would get wrong.
var labelOverrides = map[string]string{
	"upvc": "uPVC",
	"ss":   "SS",
}

// Money formats an amount in rupees with Indian digit grouping.
func Money(v float64) string {
	return "Rs. " + printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

func quantity(v float64, digits int) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits)))
}

// Label turns a stored option value such as "double-glazed" into "Double Glazed".
func Label(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return notAvailable
	}

	if o, ok := labelOverrides[strings.ToLower(s)]; ok {
		return o
	}

	// Casers hold state, so each call gets its own.
	return cases.Title(language.English).String(strings.NewReplacer("-", " ", "_", " ").Replace(s))
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return notAvailable
	}

	return s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}

	return "No"
}

func formatDate(t time.Time) string {
	return t.Format("02 Jan 2006")
}

// Filename builds the download name from the quotation number and date.
func Filename(number string, at time.Time) string {
	safe := strings.Trim(unsafeFilename.ReplaceAllString(number, "_"), "_")
	if safe == "" {
		safe = "Draft"
	}

	return fmt.Sprintf("Quotation_%s_%s.pdf", safe, at.Format(time.DateOnly))
}

// percent renders a rate such as 0.18 as "18".
func percent(rate float64) string {
	return printer.Sprintf("%v", number.Decimal(rate*100, number.MaxFractionDigits(2)))
}
