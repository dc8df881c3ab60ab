// Package format renders derived financial figures as display strings.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/skylens/drone-roi/pkg/constants"
	"github.com/skylens/drone-roi/pkg/mathutil"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
// The amount is rounded to cents first so sub-cent negatives do not render as "-$0.00".
func Currency(amount float64) string {
	amount = mathutil.Round(amount)
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	amount = mathutil.Round(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	formatted := formatPositiveCurrency(math.Abs(amount))
	return sign + formatted
}

// Percent renders a fractional rate as a percentage string (e.g., 2.5 -> "250.0%").
// An unbounded ROI ratio renders as the saturation symbol.
func Percent(rate float64) string {
	if math.IsInf(rate, 0) {
		return constants.InfinitySymbol
	}
	return fmt.Sprintf("%.1f%%", mathutil.ToPercent(rate))
}

// Months renders a payback period in months (e.g., "4.1 months"). A payback
// that never occurs renders as the saturation symbol.
func Months(months float64) string {
	if math.IsInf(months, 0) {
		return constants.InfinitySymbol
	}
	return fmt.Sprintf("%.1f months", months)
}

func formatPositiveCurrency(value float64) string {
	formatted := fmt.Sprintf("%.2f", value)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}
