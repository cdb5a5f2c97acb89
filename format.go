package latexexpr

import (
	"fmt"
	"math"
)

// Default format specs. Formats are fmt verbs applied to a float64
// ("%.4g", "%.3f", "%e", ...), kept as strings so callers can override
// them per node the way the original keyword arguments did.
const (
	defaultFormat     = "%.4g"
	defaultIntFormat  = "%.0f"
	defaultUnitFormat = `\mathrm{%s}`
)

// numeralStyle selects the negative-number parenthesization flavor.
// Leaves keep the spaced `\left( -6.543 \right)` wrap with a fixed
// 4-significant-digit rendering; operations and expressions wrap
// tightly and honor the node's format spec. Both spellings are part of
// the output compatibility surface.
type numeralStyle int

const (
	leafNumeral numeralStyle = iota
	resultNumeral
)

// formatNumeral renders value according to the magnitude rules shared
// by every node kind: scientific notation when exponent is nonzero,
// otherwise integer rounding beyond +-1000 and four significant digits
// within, with negative values parenthesized.
func formatNumeral(value float64, format string, exponent int, style numeralStyle) string {
	if exponent == 0 {
		switch {
		case value < -1000:
			return fmt.Sprintf(`\left( % .0f \right)`, value)
		case value < 0:
			if style == leafNumeral {
				return fmt.Sprintf(`\left( % .4g \right)`, value)
			}
			return fmt.Sprintf(`\left(`+format+`\right)`, value)
		case value < 1000:
			return fmt.Sprintf("% .4g", value)
		default:
			return fmt.Sprintf("% .0f", value)
		}
	}
	mantissa := value * math.Pow(10, float64(-exponent))
	term := fmt.Sprintf(format, mantissa) + fmt.Sprintf(` \cdot 10^{%d}`, exponent)
	if value < 0 {
		return fmt.Sprintf(`\left( %s \right)`, term)
	}
	return fmt.Sprintf(`{ %s }`, term)
}

// deriveFormat returns the default format spec for a value: four
// significant digits below 1000, integer rounding above.
func deriveFormat(value float64) string {
	if value < 1000 {
		return defaultFormat
	}
	return defaultIntFormat
}

// pick returns override when set, otherwise the node's own spec.
func pickFormat(override, own string) string {
	if override != "" {
		return override
	}
	return own
}

func pickExponent(override, own int) int {
	if override != 0 {
		return override
	}
	return own
}
