// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatEuro formats an amount in euros with thousand separators. Whole
// amounts drop the decimals; fractional ones keep two.
// e.g., 185000 -> "€185,000", 1250.5 -> "€1,250.50"
func FormatEuro(v float64) string {
	if v < 0 {
		return "-" + FormatEuro(-v)
	}
	whole := math.Trunc(v)
	if v == whole {
		return "€" + FormatNumber(int64(whole))
	}
	return fmt.Sprintf("€%s.%02d", FormatNumber(int64(whole)), int(math.Round((v-whole)*100)))
}

// FormatEuroPerMonth formats a monthly amount, e.g. "€1,048/mo".
func FormatEuroPerMonth(v float64) string {
	return FormatEuro(v) + "/mo"
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatPercent0 formats a 0-100 percentage with no decimals.
func FormatPercent0(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatDelta formats an amount delta with an explicit sign.
func FormatDelta(current, previous float64) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatEuro(delta)
	}
	return "-" + FormatEuro(-delta)
}

// FormatVariance formats a spent-minus-budget variance: negative (under
// budget) shows the saved amount, positive shows the overrun with a sign.
func FormatVariance(v float64) string {
	if v > 0 {
		return "+" + FormatEuro(v)
	}
	if v < 0 {
		return "-" + FormatEuro(-v)
	}
	return FormatEuro(0)
}

// FormatRate formats an annual interest rate, e.g. 3.45 -> "3.45%".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2f%%", rate)
}

// FormatArea formats a surface in square meters.
func FormatArea(m2 float64) string {
	if m2 == math.Trunc(m2) {
		return fmt.Sprintf("%.0f m²", m2)
	}
	return fmt.Sprintf("%.1f m²", m2)
}

// FormatConsumption formats an energy consumption figure.
func FormatConsumption(kwh float64) string {
	return fmt.Sprintf("%.0f kWh/m²/yr", kwh)
}

// FormatEmissions formats a greenhouse-gas emissions figure.
func FormatEmissions(kg float64) string {
	return fmt.Sprintf("%.0f kgCO₂/m²/yr", kg)
}
