// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/coopcost/internal/model"
)

// FormatCost formats a USD cost value.
// e.g., 1234.5 -> "$1,235", 42.126 -> "$42.13"
func FormatCost(cost float64) string {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return "$" + strconv.FormatFloat(cost, 'g', -1, 64)
	}
	if cost < 0 {
		return "-" + FormatCost(-cost)
	}
	if cost >= math.MaxInt64 {
		return "$" + strconv.FormatFloat(cost, 'g', 4, 64)
	}
	if cost >= 1000 {
		return "$" + FormatNumber(int64(math.Round(cost)))
	}
	return fmt.Sprintf("$%.2f", cost)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}

	var result strings.Builder
	result.WriteString(sign)
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > len(sign) {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 fraction, dropping trailing zeros.
// e.g., 0.065 -> "6.5%", 0.3 -> "30%"
func FormatPercent(f float64) string {
	return trimFloat(f*100, 2) + "%"
}

// FormatOrdinal formats 1 -> "1st", 12 -> "12th", 23 -> "23rd".
func FormatOrdinal(n int64) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.FormatInt(n, 10) + suffix
}

// FormatValue formats a variable setting per its display-format tag.
// Text settings are returned as written.
func FormatValue(f model.Format, v model.Value) string {
	if v.IsText() {
		return v.String()
	}
	x := v.Float()
	switch f {
	case model.FormatCurrency:
		if x == math.Trunc(x) {
			if x < 0 {
				return "-$" + FormatNumber(int64(-x))
			}
			return "$" + FormatNumber(int64(x))
		}
		return FormatCost(x)
	case model.FormatPercent:
		return FormatPercent(x)
	case model.FormatCount:
		if x == math.Trunc(x) {
			return FormatNumber(int64(x))
		}
		return trimFloat(x, 1)
	case model.FormatOrdinal:
		return FormatOrdinal(int64(math.Round(x)))
	default:
		return v.String()
	}
}

// FormatSetting formats v for display: the choice label for discrete
// variables, FormatValue otherwise.
func FormatSetting(variable model.Variable, v model.Value) string {
	if c, ok := variable.Domain.(model.Choices); ok && c.Contains(v) {
		return c.Label(v)
	}
	return FormatValue(variable.Format, v)
}

func trimFloat(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
