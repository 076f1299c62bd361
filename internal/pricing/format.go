package pricing

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMoney renders an amount the way the storefront displays prices:
// rounded to whole units with thousands separators, e.g. 12,500.
func FormatMoney(v float64) string {
	n := int64(math.Round(v))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return sign + string(out)
}

// FormatPrice prefixes the amount with the product's currency symbol.
func FormatPrice(currency string, v float64) string {
	return fmt.Sprintf("%s%s", currency, FormatMoney(v))
}
