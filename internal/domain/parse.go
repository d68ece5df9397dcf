package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Record dates are display strings in day/month/year order. They are never
// parsed back for logic; the id carries the sortable creation timestamp.
const dateLayout = "02/01/2006"

// ParseAmount converts raw user input into a non-negative quantity. Both ","
// and "." are accepted as decimal separator. Input that does not parse, and
// any negative or non-finite result, becomes 0. ParseFloat accepts "inf" and
// "Infinity" spellings; those values cannot be JSON-encoded and would make
// the collection unsaveable, so they are rejected here.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

// FormatDate renders t as the display date stored on a Record.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
