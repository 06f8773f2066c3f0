package fixture

import (
	"math"
	"strconv"
	"strings"
)

// Header is the first line of every fixture file, split into fields.
var Header = []string{"Index", "X", "Y", "Type"}

// Row is one generated instance.
type Row struct {
	Index int
	X     float64
	Y     float64
	Type  int
}

// Fields renders r the way it appears in a fixture file. X always carries a
// decimal point ("0.0", "-1.0", "0.37"); Y and Type are written as plain
// numbers.
func (r Row) Fields() []string {
	return []string{
		strconv.Itoa(r.Index),
		formatCoord(r.X),
		strconv.FormatFloat(r.Y, 'f', -1, 64),
		strconv.Itoa(r.Type),
	}
}

// Round rounds x to the given number of decimal places, halves away from
// zero.
func Round(x float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(x*p) / p
}

func formatCoord(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
