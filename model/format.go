package model

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ToFixed prints v with the given number of decimals the way a browser's
// Number.toFixed does. The exact binary value is rounded and a value exactly
// halfway between two outputs takes the one further from zero, so 2.25 is
// "2.3" where strconv would print "2.2".
func ToFixed(v float64, places int) string {
	if places < 0 {
		places = 0
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', places, 64)
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(places)), nil)
	x := new(big.Float).SetPrec(512).SetFloat64(math.Abs(v))
	x.Mul(x, new(big.Float).SetPrec(512).SetInt(scale))
	whole, _ := x.Int(nil)
	frac := new(big.Float).SetPrec(512).Sub(x, new(big.Float).SetPrec(512).SetInt(whole))
	if frac.Cmp(big.NewFloat(0.5)) != 0 {
		return strconv.FormatFloat(v, 'f', places, 64)
	}

	digits := whole.Add(whole, big.NewInt(1)).String()
	if places > 0 {
		if len(digits) <= places {
			digits = strings.Repeat("0", places-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-places] + "." + digits[len(digits)-places:]
	}
	if v < 0 {
		digits = "-" + digits
	}
	return digits
}

// Signed is ToFixed with a leading "+" on positive values, e.g. "+2.3".
func Signed(v float64, places int) string {
	s := ToFixed(v, places)
	if !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

// Percent shows a 0-1 rate as a percentage, e.g. 0.0625 is "6.3%".
func Percent(v float64, places int) string {
	return ToFixed(v*100, places) + "%"
}
