package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToFixed(t *testing.T) {
	tests := map[string]struct {
		v      float64
		places int
		want   string
	}{
		"whole":              {v: 1, places: 2, want: "1.00"},
		"round down":         {v: 0.408, places: 2, want: "0.41"},
		"half rounds up":     {v: 0.625, places: 2, want: "0.63"},
		"half from even":     {v: 0.125, places: 2, want: "0.13"},
		"already two":        {v: 0.6, places: 2, want: "0.60"},
		"one place half":     {v: 2.25, places: 1, want: "2.3"},
		"large half":         {v: 131.25, places: 1, want: "131.3"},
		"binary below half":  {v: 1.005, places: 2, want: "1.00"},
		"negative half":      {v: -2.25, places: 1, want: "-2.3"},
		"leading zero":       {v: 0.005, places: 2, want: "0.01"},
		"zero places half":   {v: 2.5, places: 0, want: "3"},
		"zero":               {v: 0, places: 1, want: "0.0"},
		"small half":         {v: 0.0625, places: 3, want: "0.063"},
		"not a number":       {v: math.NaN(), places: 1, want: "NaN"},
		"negative not exact": {v: -0.8, places: 1, want: "-0.8"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ToFixed(tc.v, tc.places))
		})
	}
}

func TestSigned(t *testing.T) {
	assert.Equal(t, "+2.3", Signed(2.25, 1))
	assert.Equal(t, "-0.8", Signed(-0.8, 1))
	assert.Equal(t, "+0.0", Signed(0, 1))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "6.3%", Percent(0.0625, 1))
	assert.Equal(t, "68.2%", Percent(15.0/22, 1))
}
