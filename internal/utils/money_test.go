package utils

import "testing"

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "Rs 0"},
		{-50, "Rs 0"},
		{499, "Rs 499"},
		{1500, "Rs 1,500"},
		{150000, "Rs 1,50,000"},
		{12345678, "Rs 1,23,45,678"},
		{499.50, "Rs 499.50"},
		{1500.05, "Rs 1,500.05"},
	}
	for _, c := range cases {
		if got := FormatINR(c.in); got != c.want {
			t.Errorf("FormatINR(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
