package utils

import (
	"fmt"
	"strings"
)

// FormatINR renders an amount with Indian digit grouping, e.g. 150000
// becomes "Rs 1,50,000". Paise are shown only when non-zero.
func FormatINR(v float64) string {
	if v <= 0 {
		return "Rs 0"
	}

	whole := int64(v)
	paise := int64(v*100+0.5) - whole*100

	s := fmt.Sprintf("%d", whole)
	// Last three digits group together, every two after that.
	var groups []string
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		groups = append([]string{head}, groups...)
		groups = append(groups, tail)
		s = strings.Join(groups, ",")
	}

	if paise > 0 {
		return fmt.Sprintf("Rs %s.%02d", s, paise)
	}
	return "Rs " + s
}
