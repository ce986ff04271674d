package filesizehist

import (
	"fmt"
	"strconv"
)

const sizeMarks = "KMGTP"

// Value is a byte amount to format, either IntegerValue or FloatValue.
type Value interface {
	format() string
}

// IntegerValue is formatted with truncating division and no decimals.
type IntegerValue int64

// FloatValue is formatted with true division and two decimals.
type FloatValue float64

// Format renders a byte amount with a single-letter magnitude suffix.
//
//	Format(IntegerValue(1024))  // "1K"
//	Format(FloatValue(1536))    // "1.50K"
func Format(v Value) string {
	return v.format()
}

func (v IntegerValue) format() string {
	m := 0
	for v >= 1024 && m < len(sizeMarks) {
		v /= 1024
		m++
	}

	return strconv.FormatInt(int64(v), 10) + suffix(m)
}

func (v FloatValue) format() string {
	m := 0
	for v >= 1024 && m < len(sizeMarks) {
		v /= 1024
		m++
	}

	return fmt.Sprintf("%.2f", float64(v)) + suffix(m)
}

func suffix(m int) string {
	if m == 0 {
		return ""
	}

	return sizeMarks[m-1 : m]
}
