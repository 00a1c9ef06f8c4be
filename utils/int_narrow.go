// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Int32ToInt16 narrows v to 16 bits by truncation. Out of range values
// wrap around (two's complement), so 40000 becomes -25536.
func Int32ToInt16(v int32) int16 {
	return int16(v)
}

// ClampInt16 narrows v to 16 bits, saturating at the int16 limits.
func ClampInt16(v int32) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	} else if v < math.MinInt16 {
		return math.MinInt16
	}

	return int16(v)
}

// AbsInt32 returns the absolute value of v.
// math.MinInt32 has no positive counterpart and is returned unchanged.
func AbsInt32(v int32) int32 {
	if v < 0 {
		return -v
	}

	return v
}
