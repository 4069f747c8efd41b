package ecosystem

import "unicode/utf16"

// Hash returns a stable non-negative integer for s. It runs the djb2 recurrence
// over the UTF-16 code units of s with signed 32-bit wraparound and returns the
// absolute value, so results match across platforms and runs.
func Hash(s string) int {
	var h int32 = 5381
	for _, u := range utf16.Encode([]rune(s)) {
		h = (h << 5) + h + int32(u)
	}
	if h < 0 {
		return -int(h)
	}
	return int(h)
}
