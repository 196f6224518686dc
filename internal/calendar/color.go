package calendar

import (
	"fmt"
	"strconv"
	"unicode/utf16"
)

// TagColor derives a stable hsla colour from s. The hash runs over UTF-16
// code units with 32-bit wrapping shifts so browsers and the API agree on
// the hue for the same post.
func TagColor(s string, opacity float64) string {
	var hash int64
	for _, unit := range utf16.Encode([]rune(s)) {
		shifted := int64(int32(uint32(int32(hash)) << 5))
		hash = int64(unit) + shifted - hash
	}
	h := hash % 360
	return fmt.Sprintf("hsla(%d, 70%%, 40%%, %s)", h, strconv.FormatFloat(opacity, 'f', -1, 64))
}
