package domi

import "strings"

// DefaultSize is applied when a tool call does not specify one.
const DefaultSize = "1x1"

var validSizes = []string{"1x1", "3x4", "4x3", "9x16", "16x9"}

// ValidSizes returns the accepted size values in catalog order.
func ValidSizes() []string {
	out := make([]string, len(validSizes))
	copy(out, validSizes)
	return out
}

func IsValidSize(size string) bool {
	for _, s := range validSizes {
		if s == size {
			return true
		}
	}
	return false
}

func sizeList() string {
	return strings.Join(validSizes, ", ")
}
