package domain

import (
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// MaxIDLength is the number of identifier characters shown before truncation
const MaxIDLength = 12

// FormatBytes renders a byte count in base-1024 units with up to two decimals.
// Trailing zeros are dropped: 1024 -> "1 KB", 1536 -> "1.5 KB".
func FormatBytes(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	// largest unit with a value >= 1
	i := 0
	for i < len(byteUnits)-1 && float64(bytes) >= math.Pow(1024, float64(i+1)) {
		i++
	}

	value := float64(bytes) / math.Pow(1024, float64(i))
	// round to 2 decimals, then let 'f' with -1 precision strip trailing zeros
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + byteUnits[i]
}

// TruncateID shortens identifiers longer than MaxIDLength
func TruncateID(id string) string {
	runes := []rune(id)
	if len(runes) <= MaxIDLength {
		return id
	}
	return string(runes[:MaxIDLength]) + "..."
}
