package utils

import (
	"strings"

	"github.com/google/uuid"
)

// ReceiptPrefix starts every receipt number
const ReceiptPrefix = "KU"

// GenerateReceiptNo returns prefix followed by 8 upper-case hex characters
func GenerateReceiptNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}

// StripControl removes control characters below 0x20 other than newline
// and tab
func StripControl(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x20 && r != '\n' && r != '\t' {
			return -1
		}
		return r
	}, s)
}
