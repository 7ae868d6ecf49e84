package auth

import (
	"errors"
	"strings"
)

var ErrInvalidAddress = errors.New("invalid wallet address")

const addressHexLen = 40

// NormalizeAddress validates a wallet address (0x followed by 40 hex
// characters) and lowercases it so address comparisons are exact.
// Host and voter identity checks all go through the normalized form.
func NormalizeAddress(addr string) (string, error) {
	addr = strings.TrimSpace(addr)
	if len(addr) != 2+addressHexLen {
		return "", ErrInvalidAddress
	}
	if addr[0] != '0' || (addr[1] != 'x' && addr[1] != 'X') {
		return "", ErrInvalidAddress
	}
	for i := 2; i < len(addr); i++ {
		c := addr[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return "", ErrInvalidAddress
		}
	}
	return strings.ToLower(addr), nil
}
