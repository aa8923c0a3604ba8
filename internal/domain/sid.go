package domain

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeSID converts a fixed-width character array, as stored in NetCDF
// string variables, into a storm identifier. NUL and space padding is
// trimmed from both ends. An empty or non-printable result is a malformed
// record.
func DecodeSID(raw []byte) (string, error) {
	s := strings.Trim(string(raw), "\x00 ")
	if s == "" {
		return "", errors.New("decode sid: empty identifier")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x21 || s[i] > 0x7e {
			return "", fmt.Errorf("decode sid: non-printable byte 0x%02x at offset %d", s[i], i)
		}
	}
	return s, nil
}
