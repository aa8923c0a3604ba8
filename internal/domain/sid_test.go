package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSID(t *testing.T) {
	tests := []struct {
		name     string
		raw      []byte
		expected string
		wantErr  bool
	}{
		{"exact width", []byte("2012166N09269"), "2012166N09269", false},
		{"nul padded", []byte("2012166N09269\x00\x00\x00"), "2012166N09269", false},
		{"space padded", []byte("AL092011        "), "AL092011", false},
		{"mixed padding", []byte("  1999001N10200\x00 "), "1999001N10200", false},
		{"all padding", []byte("\x00\x00\x00\x00"), "", true},
		{"empty input", []byte{}, "", true},
		{"interior control byte", []byte("2012\x01166"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeSID(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
