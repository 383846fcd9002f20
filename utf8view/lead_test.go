package utf8view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyLead(t *testing.T) {
	tests := []struct {
		lead    byte
		partial int32
		size    int
		ok      bool
	}{
		{0x00, 0x00, 1, true},
		{0x7F, 0x7F, 1, true},
		{0x80, 0x80, 1, false},
		{0xBF, 0xBF, 1, false},
		{0xC0, 0x00, 2, true},
		{0xDF, 0x1F, 2, true},
		{0xE0, 0x00, 3, true},
		{0xEF, 0x0F, 3, true},
		{0xF0, 0x00, 4, true},
		{0xF7, 0x07, 4, true},
		{0xF8, 0x00, 5, true},
		{0xFB, 0x03, 5, true},
		{0xFC, 0x00, 6, true},
		{0xFD, 0x01, 6, true},
		{0xFE, 0xFE, 1, false},
		{0xFF, 0xFF, 1, false},
	}

	for _, tt := range tests {
		partial, size, ok := classifyLead(tt.lead)
		assert.Equal(t, tt.partial, partial, "lead 0x%02X partial", tt.lead)
		assert.Equal(t, tt.size, size, "lead 0x%02X size", tt.lead)
		assert.Equal(t, tt.ok, ok, "lead 0x%02X ok", tt.lead)
	}
}

func TestClassifyLead_SizesCoverAllBytes(t *testing.T) {
	counts := map[int]int{}
	invalid := 0
	for b := 0; b < 256; b++ {
		_, size, ok := classifyLead(byte(b))
		if !ok {
			invalid++
			continue
		}
		counts[size]++
	}

	assert.Equal(t, map[int]int{1: 128, 2: 32, 3: 16, 4: 8, 5: 4, 6: 2}, counts)
	assert.Equal(t, 64+2, invalid)
}

func TestIsCanonical_OneRowPerCodepoint(t *testing.T) {
	for cp := int32(0); cp <= MaxCanonical; cp++ {
		rows := 0
		for _, f := range canonicalForms {
			if cp >= f.cpMin && cp <= f.cpMax {
				rows++
			}
		}
		if rows != 1 {
			t.Fatalf("U+%04X matches %d rows", cp, rows)
		}
	}
}

func TestIsCanonical_RejectsExtendedLengths(t *testing.T) {
	assert.False(t, isCanonical([]byte{0xF8, 0x88, 0x80, 0x80, 0x80}, 0x200000))
	assert.False(t, isCanonical([]byte{0xFC, 0x84, 0x80, 0x80, 0x80, 0x80}, 0x4000000))
}
