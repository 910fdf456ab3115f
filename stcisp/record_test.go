package stcisp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeMCUInfo(t *testing.T) {
	b := encodeRecord(0x0000108A, 0x004AF7AC, 0x2211D16C, 61440, 1024, 0x2000, 65536, 0xDEADBEEF)

	rec := decodeMCUInfo(b)
	assert.Equal(t, uint32(0x0000108A), rec.Flags)
	assert.Equal(t, uint32(0x004AF7AC), rec.NameAddr)
	assert.Equal(t, uint32(0x2211D16C), rec.MCUID)
	assert.Equal(t, uint32(61440), rec.FlashSize)
	assert.Equal(t, uint32(1024), rec.EEPROMSize)
	assert.Equal(t, uint32(0x2000), rec.EEPROMStartAddr)
	assert.Equal(t, uint32(65536), rec.TotalSize)
	assert.Equal(t, uint32(0xDEADBEEF), rec.Reserved)

	// Only the low 16 bits of the ID are significant.
	assert.Equal(t, uint16(0xD16C), rec.MagicID())
}

func TestMCUInfo_FlagAccessors(t *testing.T) {
	tests := []struct {
		name  string
		flags uint32
		check func(MCUInfo) bool
	}{
		{"5V supply", FlagAccepts5VSupply, MCUInfo.Accepts5VSupply},
		{"configurable eeprom", FlagConfigurableEEPROM, MCUInfo.HasConfigurableEEPROM},
		{"adjustable irco", FlagAdjustableIRCO, MCUInfo.HasAdjustableIRCO},
		{"fixed irco", FlagFixedFrequencyIRCO, MCUInfo.HasFixedFrequencyIRCO},
		{"mcs251", FlagMCS251, MCUInfo.IsMCS251},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(MCUInfo{Flags: tt.flags}))
			assert.False(t, tt.check(MCUInfo{Flags: ^tt.flags}))
		})
	}
}
