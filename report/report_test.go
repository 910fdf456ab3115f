package report

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grigorig/stcdump/stcisp"
)

func sampleDevices() []stcisp.Device {
	return []stcisp.Device{
		{
			MCUInfo: stcisp.MCUInfo{
				Flags:      0x0000008A,
				MCUID:      0x2211D16C,
				FlashSize:  61440,
				EEPROMSize: 1024,
				TotalSize:  65536,
			},
			Name: "STC12C5A60S2",
		},
		{
			MCUInfo: stcisp.MCUInfo{
				Flags:           0x00000102,
				MCUID:           0xF002,
				FlashSize:       8192,
				EEPROMSize:      2048,
				EEPROMStartAddr: 0x2000,
				TotalSize:       16384,
			},
			Name: "STC89C52RC",
		},
	}
}

func TestWriteModels(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteModels(&buf, sampleDevices()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)

	assert.Equal(t,
		"    MCUModel(name='STC12C5A60S2', magic=0xd16c, total=65536, code=61440, eeprom=1024, iap=True, calibrate=True, mcs251=False),",
		lines[0])
	assert.Equal(t,
		"    MCUModel(name='STC89C52RC', magic=0xf002, total=16384, code=8192, eeprom=2048, iap=False, calibrate=False, mcs251=False),",
		lines[1])
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleDevices()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	header := rows[0]
	require.Len(t, header, 40)
	assert.Equal(t, "name", header[0])
	assert.Equal(t, "flags (hex)", header[33])
	assert.Equal(t, "reserved", header[39])

	row := rows[1]
	require.Len(t, row, 40)
	assert.Equal(t, "STC12C5A60S2", row[0])

	// Flag columns are MSB first: bit b lands in column 1+(31-b).
	for bit, want := range map[int]string{1: "1", 3: "1", 7: "1", 0: "0", 12: "0", 31: "0"} {
		assert.Equal(t, want, row[1+(31-bit)], "bit %d", bit)
	}

	assert.Equal(t, "0x0000008a", row[33])
	assert.Equal(t, "0xd16c", row[34])
	assert.Equal(t, "61440", row[35])
	assert.Equal(t, "1024", row[36])
	assert.Equal(t, "0x00000000", row[37])
	assert.Equal(t, "65536", row[38])
	assert.Equal(t, "0x00000000", row[39])
}

func TestWriteCSV_EmptyFieldCount(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1) // header only
}
