package stcisp

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// testBaseAddr is the memory address assigned to the first Name Table
// entry in synthetic fixtures.
const testBaseAddr uint32 = 0x004AF79C

// testDevice describes one real Info Table record of a fixture. The
// terminal STC90LE516AD record is appended automatically.
type testDevice struct {
	name     string
	flags    uint32
	mcuID    uint32
	flash    uint32
	eeprom   uint32
	eeStart  uint32
	total    uint32
	reserved uint32

	// nameAddr, when non-zero, overrides the derived name address to
	// construct corrupt fixtures
	nameAddr uint32
}

// testBlob is a synthetic executable image with both tables embedded at
// known positions.
type testBlob struct {
	data   []byte
	layout Layout
}

// buildFixture assembles a blob in the real file order: junk, sentinel
// record, device records, the fixed terminal record, a zeroed spare
// slot, junk, the Name Table (first entry "STC90LE516AD", last entry
// "UNKNOWN"+"%06X"), junk. Junk bytes are 0xCC so they can never open a
// signature match.
func buildFixture(t *testing.T, devices []testDevice, prefixLen, midLen, tailLen int) testBlob {
	t.Helper()

	names := []string{"STC90LE516AD"}
	nameIndex := map[string]int{"STC90LE516AD": 0}
	for _, d := range devices {
		if _, ok := nameIndex[d.name]; !ok {
			nameIndex[d.name] = len(names)
			names = append(names, d.name)
		}
	}

	recordCount := len(devices) + 1 // terminal record included
	layout := Layout{
		InfoTableStart: int64(prefixLen) + InfoRecordSize,
		BaseAddr:       testBaseAddr,
		MCUCount:       recordCount,
	}
	layout.InfoTableEnd = layout.InfoTableStart + int64(recordCount*InfoRecordSize)
	layout.NameTableStart = layout.InfoTableEnd + InfoRecordSize + int64(midLen)
	layout.NameTableEnd = layout.NameTableStart + int64(len(names)*NameEntrySize)

	unknownAddr := testBaseAddr + uint32(layout.NameTableEnd-layout.NameTableStart)

	var buf bytes.Buffer
	buf.Write(bytes.Repeat([]byte{0xCC}, prefixLen))
	buf.Write(encodeRecord(0, unknownAddr, 0, 0, 0, 0, 0, 0)) // sentinel record

	for _, d := range devices {
		addr := d.nameAddr
		if addr == 0 {
			addr = testBaseAddr + uint32(nameIndex[d.name]*NameEntrySize)
		}
		buf.Write(encodeRecord(d.flags, addr, d.mcuID, d.flash, d.eeprom, d.eeStart, d.total, d.reserved))
	}

	// Terminal record: flags and name address vary by release, the
	// trailing 24 bytes are the pass-1 end signature.
	buf.Write(encodeRecord(0x00014605, testBaseAddr, 0xF190, 0xF800, 0, 0, 0x00010000, 0))
	buf.Write(make([]byte, InfoRecordSize)) // zeroed slot after the table

	buf.Write(bytes.Repeat([]byte{0xCC}, midLen))
	for _, name := range names {
		buf.Write(nameEntry(name))
	}
	buf.Write(nameTableEndSignature)
	buf.Write(bytes.Repeat([]byte{0xCC}, tailLen))

	return testBlob{data: buf.Bytes(), layout: layout}
}

func encodeRecord(flags, nameAddr, mcuID, flash, eeprom, eeStart, total, reserved uint32) []byte {
	b := make([]byte, InfoRecordSize)
	binary.LittleEndian.PutUint32(b[0:4], flags)
	binary.LittleEndian.PutUint32(b[4:8], nameAddr)
	binary.LittleEndian.PutUint32(b[8:12], mcuID)
	binary.LittleEndian.PutUint32(b[12:16], flash)
	binary.LittleEndian.PutUint32(b[16:20], eeprom)
	binary.LittleEndian.PutUint32(b[20:24], eeStart)
	binary.LittleEndian.PutUint32(b[24:28], total)
	binary.LittleEndian.PutUint32(b[28:32], reserved)
	return b
}

func nameEntry(name string) []byte {
	b := make([]byte, NameEntrySize)
	copy(b, name)
	return b
}
