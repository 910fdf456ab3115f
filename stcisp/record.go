package stcisp

import "encoding/binary"

// MCUInfo is one decoded Info Table record. All fields are stored
// little-endian in the executable.
type MCUInfo struct {
	// Flags is a bitfield of model capabilities; see the Flag constants
	Flags uint32

	// NameAddr is the absolute memory address of the model's Name Table
	// entry in the original program's address space
	NameAddr uint32

	// MCUID identifies the model to the ISP protocol; only the low 16
	// bits are significant
	MCUID uint32

	// FlashSize is the code flash size in bytes
	FlashSize uint32

	// EEPROMSize is the EEPROM (data flash) size in bytes
	EEPROMSize uint32

	// EEPROMStartAddr is the EEPROM start address (STC89/STC90 only;
	// zero for IAP models)
	EEPROMStartAddr uint32

	// TotalSize is the total flash size in bytes
	TotalSize uint32

	// Reserved is unidentified; kept for the CSV diagnostic output
	Reserved uint32
}

// decodeMCUInfo decodes one record from exactly InfoRecordSize bytes.
func decodeMCUInfo(b []byte) MCUInfo {
	return MCUInfo{
		Flags:           binary.LittleEndian.Uint32(b[0:4]),
		NameAddr:        binary.LittleEndian.Uint32(b[4:8]),
		MCUID:           binary.LittleEndian.Uint32(b[8:12]),
		FlashSize:       binary.LittleEndian.Uint32(b[12:16]),
		EEPROMSize:      binary.LittleEndian.Uint32(b[16:20]),
		EEPROMStartAddr: binary.LittleEndian.Uint32(b[20:24]),
		TotalSize:       binary.LittleEndian.Uint32(b[24:28]),
		Reserved:        binary.LittleEndian.Uint32(b[28:32]),
	}
}

// MagicID returns the significant low 16 bits of the MCUID field.
func (m MCUInfo) MagicID() uint16 {
	return uint16(m.MCUID)
}

// Accepts5VSupply reports whether the model tolerates a 5V supply.
func (m MCUInfo) Accepts5VSupply() bool {
	return m.Flags&FlagAccepts5VSupply != 0
}

// HasConfigurableEEPROM reports whether the model is an IAP part with a
// configurable flash/EEPROM split.
func (m MCUInfo) HasConfigurableEEPROM() bool {
	return m.Flags&FlagConfigurableEEPROM != 0
}

// HasAdjustableIRCO reports whether the internal RC oscillator supports
// frequency calibration.
func (m MCUInfo) HasAdjustableIRCO() bool {
	return m.Flags&FlagAdjustableIRCO != 0
}

// HasFixedFrequencyIRCO reports whether the model has a fixed-frequency
// internal RC oscillator.
func (m MCUInfo) HasFixedFrequencyIRCO() bool {
	return m.Flags&FlagFixedFrequencyIRCO != 0
}

// IsMCS251 reports whether the model is an MCS-251 part.
func (m MCUInfo) IsMCS251() bool {
	return m.Flags&FlagMCS251 != 0
}

// Device pairs one Info Table record with its resolved name. It is the
// externally visible unit of extraction output.
type Device struct {
	MCUInfo

	// Name is the resolved Name Table string
	Name string
}

// Layout holds the resolved table boundaries and the derived base
// address. Offsets are file positions; BaseAddr is a memory address.
type Layout struct {
	InfoTableStart int64
	InfoTableEnd   int64
	NameTableStart int64
	NameTableEnd   int64

	// BaseAddr is the memory address of the first Name Table entry
	BaseAddr uint32

	// MCUCount is the number of Info Table records, sentinel excluded
	MCUCount int
}

// Database is the result of one extraction run. It is read-only once
// returned.
type Database struct {
	Layout Layout

	// Devices holds one entry per Info Table record, in table order.
	// Distinct devices may share a name (known alias quirk), so this can
	// be longer than the Name Table.
	Devices []Device

	// NameCount is the number of Name Table entries, "UNKNOWN" excluded
	NameCount int
}
