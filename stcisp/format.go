package stcisp

import "encoding/binary"

// Table entry sizes, fixed across all known STC-ISP releases.
const (
	// InfoRecordSize is the size of one Info Table record in bytes
	InfoRecordSize = 32

	// NameEntrySize is the size of one Name Table entry in bytes
	NameEntrySize = 16
)

// Signature names used across both scan passes.
const (
	sigInfoTableEnd   = "info-table-end"
	sigNameTableStart = "name-table-start"
	sigNameTableEnd   = "name-table-end"
	sigInfoTableStart = "info-table-start"
)

// infoTableEndSignature is the last 24 bytes of the Info Table's fixed
// terminal record, the STC90LE516AD entry (magic 0xF190). The first 8
// bytes of that record (flags and name address) vary between executable
// releases; the remaining 24 are release-independent and sufficiently
// discriminating on their own.
var infoTableEndSignature = []byte{
	0x90, 0xF1, 0x00, 0x00, 0x00, 0xF8, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// nameTableStartSignature is the Name Table's first entry: the
// nul-terminated "STC90LE516AD" string padded to 16 bytes. The table
// grows by appending, so this entry marks its start in every release.
var nameTableStartSignature = []byte{
	'S', 'T', 'C', '9', '0', 'L', 'E', '5',
	'1', '6', 'A', 'D', 0x00, 0x00, 0x00, 0x00,
}

// nameTableEndSignature is the Name Table's final entry: the
// nul-terminated "UNKNOWN" and "%06X" strings packed into one 16-byte
// slot.
var nameTableEndSignature = []byte{
	'U', 'N', 'K', 'N', 'O', 'W', 'N', 0x00,
	'%', '0', '6', 'X', 0x00, 0x00, 0x00, 0x00,
}

// sentinelSignatureOffset is where the pass-2 signature begins within
// the sentinel record: at the name-address field, past the record's
// all-zero flags field.
const sentinelSignatureOffset = 4

// sentinelSignature builds the pass-2 signature locating the sentinel
// record that opens the Info Table: the record's name-address field
// (which points at the "UNKNOWN" entry and is only known at run time)
// followed by the next 16 zero bytes of its payload. The leading
// all-zero flags field is excluded; the matcher does not backtrack, so
// a signature opening with zeros would let zero padding ahead of the
// table swallow the true match start.
func sentinelSignature(unknownNameAddr uint32) []byte {
	sig := make([]byte, 20)
	binary.LittleEndian.PutUint32(sig, unknownNameAddr)
	return sig
}

// Known bits of the Info Table record flags field. Meanings were
// established by correlating the bit patterns against published STC
// datasheets; unlisted bits are still unidentified.
const (
	// FlagAccepts5VSupply is set for models that tolerate a 5V supply,
	// exclusively or not; clear means low-voltage only (around 3.3V).
	FlagAccepts5VSupply uint32 = 0x00000002

	// FlagConfigurableEEPROM is set for "IAP" models whose flash split
	// between code and EEPROM emulation is configurable.
	FlagConfigurableEEPROM uint32 = 0x00000008

	// FlagAdjustableIRCO is set for models with an adjustable internal
	// RC oscillator, i.e. that support frequency calibration. When both
	// this and FlagFixedFrequencyIRCO are clear, the model has no
	// internal oscillator at all (external crystal only).
	FlagAdjustableIRCO uint32 = 0x00000080

	// FlagFixedFrequencyIRCO is set for the old IRC* models with a
	// fixed-frequency internal RC oscillator.
	FlagFixedFrequencyIRCO uint32 = 0x00000100

	// FlagMCS251 is set for MCS-251 models, whose flash size can exceed
	// 64KB.
	FlagMCS251 uint32 = 0x00001000
)

// EEPROMOverrideSize is the corrected EEPROM size applied to the
// STC12x54 family. The Info Table understates it; all members of the
// family have 12 KiB. This is a known inaccuracy of the source data, not
// something derivable from the record.
const EEPROMOverrideSize = 12 * 1024

// eepromOverridePrefixes selects the STC12x54 family by resolved name.
var eepromOverridePrefixes = []string{"STC12C54", "STC12LE54"}
