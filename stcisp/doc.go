// Package stcisp extracts the embedded MCU model database from an
// STC-ISP flash tool executable.
//
// # Embedded table layout
//
// The executable carries two linked tables:
//
//   - Info Table: fixed 32-byte records describing one MCU model each
//     (flags, name address, magic ID, flash/EEPROM sizes). New models are
//     prepended, so the table's first real entry changes between
//     releases while its last entry is fixed.
//   - Name Table: fixed 16-byte entries, each a nul-terminated,
//     nul-padded ASCII model name. New models are appended.
//
// A record references its name through an absolute memory address in the
// original program's address space, not a file offset. Translating that
// address requires the Name Table's base address, which is not stored
// anywhere and must be derived.
//
// # Extraction procedure
//
// Extraction runs two streaming signature scans over the file:
//
//  1. One pass locates three landmarks: the Info Table's fixed terminal
//     record, the Name Table's first entry ("STC90LE516AD") and its last
//     entry ("UNKNOWN" plus the "%06X" format string).
//  2. The terminal record is read back; its name-address field points at
//     the first Name Table entry and therefore IS the base address.
//  3. The Info Table's start cannot be matched with a fixed signature
//     (every real record differs between releases), but the table begins
//     with an all-zero sentinel record whose name-address field points at
//     the "UNKNOWN" name. That address is computable from the base
//     address and the two Name Table offsets, so a second pass scans for
//     the reconstructed name-address field and the zeroed payload bytes
//     that follow it.
//
// With both table boundaries known, the record count follows from plain
// arithmetic, both regions are bulk-read, and each record's name address
// is translated to a Name Table index:
//
//	index = (nameAddr - baseAddr) / 16
//
// # Usage
//
//	db, err := stcisp.NewExtractor().ExtractFile("stc-isp-v6.91Q.exe")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, dev := range db.Devices {
//	    fmt.Printf("%s magic=0x%04X flash=%d\n", dev.Name, dev.MagicID(), dev.FlashSize)
//	}
//
// # Data quirks
//
// Two quirks of the source data are handled deliberately and are not
// errors:
//
//   - STC08XE-3V and STC08XE-5V each appear twice with distinct magic
//     IDs aliasing one name, so the Info Table may hold more records
//     than the Name Table holds names.
//   - The table understates the EEPROM size of the STC12x54 family;
//     records whose resolved name carries that prefix get a fixed
//     12 KiB override.
package stcisp
