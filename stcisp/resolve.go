package stcisp

import (
	"bytes"
	"strings"
)

// resolveNames pairs each record with its Name Table string and applies
// the STC12x54 EEPROM size correction. Records legitimately may outnumber
// names (alias quirk); only addresses that fall outside the table, or
// between entries, are errors.
func resolveNames(records []MCUInfo, names []byte, baseAddr uint32) ([]Device, error) {
	nameCount := int64(len(names) / NameEntrySize)

	devices := make([]Device, 0, len(records))
	for i, rec := range records {
		delta := int64(rec.NameAddr) - int64(baseAddr)

		switch {
		case delta < 0:
			return nil, &CorruptDataError{Record: i, NameAddr: rec.NameAddr,
				BaseAddr: baseAddr, Reason: "address precedes table base"}
		case delta%NameEntrySize != 0:
			return nil, &CorruptDataError{Record: i, NameAddr: rec.NameAddr,
				BaseAddr: baseAddr, Reason: "address not entry-aligned"}
		case delta/NameEntrySize >= nameCount:
			return nil, &CorruptDataError{Record: i, NameAddr: rec.NameAddr,
				BaseAddr: baseAddr, Reason: "index beyond table end"}
		}

		name := cString(names[delta : delta+NameEntrySize])

		for _, prefix := range eepromOverridePrefixes {
			if strings.HasPrefix(name, prefix) {
				rec.EEPROMSize = EEPROMOverrideSize
				break
			}
		}

		devices = append(devices, Device{MCUInfo: rec, Name: name})
	}
	return devices, nil
}

// cString returns the string up to the first nul byte.
func cString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
