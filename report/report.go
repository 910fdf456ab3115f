// Package report renders extracted device databases as the MCUModel
// list consumed by stcgal and as a CSV file for reverse-engineering the
// flags field.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/grigorig/stcdump/stcisp"
)

// WriteModels writes one MCUModel line per device, in the literal form
// pasted into stcgal's model list.
func WriteModels(w io.Writer, devices []stcisp.Device) error {
	for _, d := range devices {
		_, err := fmt.Fprintf(w,
			"    MCUModel(name='%s', magic=0x%04x, total=%d, code=%d, eeprom=%d, iap=%s, calibrate=%s, mcs251=%s),\n",
			d.Name,
			d.MagicID(),
			d.TotalSize,
			d.FlashSize,
			d.EEPROMSize,
			pyBool(d.HasConfigurableEEPROM()),
			pyBool(d.HasAdjustableIRCO()),
			pyBool(d.IsMCS251()),
		)
		if err != nil {
			return fmt.Errorf("write model line: %w", err)
		}
	}
	return nil
}

// WriteCSV writes the diagnostic CSV: one row per device with the flags
// field expanded into 32 single-bit columns (MSB first) to help identify
// the meaning of new bits as STC adds them.
func WriteCSV(w io.Writer, devices []stcisp.Device) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, 40)
	header = append(header, "name")
	for i := 0; i < 32; i++ {
		header = append(header, "")
	}
	header = append(header, "flags (hex)", "mcuId", "flashSize", "eepromSize",
		"eepromStartAddr", "totalSize", "reserved")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, d := range devices {
		row := make([]string, 0, 40)
		row = append(row, d.Name)
		row = append(row, flagBits(d.Flags)...)
		row = append(row,
			fmt.Sprintf("0x%08x", d.Flags),
			fmt.Sprintf("0x%04x", d.MagicID()),
			strconv.FormatUint(uint64(d.FlashSize), 10),
			strconv.FormatUint(uint64(d.EEPROMSize), 10),
			fmt.Sprintf("0x%08x", d.EEPROMStartAddr),
			strconv.FormatUint(uint64(d.TotalSize), 10),
			fmt.Sprintf("0x%08x", d.Reserved),
		)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// flagBits expands a flags word into 32 "0"/"1" columns, bit 31 first.
func flagBits(flags uint32) []string {
	bits := make([]string, 32)
	for i := 0; i < 32; i++ {
		if flags&(1<<(31-i)) != 0 {
			bits[i] = "1"
		} else {
			bits[i] = "0"
		}
	}
	return bits
}

// pyBool renders a bool as a Python literal.
func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}
