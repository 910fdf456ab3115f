package stcisp

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/grigorig/stcdump/sigscan"
)

// Extractor locates and extracts the MCU model database embedded in an
// STC-ISP executable. The run is strictly sequential: two full-file
// signature scans followed by bulk reads of the resolved regions.
type Extractor struct {
	config Config
}

// NewExtractor creates an Extractor with the given options.
//
// Example:
//
//	ex := stcisp.NewExtractor(
//	    stcisp.WithLogger(logger),
//	)
func NewExtractor(opts ...Option) *Extractor {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Extractor{config: cfg}
}

// ExtractFile extracts the database from the executable at path.
//
// Example:
//
//	db, err := stcisp.NewExtractor().ExtractFile("stc-isp-v6.91Q.exe")
func (e *Extractor) ExtractFile(path string) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open executable: %w", err)
	}
	defer func() { _ = f.Close() }()

	return e.Extract(f)
}

// Extract extracts the database from any seekable byte source.
// The source is read from the beginning regardless of its current
// position.
func (e *Extractor) Extract(r io.ReadSeeker) (*Database, error) {
	scanner := sigscan.NewScanner(
		sigscan.WithChunkSize(e.config.ChunkSize),
		sigscan.WithLogger(e.config.Logger),
	)

	layout, err := e.resolveLayout(r, scanner)
	if err != nil {
		return nil, err
	}

	e.config.Logger.Debug().
		Int64("info_start", layout.InfoTableStart).
		Int64("info_end", layout.InfoTableEnd).
		Int64("name_start", layout.NameTableStart).
		Int64("name_end", layout.NameTableEnd).
		Str("base_addr", fmt.Sprintf("0x%08X", layout.BaseAddr)).
		Int("mcu_count", layout.MCUCount).
		Msg("tables resolved")

	names, err := e.readRegion(r, layout.NameTableStart, layout.NameTableEnd, "name table")
	if err != nil {
		return nil, err
	}

	infoBytes, err := e.readRegion(r, layout.InfoTableStart, layout.InfoTableEnd, "info table")
	if err != nil {
		return nil, err
	}

	records := make([]MCUInfo, layout.MCUCount)
	for i := range records {
		records[i] = decodeMCUInfo(infoBytes[i*InfoRecordSize : (i+1)*InfoRecordSize])
	}

	devices, err := resolveNames(records, names, layout.BaseAddr)
	if err != nil {
		return nil, err
	}

	nameCount := len(names) / NameEntrySize
	if len(devices) != nameCount {
		// Known alias quirk: some models appear twice with distinct
		// magic IDs sharing one name entry.
		e.config.Logger.Debug().
			Int("devices", len(devices)).
			Int("names", nameCount).
			Msg("record/name count mismatch tolerated")
	}

	e.config.Logger.Info().
		Int("devices", len(devices)).
		Msg("extraction complete")

	return &Database{
		Layout:    layout,
		Devices:   devices,
		NameCount: nameCount,
	}, nil
}

// resolveLayout derives the table boundaries, the Name Table base
// address and the record count. This is the two-pass core: pass 1 finds
// the fixed landmarks, the terminal record yields the base address, and
// pass 2 finds the computed sentinel that opens the Info Table.
func (e *Extractor) resolveLayout(r io.ReadSeeker, scanner *sigscan.Scanner) (Layout, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Layout{}, fmt.Errorf("seek to start: %w", err)
	}

	offsets, err := scanner.Scan(r,
		sigscan.New(sigInfoTableEnd, infoTableEndSignature),
		sigscan.New(sigNameTableStart, nameTableStartSignature),
		sigscan.New(sigNameTableEnd, nameTableEndSignature),
	)
	if err != nil {
		var nf *sigscan.NotFoundError
		if errors.As(err, &nf) {
			return Layout{}, &SignatureNotFoundError{Pass: 1, Missing: nf.Missing}
		}
		return Layout{}, fmt.Errorf("scan pass 1: %w", err)
	}

	layout := Layout{
		// The end signature covers the terminal record's trailing bytes,
		// so the table ends right after the match.
		InfoTableEnd:   offsets[sigInfoTableEnd] + int64(len(infoTableEndSignature)),
		NameTableStart: offsets[sigNameTableStart],
		NameTableEnd:   offsets[sigNameTableEnd],
	}

	nameSize := layout.NameTableEnd - layout.NameTableStart
	if nameSize <= 0 {
		return Layout{}, &LayoutError{Region: "name table", Size: nameSize,
			Reason: "end does not follow start"}
	}
	if nameSize%NameEntrySize != 0 {
		return Layout{}, &LayoutError{Region: "name table", Size: nameSize,
			Reason: fmt.Sprintf("not a multiple of %d", NameEntrySize)}
	}
	if layout.InfoTableEnd < InfoRecordSize {
		return Layout{}, &LayoutError{Region: "info table", Size: layout.InfoTableEnd,
			Reason: "terminal record would precede file start"}
	}

	// The terminal record references the first Name Table entry by
	// construction, so its name address is the base address.
	terminal, err := e.readRecordAt(r, layout.InfoTableEnd-InfoRecordSize)
	if err != nil {
		return Layout{}, err
	}
	layout.BaseAddr = terminal.NameAddr

	// The sentinel record that opens the Info Table points at the
	// "UNKNOWN" name, whose address follows from the base address plus
	// the Name Table extent.
	unknownAddr := layout.BaseAddr + uint32(nameSize)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return Layout{}, fmt.Errorf("seek to start: %w", err)
	}

	offsets, err = scanner.Scan(r, sigscan.New(sigInfoTableStart, sentinelSignature(unknownAddr)))
	if err != nil {
		var nf *sigscan.NotFoundError
		if errors.As(err, &nf) {
			return Layout{}, &SignatureNotFoundError{Pass: 2, Missing: nf.Missing}
		}
		return Layout{}, fmt.Errorf("scan pass 2: %w", err)
	}

	// The match starts at the sentinel record's name-address field; the
	// first real entry sits directly after the rest of the record.
	layout.InfoTableStart = offsets[sigInfoTableStart] + InfoRecordSize - sentinelSignatureOffset

	infoSize := layout.InfoTableEnd - layout.InfoTableStart
	if infoSize <= 0 {
		return Layout{}, &LayoutError{Region: "info table", Size: infoSize,
			Reason: "end does not follow start"}
	}
	if infoSize%InfoRecordSize != 0 {
		return Layout{}, &LayoutError{Region: "info table", Size: infoSize,
			Reason: fmt.Sprintf("not a multiple of %d", InfoRecordSize)}
	}
	layout.MCUCount = int(infoSize / InfoRecordSize)

	return layout, nil
}

// readRecordAt reads and decodes one Info Table record at the given file
// offset.
func (e *Extractor) readRecordAt(r io.ReadSeeker, offset int64) (MCUInfo, error) {
	if _, err := r.Seek(offset, io.SeekStart); err != nil {
		return MCUInfo{}, fmt.Errorf("seek to record at 0x%X: %w", offset, err)
	}

	buf := make([]byte, InfoRecordSize)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return MCUInfo{}, &TruncatedReadError{
			Region: "terminal record",
			Offset: offset,
			Want:   InfoRecordSize,
			Got:    n,
		}
	}
	return decodeMCUInfo(buf), nil
}

// readRegion bulk-reads the half-open file range [start, end).
func (e *Extractor) readRegion(r io.ReadSeeker, start, end int64, region string) ([]byte, error) {
	if _, err := r.Seek(start, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek to %s at 0x%X: %w", region, start, err)
	}

	buf := make([]byte, end-start)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, &TruncatedReadError{
			Region: region,
			Offset: start,
			Want:   len(buf),
			Got:    n,
		}
	}
	return buf, nil
}
