package stcisp

import (
	"fmt"
	"strings"
)

// SignatureNotFoundError indicates that a required byte pattern is absent
// from the input. Pass 1 looks for the three fixed landmarks; pass 2
// looks for the computed sentinel record. Either failure means the input
// does not match the assumed format, so extraction aborts.
type SignatureNotFoundError struct {
	// Pass is the scan pass that failed (1 or 2)
	Pass int

	// Missing lists the names of the signatures that never matched
	Missing []string
}

func (e *SignatureNotFoundError) Error() string {
	return fmt.Sprintf("scan pass %d: signature(s) not found: %s",
		e.Pass, strings.Join(e.Missing, ", "))
}

// TruncatedReadError indicates the file is shorter than a computed
// offset requires.
type TruncatedReadError struct {
	// Region names what was being read
	Region string

	// Offset is the file position of the read
	Offset int64

	// Want and Got are the requested and delivered byte counts
	Want int
	Got  int
}

func (e *TruncatedReadError) Error() string {
	return fmt.Sprintf("truncated read of %s at offset 0x%X: want %d bytes, got %d",
		e.Region, e.Offset, e.Want, e.Got)
}

// LayoutError indicates that the resolved table boundaries are
// structurally impossible (non-positive or misaligned region sizes).
// It signals the same format mismatch the original tool surfaced as a
// failed table allocation.
type LayoutError struct {
	// Region names the offending table
	Region string

	// Size is the computed region size in bytes
	Size int64

	// Reason describes the violated constraint
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("invalid %s layout: size %d (%s)", e.Region, e.Size, e.Reason)
}

// CorruptDataError indicates that a record's name address does not
// translate to a valid Name Table index. It means the base-address
// derivation or the table boundaries were wrong, so all results are
// discarded.
type CorruptDataError struct {
	// Record is the zero-based Info Table index of the offending record
	Record int

	// NameAddr is the record's stored name address
	NameAddr uint32

	// BaseAddr is the derived Name Table base address
	BaseAddr uint32

	// Reason describes the violated constraint
	Reason string
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("record %d: name address 0x%08X does not resolve against base 0x%08X: %s",
		e.Record, e.NameAddr, e.BaseAddr, e.Reason)
}
